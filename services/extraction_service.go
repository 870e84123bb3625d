package services

import (
	"bytes"
	"fmt"
	"strings"

	"cvscanner/apperrors"

	docx "github.com/fumiama/go-docx"
	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

// ExtractedFilename is the suggested download name for extracted text.
const ExtractedFilename = "cv.txt"

// ExtractionService converts an uploaded document into plain text.
type ExtractionService struct{}

func NewExtractionService() *ExtractionService {
	return &ExtractionService{}
}

// Extract returns the document text and a suggested filename. DOCX
// files are walked structurally; everything else goes through content
// sniffing. Any parse fault surfaces as a 500 carrying the cause.
func (s *ExtractionService) Extract(filename string, data []byte) ([]byte, string, error) {
	var (
		text string
		err  error
	)
	if strings.HasSuffix(strings.ToLower(filename), ".docx") {
		text, err = extractDocx(data)
	} else {
		text, err = extractSniffed(data)
	}
	if err != nil {
		return nil, "", apperrors.Internal("Failed to read document: " + err.Error())
	}
	return []byte(text), ExtractedFilename, nil
}

// extractDocx walks paragraphs in order, then tables in row-major,
// cell-major order: paragraph text + "\n", cell text + "\t", row + "\n".
func extractDocx(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, item := range doc.Document.Body.Items {
		if para, ok := item.(*docx.Paragraph); ok {
			text := para.String()
			if strings.TrimSpace(text) != "" {
				sb.WriteString(text)
				sb.WriteByte('\n')
			}
		}
	}

	for _, item := range doc.Document.Body.Items {
		table, ok := item.(*docx.Table)
		if !ok {
			continue
		}
		for _, row := range table.TableRows {
			for _, cell := range row.TableCells {
				var cellText strings.Builder
				for _, para := range cell.Paragraphs {
					cellText.WriteString(para.String())
				}
				if strings.TrimSpace(cellText.String()) != "" {
					sb.WriteString(cellText.String())
					sb.WriteByte('\t')
				}
			}
			sb.WriteByte('\n')
		}
	}

	return sb.String(), nil
}

// extractSniffed handles every non-DOCX upload by detecting the actual
// content type rather than trusting the filename.
func extractSniffed(data []byte) (string, error) {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/pdf"):
		return extractPDF(data)
	case strings.HasPrefix(mtype.String(), "text/"):
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported content type: %s", mtype.String())
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
