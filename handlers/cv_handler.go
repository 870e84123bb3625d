package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"cvscanner/models"
	"cvscanner/repository"
	"cvscanner/services"
	"cvscanner/utils"

	"go.uber.org/zap"
)

const (
	maxUploadBytes = 20 << 20 // 20 MiB
	maxRecentLimit = 100
)

type CVHandler struct {
	Extractor *services.ExtractionService
	Docs      repository.DocumentRepository
	Logger    *zap.Logger
}

// Upload handles POST /cv/uploadcv: multipart file in, extracted text
// out as a downloadable attachment.
func (h *CVHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid multipart payload: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "File is empty")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil || len(data) == 0 {
		writeMessage(w, http.StatusBadRequest, "File is empty")
		return
	}

	text, name, err := h.Extractor.Extract(header.Filename, data)
	if err != nil {
		writeError(w, err)
		return
	}

	contentType := header.Header.Get("Content-Type")
	h.recordUpload(header.Filename, contentType, data, len(text))

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// recordUpload archives the original and stores an upload record, both
// best-effort: a bookkeeping failure never fails the extraction.
func (h *CVHandler) recordUpload(filename, contentType string, original []byte, textChars int) {
	var archiveURL string
	if utils.ArchiveConfigured() {
		url, err := utils.ArchiveCV(original, filename, contentType)
		if err != nil {
			h.Logger.Warn("cv archive failed", zap.String("filename", filename), zap.Error(err))
		} else {
			archiveURL = url
		}
	}

	doc := &models.CVDocument{
		Filename:    filename,
		ContentType: contentType,
		TextChars:   textChars,
		ArchiveURL:  archiveURL,
	}
	if err := h.Docs.SaveRecord(doc); err != nil {
		h.Logger.Warn("cv record save failed", zap.String("filename", filename), zap.Error(err))
	}
}

// Recent handles GET /cv/recent?limit=. The limit is capped so a large
// value cannot turn into an unbounded query.
func (h *CVHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeMessage(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	docs, err := h.Docs.Recent(limit)
	if err != nil {
		h.Logger.Error("recent uploads failed", zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
		return
	}
	if docs == nil {
		docs = []models.CVDocument{}
	}
	writeJSON(w, http.StatusOK, docs)
}

// Health handles GET /cv/health.
func (h *CVHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
