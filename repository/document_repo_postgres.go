package repository

import (
	"database/sql"
	"time"

	"cvscanner/models"

	"github.com/google/uuid"
)

type PostgresDocumentRepo struct {
	DB *sql.DB
}

func NewPostgresDocumentRepo(db *sql.DB) *PostgresDocumentRepo {
	return &PostgresDocumentRepo{DB: db}
}

func (r *PostgresDocumentRepo) SaveRecord(doc *models.CVDocument) error {
	if doc.ID == "" {
		doc.ID = uuid.NewString()
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = time.Now().UTC()
	}

	_, err := r.DB.Exec(`
		INSERT INTO cv_documents (id, filename, content_type, text_chars, archive_url, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, doc.ID, doc.Filename, doc.ContentType, doc.TextChars, doc.ArchiveURL, doc.UploadedAt)
	return err
}

func (r *PostgresDocumentRepo) Recent(limit int) ([]models.CVDocument, error) {
	rows, err := r.DB.Query(`
		SELECT id, filename, content_type, text_chars, archive_url, uploaded_at
		FROM cv_documents
		ORDER BY uploaded_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []models.CVDocument
	for rows.Next() {
		var doc models.CVDocument
		if err := rows.Scan(&doc.ID, &doc.Filename, &doc.ContentType,
			&doc.TextChars, &doc.ArchiveURL, &doc.UploadedAt); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}
