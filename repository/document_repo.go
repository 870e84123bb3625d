package repository

import "cvscanner/models"

// DocumentRepository records processed uploads and lists recent ones.
type DocumentRepository interface {
	SaveRecord(doc *models.CVDocument) error
	Recent(limit int) ([]models.CVDocument, error)
}
