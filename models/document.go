package models

import "time"

// CVDocument records one processed upload.
type CVDocument struct {
	ID          string    `json:"id" db:"id" bson:"_id"`
	Filename    string    `json:"filename" db:"filename" bson:"filename"`
	ContentType string    `json:"content_type" db:"content_type" bson:"content_type"`
	TextChars   int       `json:"text_chars" db:"text_chars" bson:"text_chars"`
	ArchiveURL  string    `json:"archive_url,omitempty" db:"archive_url" bson:"archive_url,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at" db:"uploaded_at" bson:"uploaded_at"`
}
