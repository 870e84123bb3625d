package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveConfigured(t *testing.T) {
	t.Setenv("R2_BUCKET", "")
	assert.False(t, ArchiveConfigured())

	t.Setenv("R2_BUCKET", "cv-archive")
	assert.True(t, ArchiveConfigured())
}

func TestArchiveCVPartialConfigFailsEveryCall(t *testing.T) {
	// Bucket set but account and public URL missing: init fails, and
	// the failure must stick across calls instead of leaving a nil
	// client to dereference.
	t.Setenv("R2_BUCKET", "cv-archive")
	t.Setenv("R2_ACCOUNT_ID", "")
	t.Setenv("R2_PUBLIC_URL", "")

	_, err := ArchiveCV([]byte("original"), "resume.docx", "application/octet-stream")
	require.Error(t, err)

	assert.NotPanics(t, func() {
		_, err = ArchiveCV([]byte("original"), "resume.docx", "application/octet-stream")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required R2 environment variables")
}
