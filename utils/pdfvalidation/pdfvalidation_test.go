package pdfvalidation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePDFBytesRejectsNonPDF(t *testing.T) {
	result, err := ValidatePDFBytes([]byte("<html>not a pdf</html>"), BrochureLimits)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "missing PDF header")
}

func TestValidatePDFBytesRejectsOversize(t *testing.T) {
	limits := PDFLimits{MaxFileSizeMB: 1, MaxPages: 10, DocumentTypeName: "brochure"}
	oversized := make([]byte, 2*1024*1024)
	copy(oversized, []byte("%PDF-1.4"))

	result, err := ValidatePDFBytes(oversized, limits)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	assert.Contains(t, result.Error, "maximum allowed size")
}

func TestValidatePDFBytesRejectsCorrupt(t *testing.T) {
	// Valid header but no cross-reference structure
	result, err := ValidatePDFBytes([]byte("%PDF-1.4\ngarbage"), BrochureLimits)
	require.NoError(t, err)

	assert.False(t, result.Valid)
}

func TestSanitizePDFTrimsTrailingGarbage(t *testing.T) {
	content := []byte("%PDF-1.4\nbody\n%%EOF\n\x00\x00junk")
	cleaned := sanitizePDF(content)

	assert.True(t, bytes.HasSuffix(cleaned, []byte("%%EOF\n")))
	assert.NotContains(t, string(cleaned), "junk")
}

func TestSanitizePDFLeavesCleanContent(t *testing.T) {
	content := []byte("%PDF-1.4\nbody\n%%EOF")
	assert.Equal(t, content, sanitizePDF(content))
}
