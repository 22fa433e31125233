package extraction

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDocx creates a minimal docx archive holding the given document XML.
func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText_UnsupportedFormat(t *testing.T) {
	_, err := ExtractText([]byte("plain"), "text/plain")
	require.Error(t, err)
	var unsupported *UnsupportedFormatError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "text/plain", unsupported.MIMEType)
}

func TestExtractText_Docx(t *testing.T) {
	docXML := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>Skills:</w:t></w:r><w:tab/><w:r><w:t>Go, SQL</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	text, err := ExtractText(buildDocx(t, docXML), MIMEDocx)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Go, SQL")
	// Paragraphs translate to separate lines.
	assert.Contains(t, text, "\n")
	// Markup never leaks through.
	assert.NotContains(t, text, "<w:")
}

func TestExtractText_DocxMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText(buf.Bytes(), MIMEDocx)
	require.Error(t, err)
	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}

func TestExtractText_DocxCorruptArchive(t *testing.T) {
	_, err := ExtractText([]byte("definitely not a zip"), MIMEDocx)
	require.Error(t, err)
	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}

func TestExtractText_PDFCorruptBytes(t *testing.T) {
	_, err := ExtractText([]byte("%PDF-nope"), MIMEPDF)
	require.Error(t, err)
	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}

func TestFileTypeFor(t *testing.T) {
	assert.Equal(t, "pdf", FileTypeFor(MIMEPDF))
	assert.Equal(t, "docx", FileTypeFor(MIMEDocx))
	assert.Equal(t, "", FileTypeFor("image/png"))
}

func TestNormalizeWhitespace(t *testing.T) {
	got := normalizeWhitespace("  a\t\tb   c \n\n\n d  ")
	assert.Equal(t, "a b c \n d", got)
}
