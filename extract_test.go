package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempDocxFiles(t *testing.T) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(os.TempDir(), "resume-*.docx"))
	require.NoError(t, err)
	return matches
}

func TestExtractTextDocx(t *testing.T) {
	before := tempDocxFiles(t)
	data := buildDocx("Skilled in Python and SQL.", "Built dashboards with Excel.")

	text, err := ExtractText(data, "docx")

	require.NoError(t, err)
	assert.Equal(t, "Skilled in Python and SQL.\nBuilt dashboards with Excel.", text)
	assert.Len(t, tempDocxFiles(t), len(before), "transient file must be removed on success")
}

func TestExtractTextDocxCorruptBytesCleansUp(t *testing.T) {
	before := tempDocxFiles(t)

	_, err := ExtractText([]byte("definitely not a zip archive"), "docx")

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Len(t, tempDocxFiles(t), len(before), "transient file must be removed on failure")
}

func TestExtractTextPDFCorruptBytes(t *testing.T) {
	_, err := ExtractText([]byte("not a pdf"), "pdf")

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "pdf", extractErr.Format)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText([]byte("plain text"), "txt")

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
}

func TestDocParagraphs(t *testing.T) {
	content := `<w:document><w:body>` +
		`<w:p><w:r><w:t>First &amp; second</w:t></w:r><w:r><w:t xml:space="preserve"> run</w:t></w:r></w:p>` +
		`<w:p/>` +
		`<w:p><w:r><w:t>Last line</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	assert.Equal(t, []string{"First & second run", "Last line"}, docParagraphs(content))
}
