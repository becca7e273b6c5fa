package main

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractText converts resume bytes into plain text. format is the declared
// upload format ("pdf", "doc" or "docx"); anything else was rejected upstream.
// All failures come back as *ExtractionError.
func ExtractText(data []byte, format string) (string, error) {
	switch format {
	case "pdf":
		return extractPDFText(data)
	case "doc", "docx":
		return extractDocxText(data)
	default:
		return "", &ExtractionError{Format: format, Err: fmt.Errorf("unsupported format")}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: "pdf", Err: err}
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

// extractDocxText materializes the bytes to a transient file, reads paragraph
// text in document order and joins it with newlines. The transient file is
// removed on every exit path; a failed remove is swallowed.
func extractDocxText(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "resume-*.docx")
	if err != nil {
		return "", &ExtractionError{Format: "docx", Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", &ExtractionError{Format: "docx", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &ExtractionError{Format: "docx", Err: err}
	}

	doc, err := docx.ReadDocxFile(tmp.Name())
	if err != nil {
		return "", &ExtractionError{Format: "docx", Err: fmt.Errorf("failed to parse docx: %w", err)}
	}
	defer doc.Close()

	return strings.Join(docParagraphs(doc.Editable().GetContent()), "\n"), nil
}

var (
	paragraphRe = regexp.MustCompile(`(?s)<w:p[ >].*?</w:p>|<w:p/>`)
	runTextRe   = regexp.MustCompile(`(?s)<w:t[^>]*>(.*?)</w:t>`)
	xmlUnescape = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")
)

// docParagraphs pulls run text out of the document XML, one string per
// paragraph, in document order.
func docParagraphs(content string) []string {
	var paragraphs []string
	for _, para := range paragraphRe.FindAllString(content, -1) {
		var b strings.Builder
		for _, run := range runTextRe.FindAllStringSubmatch(para, -1) {
			b.WriteString(xmlUnescape.Replace(run[1]))
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}
	return paragraphs
}
