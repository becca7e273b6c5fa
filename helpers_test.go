package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJson(t *testing.T) {
	want := `{"skills": ["Python"]}`

	assert.Equal(t, want, CleanJson("```json\n"+want+"\n```"))
	assert.Equal(t, want, CleanJson("```\n"+want+"\n```"))
	assert.Equal(t, want, CleanJson("  "+want+"  "))
	assert.Equal(t, want, CleanJson(want+"\n```"))
}

func TestDocumentFormat(t *testing.T) {
	assert.Equal(t, "pdf", documentFormat("resume.pdf"))
	assert.Equal(t, "docx", documentFormat("Resume.DOCX"))
	assert.Equal(t, "", documentFormat("resume"))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.35, round2(1-0.654))
	assert.Equal(t, 1.0, round2(0.999))
}
