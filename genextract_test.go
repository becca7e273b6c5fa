package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

const resumeText = "Skilled in Python and SQL. Built dashboards with Excel."

func TestStructureResumeFencedAndUnfencedParseIdentically(t *testing.T) {
	body := `{"skills": ["Python", "Kubernetes"], "education": [{"degree": "BSc", "specialization": "CS", "institution": "MIT", "year": "2020"}], "experience": [], "projects": []}`

	plain := StructureResume(context.Background(), &fakeCompleter{reply: body}, resumeText)
	fenced := StructureResume(context.Background(), &fakeCompleter{reply: "```json\n" + body + "\n```"}, resumeText)

	assert.Equal(t, plain, fenced)
	assert.Equal(t, []string{"Python", "Kubernetes"}, plain.Skills)
	assert.Equal(t, "BSc", plain.Education[0].Degree)
}

func TestStructureResumeFallsBackOnServiceError(t *testing.T) {
	c := &fakeCompleter{err: errors.New("generative service down")}

	doc := StructureResume(context.Background(), c, resumeText)

	assert.ElementsMatch(t, []string{"Python", "SQL", "Excel"}, doc.Skills)
	assert.Empty(t, doc.Education)
}

func TestStructureResumeFallsBackOnMalformedReply(t *testing.T) {
	c := &fakeCompleter{reply: "Sure! The candidate knows Python."}

	doc := StructureResume(context.Background(), c, resumeText)

	assert.ElementsMatch(t, []string{"Python", "SQL", "Excel"}, doc.Skills)
}

func TestExtractSkillsDedupsReply(t *testing.T) {
	c := &fakeCompleter{reply: `["Python", "python", "Stakeholder Management"]`}

	skills := ExtractSkills(context.Background(), c, resumeText)

	// Generative extraction may return free-form terms outside the vocabulary.
	assert.Equal(t, []string{"Python", "Stakeholder Management"}, skills)
}

func TestExtractSkillsFallsBackOnServiceError(t *testing.T) {
	c := &fakeCompleter{err: errors.New("down")}

	assert.ElementsMatch(t, []string{"Python", "SQL", "Excel"}, ExtractSkills(context.Background(), c, resumeText))
}
