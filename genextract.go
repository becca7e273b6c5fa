package main

import (
	"context"
	"encoding/json"
	"log/slog"
)

// StructureResume turns raw resume text into a ResumeDocument via the
// generative service. Service or parse failure falls back to keyword
// extraction over the closed vocabulary, so this never returns an error —
// the pipeline always gets some skill list.
func StructureResume(ctx context.Context, c Completer, text string) ResumeDocument {
	logger := slog.With("component", "extractor", "operation", "structure_resume")

	raw, err := c.Complete(ctx, structureResumePrompt(text))
	if err == nil {
		var doc ResumeDocument
		if jerr := json.Unmarshal([]byte(CleanJson(raw)), &doc); jerr == nil {
			doc.Skills = dedupSkills(doc.Skills)
			return doc
		} else {
			logger.Warn("reply is not valid JSON, using keyword fallback", "error", jerr)
		}
	} else {
		logger.Warn("generative call failed, using keyword fallback", "error", err)
	}

	return ResumeDocument{Skills: KeywordSkills(text)}
}

// ExtractSkills is the skills-only variant of StructureResume, with the same
// fallback discipline.
func ExtractSkills(ctx context.Context, c Completer, text string) []string {
	logger := slog.With("component", "extractor", "operation", "extract_skills")

	raw, err := c.Complete(ctx, extractSkillsPrompt(text))
	if err == nil {
		var skills []string
		if jerr := json.Unmarshal([]byte(CleanJson(raw)), &skills); jerr == nil {
			return dedupSkills(skills)
		} else {
			logger.Warn("reply is not valid JSON, using keyword fallback", "error", jerr)
		}
	} else {
		logger.Warn("generative call failed, using keyword fallback", "error", err)
	}

	return KeywordSkills(text)
}
