package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

func structureResumePrompt(resumeText string) string {
	return fmt.Sprintf(`
	You are an expert AI career assistant that converts raw resume text into structured data.

Extract the candidate's skills, education, experience and projects from the resume below.

Return your result as a structured JSON object in this format:

{
  "skills": [string],
  "education": [{"degree": string, "specialization": string, "institution": string, "year": string}],
  "experience": [{"role": string, "company": string, "duration": string, "responsibilities": [string]}],
  "projects": [{"title": string, "tech_stack": [string], "outcome": string}]
}

Base all output only on the provided text. Do not make up data or assume experience not explicitly mentioned.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.
Your response must be a single JSON object.

Resume:
%s
	`, resumeText)
}

func extractSkillsPrompt(resumeText string) string {
	return fmt.Sprintf(`
	You are an expert AI career assistant that extracts technical and professional skills from resume text.

List every skill the candidate demonstrably has, including tools, languages, frameworks and methodologies.

Return your result as a JSON array of strings, for example: ["Python", "SQL", "Team Leadership"]

Base all output only on the provided text. Do not invent skills.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.

Resume:
%s
	`, resumeText)
}

func roadmapPrompt(missing []MissingSkill, resources ResourceDB) string {
	names := make([]string, 0, len(missing))
	relevant := ResourceDB{}
	for _, m := range missing {
		names = append(names, m.Skill)
		if rs, ok := resources[m.Skill]; ok {
			relevant[m.Skill] = rs
		}
	}
	resourceJSON, _ := json.Marshal(relevant)

	return fmt.Sprintf(`
	You are an expert AI career coach that builds day-by-day learning roadmaps.

The candidate is missing these skills, in priority order:
%s

Known learning resources per skill (use these where relevant):
%s

Create a learning roadmap covering every missing skill.

Return your result as a JSON array where each entry has this format:

{
  "day": number,
  "skill": string,
  "tasks": [string],
  "resources": [{"title": string, "platform": string, "url": string, "free": boolean}]
}

Order entries by day ascending. Keep tasks concrete and achievable in about two hours.
Return only valid JSON. Do not include explanations, markdown, or text before or after the JSON.
Your response must be a single JSON array.
	`, strings.Join(names, ", "), string(resourceJSON))
}
