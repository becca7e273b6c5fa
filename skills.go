package main

import (
	"regexp"
	"strings"
)

// MasterSkills is the closed skill vocabulary. Keyword fallback extraction and
// job-posting scans only ever report names from this list.
var MasterSkills = []string{
	"Python", "SQL", "Excel", "React", "JavaScript", "TypeScript",
	"HTML", "CSS", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP",
	"Swift", "Kotlin", "Node.js", "Express", "Django", "Flask",
	"FastAPI", "Spring", "Angular", "Vue", "Next.js", "MongoDB",
	"PostgreSQL", "MySQL", "Redis", "Docker", "Kubernetes", "AWS",
	"Azure", "GCP", "Git", "Linux", "Bash", "REST", "GraphQL",
	"Machine Learning", "Deep Learning", "NLP", "TensorFlow",
	"PyTorch", "Scikit-learn", "Pandas", "NumPy", "Data Analysis",
	"Data Visualization", "Power BI", "Tableau", "Spark", "Hadoop",
	"Kafka", "Terraform", "Jenkins", "CI/CD", "Figma", "Agile",
	"Scrum", "Microservices", "System Design", "Unit Testing",
}

var skillPatterns = compileSkillPatterns(MasterSkills)

type skillPattern struct {
	name string
	re   *regexp.Regexp
}

// compileSkillPatterns builds one lower-cased whole-word pattern per skill.
// \b only works against word characters, so names starting or ending in
// symbols (C++, C#, .NET style) get explicit non-word boundaries instead.
func compileSkillPatterns(skills []string) []skillPattern {
	patterns := make([]skillPattern, 0, len(skills))
	for _, skill := range skills {
		lower := strings.ToLower(skill)
		quoted := regexp.QuoteMeta(lower)

		left := `\b`
		if !isWordByte(lower[0]) {
			left = `(?:^|[^a-z0-9_])`
		}
		right := `\b`
		if !isWordByte(lower[len(lower)-1]) {
			right = `(?:$|[^a-z0-9_])`
		}

		patterns = append(patterns, skillPattern{
			name: skill,
			re:   regexp.MustCompile(left + quoted + right),
		})
	}
	return patterns
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}

// KeywordSkills scans free text for vocabulary skills. This is the
// deterministic fallback behind every generative extraction path and the
// only extraction mode for job postings. Results keep vocabulary order and
// are deduplicated case-insensitively by construction.
func KeywordSkills(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, p := range skillPatterns {
		if p.re.MatchString(lower) {
			found = append(found, p.name)
		}
	}
	return found
}

// containsSkill reports whether want is present in skills, case-insensitively.
func containsSkill(skills []string, want string) bool {
	want = strings.ToLower(want)
	for _, s := range skills {
		if strings.ToLower(s) == want {
			return true
		}
	}
	return false
}

// dedupSkills removes case-insensitive duplicates, keeping first occurrence
// order. Generative extraction may return free-form terms with repeats.
func dedupSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(s))
	}
	return out
}
