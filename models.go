package main

import (
	"context"

	"github.com/google/uuid"
)

// ResumeDocument is the structured form of an uploaded resume. It fully
// replaces the previous value on re-upload, never merges.
type ResumeDocument struct {
	Skills     []string     `json:"skills"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Projects   []Project    `json:"projects"`
}

type Education struct {
	Degree         string `json:"degree"`
	Specialization string `json:"specialization"`
	Institution    string `json:"institution"`
	Year           string `json:"year,omitempty"`
}

type Experience struct {
	Role             string   `json:"role"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

type Project struct {
	Title     string   `json:"title"`
	TechStack []string `json:"tech_stack"`
	Outcome   string   `json:"outcome"`
}

// MissingSkill is a required skill the resume does not sufficiently cover.
// Higher priority means a larger gap.
type MissingSkill struct {
	Skill    string  `json:"skill"`
	Priority float64 `json:"priority"`
}

// Resource is one learning resource from the resource database.
type Resource struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Free     bool   `json:"free"`
}

// ResourceDB maps a skill name to its known learning resources.
type ResourceDB map[string][]Resource

// RoadmapItem is one day-indexed entry of a learning roadmap.
type RoadmapItem struct {
	Day       int        `json:"day"`
	Skill     string     `json:"skill"`
	Tasks     []string   `json:"tasks"`
	Resources []Resource `json:"resources"`
	Hours     int        `json:"hours"`
}

// AnalysisRequest is the ad-hoc work message published by the API layer.
type AnalysisRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

// Completer is the generative text service. Output is untrusted free text:
// callers strip code fences and validate JSON themselves.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Embedder turns texts into fixed-dimension vectors, one per input.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// RoleSkillFetcher resolves a target role to the skills job postings demand.
type RoleSkillFetcher interface {
	FetchRoleSkills(ctx context.Context, role string) []string
}

// Mailer sends an HTML notification. Implementations without credentials
// must no-op instead of failing.
type Mailer interface {
	Send(subject, htmlBody, to string) error
}

// ResumeStorage holds raw resume bytes keyed by object key.
type ResumeStorage interface {
	Download(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, data []byte) error
}
