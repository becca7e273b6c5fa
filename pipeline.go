package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"skillgapworker/internal/database"
)

// UserStore is the slice of the user record store the pipeline consumes.
// *database.Queries satisfies it.
type UserStore interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (database.User, error)
	ListUsersWithNonEmptyRole(ctx context.Context) ([]database.User, error)
	UpdateResumeData(ctx context.Context, arg database.UpdateResumeDataParams) error
	SetResumeObject(ctx context.Context, arg database.SetResumeObjectParams) error
	GetResumeObject(ctx context.Context, id uuid.UUID) (database.GetResumeObjectRow, error)
}

// Pipeline wires the extraction, analysis and notification stages around the
// externally-owned user store. It keeps no state of its own: every unit of
// work reads the latest user record and writes back only what it produced.
type Pipeline struct {
	Store     UserStore
	Storage   ResumeStorage
	Completer Completer
	Embedder  Embedder
	Jobs      RoleSkillFetcher
	Mailer    Mailer
	Resources ResourceDB
}

// SaveResumeBytes uploads raw resume bytes and records the object pointer on
// the user row.
func (p *Pipeline) SaveResumeBytes(ctx context.Context, userID uuid.UUID, filename string, data []byte) error {
	key := fmt.Sprintf("resumes/%s/%s", userID, filename)
	if err := p.Storage.Upload(ctx, key, data); err != nil {
		return fmt.Errorf("uploading resume bytes: %w", err)
	}
	return p.Store.SetResumeObject(ctx, database.SetResumeObjectParams{
		ResumeObjectKey: key,
		ResumeFilename:  filename,
		ID:              userID,
	})
}

// GetResumeBytes fetches the stored resume bytes and filename. A user who
// never uploaded gets (nil, "", nil).
func (p *Pipeline) GetResumeBytes(ctx context.Context, userID uuid.UUID) ([]byte, string, error) {
	obj, err := p.Store.GetResumeObject(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if obj.ResumeObjectKey == "" {
		return nil, "", nil
	}
	data, err := p.Storage.Download(ctx, obj.ResumeObjectKey)
	if err != nil {
		return nil, "", err
	}
	return data, obj.ResumeFilename, nil
}

// ReindexResume re-runs text extraction and generative structuring over the
// user's stored resume bytes and persists the result, replacing the previous
// structured resume wholesale. ok is false when the user has no stored
// resume; that is a skip, not an error.
func (p *Pipeline) ReindexResume(ctx context.Context, user database.User) (ResumeDocument, bool, error) {
	data, filename, err := p.GetResumeBytes(ctx, user.ID)
	if err != nil {
		return ResumeDocument{}, false, err
	}
	if data == nil {
		return ResumeDocument{}, false, nil
	}

	text, err := ExtractText(data, documentFormat(filename))
	if err != nil {
		return ResumeDocument{}, false, err
	}

	doc := StructureResume(ctx, p.Completer, text)
	raw, err := json.Marshal(doc)
	if err != nil {
		return ResumeDocument{}, false, err
	}
	if err := p.Store.UpdateResumeData(ctx, database.UpdateResumeDataParams{
		ResumeData: raw,
		ID:         user.ID,
	}); err != nil {
		return ResumeDocument{}, false, err
	}
	return doc, true, nil
}

// storedResume decodes the already-extracted structured resume. ok is false
// when the user has none stored.
func storedResume(user database.User) (ResumeDocument, bool, error) {
	if len(user.ResumeData) == 0 {
		return ResumeDocument{}, false, nil
	}
	var doc ResumeDocument
	if err := json.Unmarshal(user.ResumeData, &doc); err != nil {
		return ResumeDocument{}, false, fmt.Errorf("stored resume data malformed: %w", err)
	}
	return doc, true, nil
}

// GapsForRole fetches what the role demands and compares it against the
// candidate's skills.
func (p *Pipeline) GapsForRole(ctx context.Context, skills []string, role string) []MissingSkill {
	required := p.Jobs.FetchRoleSkills(ctx, role)
	return AnalyzeGaps(ctx, p.Embedder, skills, required)
}

func gapSummaryHTML(name, role string, gaps []MissingSkill) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Skill gap summary for %s</h2>", role)
	fmt.Fprintf(&b, "<p>Hi %s, your target role currently asks for these skills you haven't covered yet:</p><ul>", name)
	for _, g := range gaps {
		fmt.Fprintf(&b, "<li><b>%s</b> (priority %.2f)</li>", g.Skill, g.Priority)
	}
	b.WriteString("</ul>")
	return b.String()
}

func weeklyReportHTML(name, role string, gaps []MissingSkill, roadmap []RoadmapItem) string {
	var b strings.Builder
	b.WriteString(gapSummaryHTML(name, role, gaps))
	b.WriteString("<h3>Suggested roadmap</h3><ol>")
	for _, item := range roadmap {
		fmt.Fprintf(&b, "<li>Day %d — %s: %s (%dh)</li>", item.Day, item.Skill, strings.Join(item.Tasks, "; "), item.Hours)
	}
	b.WriteString("</ol>")
	return b.String()
}
