package main

import (
	"archive/zip"
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"skillgapworker/internal/database"
)

type fakeCompleter struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

// fakeEmbedder serves canned vectors by lower-cased text. Unknown texts get a
// zero vector; err short-circuits every call.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, 0, len(texts))
	for _, t := range texts {
		v, ok := f.vectors[strings.ToLower(t)]
		if !ok {
			v = []float32{0, 0}
		}
		out = append(out, v)
	}
	return out, nil
}

type fakeFetcher struct {
	skills []string
}

func (f *fakeFetcher) FetchRoleSkills(context.Context, string) []string { return f.skills }

type sentMail struct {
	subject string
	to      string
}

type fakeMailer struct {
	sent []sentMail
}

func (f *fakeMailer) Send(subject, _ string, to string) error {
	f.sent = append(f.sent, sentMail{subject: subject, to: to})
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func (f *fakeStorage) Download(_ context.Context, key string) ([]byte, error) {
	data, ok := f.objects[key]
	if !ok {
		return nil, fmt.Errorf("no such object: %s", key)
	}
	return data, nil
}

func (f *fakeStorage) Upload(_ context.Context, key string, data []byte) error {
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = data
	return nil
}

type fakeStore struct {
	users         []database.User
	resumeUpdates map[uuid.UUID][]byte
}

func (f *fakeStore) GetUserByID(_ context.Context, id uuid.UUID) (database.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return database.User{}, sql.ErrNoRows
}

func (f *fakeStore) ListUsersWithNonEmptyRole(context.Context) ([]database.User, error) {
	var out []database.User
	for _, u := range f.users {
		if u.TargetRole != "" {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateResumeData(_ context.Context, arg database.UpdateResumeDataParams) error {
	if f.resumeUpdates == nil {
		f.resumeUpdates = map[uuid.UUID][]byte{}
	}
	f.resumeUpdates[arg.ID] = arg.ResumeData
	return nil
}

func (f *fakeStore) SetResumeObject(_ context.Context, arg database.SetResumeObjectParams) error {
	for i := range f.users {
		if f.users[i].ID == arg.ID {
			f.users[i].ResumeObjectKey = arg.ResumeObjectKey
			f.users[i].ResumeFilename = arg.ResumeFilename
		}
	}
	return nil
}

func (f *fakeStore) GetResumeObject(_ context.Context, id uuid.UUID) (database.GetResumeObjectRow, error) {
	u, err := f.GetUserByID(context.Background(), id)
	if err != nil {
		return database.GetResumeObjectRow{}, err
	}
	return database.GetResumeObjectRow{
		ResumeObjectKey: u.ResumeObjectKey,
		ResumeFilename:  u.ResumeFilename,
	}, nil
}

// buildDocx produces a minimal but valid .docx archive with one run of text
// per paragraph.
func buildDocx(paragraphs ...string) []byte {
	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	document := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`
	rels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`
	contentTypes := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
		`<Default Extension="xml" ContentType="application/xml"/></Types>`

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for name, content := range map[string]string{
		"[Content_Types].xml":          contentTypes,
		"_rels/.rels":                  rels,
		"word/_rels/document.xml.rels": rels,
		"word/document.xml":            document,
	} {
		w, _ := zw.Create(name)
		w.Write([]byte(content))
	}
	zw.Close()
	return buf.Bytes()
}
