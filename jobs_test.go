package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchRoleSkillsScansPostings(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("what")
		w.Write([]byte(`{"results": [
			{"description": "We need React and TypeScript developers"},
			{"description": "Experience with Python is a plus. Reactivity not required."}
		]}`))
	}))
	defer server.Close()

	c := NewJobClient("id", "key", "in")
	c.BaseURL = server.URL

	skills := c.FetchRoleSkills(context.Background(), "Frontend Developer")

	require.Equal(t, "Frontend Developer", gotQuery)
	assert.ElementsMatch(t, []string{"React", "TypeScript", "Python"}, skills)
}

func TestFetchRoleSkillsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := NewJobClient("id", "key", "in")
	c.BaseURL = server.URL

	assert.Empty(t, c.FetchRoleSkills(context.Background(), "Data Analyst"))
}

func TestFetchRoleSkillsTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	c := NewJobClient("id", "key", "in")
	c.BaseURL = server.URL

	assert.Empty(t, c.FetchRoleSkills(context.Background(), "Data Analyst"))
}

func TestFetchRoleSkillsMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>maintenance</html>"))
	}))
	defer server.Close()

	c := NewJobClient("id", "key", "in")
	c.BaseURL = server.URL

	assert.Empty(t, c.FetchRoleSkills(context.Background(), "Data Analyst"))
}
