package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const jobSearchTimeout = 10 * time.Second

// JobClient fetches postings for a role from the Adzuna search API and
// reports which vocabulary skills they mention. Closed vocabulary: it never
// invents skill names, and any transport or status failure degrades to an
// empty set. Lexical scanning over curated skills is the reproducible choice
// here; postings are too numerous and noisy to be worth a generative pass.
type JobClient struct {
	AppID   string
	AppKey  string
	Country string
	BaseURL string

	httpClient *http.Client
}

func NewJobClient(appID, appKey, country string) *JobClient {
	return &JobClient{
		AppID:      appID,
		AppKey:     appKey,
		Country:    country,
		BaseURL:    "https://api.adzuna.com",
		httpClient: &http.Client{Timeout: jobSearchTimeout},
	}
}

type jobSearchResponse struct {
	Results []struct {
		Description string `json:"description"`
	} `json:"results"`
}

func (c *JobClient) FetchRoleSkills(ctx context.Context, role string) []string {
	logger := slog.With("component", "jobs", "role", role)

	query := strings.Join(strings.Fields(role), "%20")
	url := fmt.Sprintf(
		"%s/v1/api/jobs/%s/search/1?app_id=%s&app_key=%s&results_per_page=10&what=%s&content-type=application/json",
		c.BaseURL, c.Country, c.AppID, c.AppKey, query,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		logger.Warn("building job search request failed", "error", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("job search unreachable, treating as no postings", "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn("job search returned non-200, treating as no postings", "status", resp.StatusCode)
		return nil
	}

	var payload jobSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Warn("job search payload undecodable, treating as no postings", "error", err)
		return nil
	}

	var blob strings.Builder
	for _, r := range payload.Results {
		blob.WriteString(r.Description)
		blob.WriteString(" ")
	}

	skills := KeywordSkills(blob.String())
	logger.Info("job postings scanned", "postings", len(payload.Results), "skills_found", len(skills))
	return skills
}
