package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/agent/llmagent"
	"google.golang.org/adk/model/gemini"
	"google.golang.org/adk/runner"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// Every upstream call gets one bounded attempt; fallbacks handle the rest.
const upstreamTimeout = 30 * time.Second

const embeddingModel = "gemini-embedding-001"

func GetAgent(apiKey, agentName string) (agent.Agent, error) {
	ctx := context.Background()
	model, err := gemini.NewModel(ctx, "gemini-2.5-pro", &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create model: %v", err)
	}

	customAgent, err := llmagent.New(llmagent.Config{
		Name:        agentName,
		Model:       model,
		Description: "Resume and roadmap assistant",
		Instruction: "Follow the instructions in each message exactly and return only what they ask for.",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create agent: %v", err)
	}

	return customAgent, err
}

// AgentCompleter implements Completer on top of an ADK agent runner. Each
// call runs in its own throwaway session.
type AgentCompleter struct {
	appName  string
	runner   *runner.Runner
	sessions session.Service
}

func NewAgentCompleter(apiKey, agentName string) (*AgentCompleter, error) {
	assistant, err := GetAgent(apiKey, agentName)
	if err != nil {
		return nil, err
	}

	inMemoryService := session.InMemoryService()
	r, err := runner.New(runner.Config{
		AppName:        assistant.Name(),
		Agent:          assistant,
		SessionService: inMemoryService,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	return &AgentCompleter{
		appName:  agentName,
		runner:   r,
		sessions: inMemoryService,
	}, nil
}

func (c *AgentCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	agentSession, err := c.sessions.Create(ctx, &session.CreateRequest{
		AppName:   c.appName,
		UserID:    uuid.NewString(),
		SessionID: uuid.NewString(),
	})
	if err != nil {
		return "", &UpstreamServiceError{Service: "generative", Err: err}
	}
	defer c.sessions.Delete(context.Background(), &session.DeleteRequest{
		AppName:   agentSession.Session.AppName(),
		UserID:    agentSession.Session.UserID(),
		SessionID: agentSession.Session.ID(),
	})

	stream := c.runner.Run(ctx, agentSession.Session.UserID(), agentSession.Session.ID(), &genai.Content{
		Role: "user",
		Parts: []*genai.Part{
			{Text: prompt},
		},
	}, agent.RunConfig{})

	var output string
	for event, err := range stream {
		if err != nil {
			return "", &UpstreamServiceError{Service: "generative", Err: err}
		}
		if event != nil && event.IsFinalResponse() && len(event.Content.Parts) > 0 {
			output = event.Content.Parts[0].Text
		}
	}
	if output == "" {
		return "", &UpstreamServiceError{Service: "generative", Err: fmt.Errorf("empty agent response")}
	}
	return output, nil
}

// GeminiEmbedder implements Embedder with the Gemini embedding model.
type GeminiEmbedder struct {
	client *genai.Client
}

func NewGeminiEmbedder(ctx context.Context, apiKey string) (*GeminiEmbedder, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiEmbedder{client: client}, nil
}

func (e *GeminiEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	ctx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	contents := make([]*genai.Content, 0, len(texts))
	for _, t := range texts {
		contents = append(contents, genai.NewContentFromText(t, genai.RoleUser))
	}

	resp, err := e.client.Models.EmbedContent(ctx, embeddingModel, contents, nil)
	if err != nil {
		return nil, &UpstreamServiceError{Service: "embedding", Err: err}
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, &UpstreamServiceError{
			Service: "embedding",
			Err:     fmt.Errorf("got %d embeddings for %d texts", len(resp.Embeddings), len(texts)),
		}
	}

	vectors := make([][]float32, 0, len(resp.Embeddings))
	for _, emb := range resp.Embeddings {
		vectors = append(vectors, emb.Values)
	}
	return vectors, nil
}
