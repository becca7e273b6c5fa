package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"
	"time"

	_ "github.com/lib/pq"
	"github.com/streadway/amqp"
)

const (
	requestQueue    = "analysis_requests"
	updatesExchange = "analysis_updates"
)

// ConsumerConfig runs the ad-hoc side of the pipeline: the API layer
// publishes an AnalysisRequest per user, workers consume them and push
// status updates back out.
type ConsumerConfig struct {
	Pipeline    *Pipeline
	RABBITMQUrl string
	RabbitConn  *amqp.Connection
}

// AnalysisResult is the completed-status payload published for a request.
type AnalysisResult struct {
	Gaps    []MissingSkill `json:"gaps"`
	Roadmap []RoadmapItem  `json:"roadmap"`
}

// ProcessRequest runs the full pipeline for one user: download, extract,
// structure, fetch role skills, analyze, synthesize. Extraction failure is a
// user-facing failure here (the requester is waiting); everything upstream
// of it already degrades to fallbacks internally. skipped is true when the
// user has no target role or no stored resume.
func (cfg *ConsumerConfig) ProcessRequest(ctx context.Context, req AnalysisRequest) (result AnalysisResult, skipped bool, err error) {
	p := cfg.Pipeline

	user, err := p.Store.GetUserByID(ctx, req.UserID)
	if err != nil {
		return AnalysisResult{}, false, fmt.Errorf("loading user %s: %w", req.UserID, err)
	}
	if user.TargetRole == "" {
		return AnalysisResult{}, true, nil
	}

	doc, ok, err := p.ReindexResume(ctx, user)
	if err != nil {
		var extractErr *ExtractionError
		if errors.As(err, &extractErr) {
			return AnalysisResult{}, false, fmt.Errorf("we could not read your resume file, please re-upload it as PDF or Word: %w", err)
		}
		return AnalysisResult{}, false, err
	}
	if !ok {
		return AnalysisResult{}, true, nil
	}

	gaps := p.GapsForRole(ctx, doc.Skills, user.TargetRole)
	roadmap := Synthesize(ctx, p.Completer, gaps, p.Resources)

	return AnalysisResult{Gaps: gaps, Roadmap: roadmap}, false, nil
}

func worker(id int, cfg *ConsumerConfig, wg *sync.WaitGroup) {
	defer wg.Done()
	conn, err := amqp.Dial(cfg.RABBITMQUrl)
	if err != nil {
		log.Fatal("error dialling rabbitmq: " + err.Error())
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatal("error connecting to rabbitmq channel: " + err.Error())
	}
	defer ch.Close()
	_, err = ch.QueueDeclare(
		requestQueue, // queue name
		true,         // durable (survives broker restarts)
		false,        // auto-delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	msgs, err := ch.Consume(
		requestQueue, // queue name
		"",           // consumer tag
		true,         // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		log.Fatal("error consuming rabbitmq message: " + err.Error())
	}

	for msg := range msgs {
		var req AnalysisRequest
		if err := json.Unmarshal(msg.Body, &req); err != nil {
			slog.Error("undecodable analysis request", "worker", id+1, "error", err)
			continue
		}
		slog.Info("processing analysis request", "worker", id+1, "user_id", req.UserID)

		cfg.publishUpdate(req.UserID.String(), map[string]any{
			"user_id":   req.UserID,
			"status":    "processing",
			"message":   "analysis started",
			"timestamp": time.Now(),
		})

		result, skipped, err := cfg.ProcessRequest(context.Background(), req)
		switch {
		case err != nil:
			slog.Error("analysis request failed", "user_id", req.UserID, "error", err)
			cfg.publishUpdate(req.UserID.String(), map[string]any{
				"user_id":   req.UserID,
				"status":    "failed",
				"message":   err.Error(),
				"timestamp": time.Now(),
			})
		case skipped:
			cfg.publishUpdate(req.UserID.String(), map[string]any{
				"user_id":   req.UserID,
				"status":    "skipped",
				"message":   "set a target role and upload a resume first",
				"timestamp": time.Now(),
			})
		default:
			cfg.publishUpdate(req.UserID.String(), map[string]any{
				"user_id":   req.UserID,
				"status":    "completed",
				"message":   "analysis completed",
				"result":    result,
				"timestamp": time.Now(),
			})
		}
	}
}

func (cfg *ConsumerConfig) publishUpdate(userID string, update map[string]any) {
	ch, err := cfg.RabbitConn.Channel()
	if err != nil {
		slog.Error("failed to open update channel", "error", err)
		return
	}
	defer ch.Close()

	body, _ := json.Marshal(update)
	routingKey := fmt.Sprintf("user.%s", userID)

	err = ch.Publish(
		updatesExchange, // exchange
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		slog.Error("failed to publish update", "user_id", userID, "error", err)
	}
}

func (cfg *ConsumerConfig) StartConsumerWorkerPool(numWorkers int) {
	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for i := range numWorkers {
		slog.Info("worker started", "worker", i+1)
		go worker(i, cfg, &wg)
	}
	wg.Wait() // block until all workers finish
}
