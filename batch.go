package main

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Scheduler owns the two periodic batch jobs. It is started and stopped
// explicitly at bootstrap; the jobs themselves are plain methods so tests
// invoke them directly without a timer.
type Scheduler struct {
	cron     *cron.Cron
	pipeline *Pipeline
}

func NewScheduler(p *Pipeline, dailySpec, weeklySpec string) (*Scheduler, error) {
	s := &Scheduler{cron: cron.New(), pipeline: p}

	if _, err := s.cron.AddFunc(dailySpec, func() { p.RunDaily(context.Background()) }); err != nil {
		return nil, err
	}
	if _, err := s.cron.AddFunc(weeklySpec, func() { p.RunWeekly(context.Background()) }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() { s.cron.Start() }

func (s *Scheduler) Stop() { s.cron.Stop() }

// RunDaily recomputes gaps for every user with a target role, from the
// already-stored structured resume, and emails a summary to anyone with at
// least one gap. A failing user is logged and skipped, never aborts the run.
func (p *Pipeline) RunDaily(ctx context.Context) {
	logger := slog.With("component", "batch", "job", "daily")
	users, err := p.Store.ListUsersWithNonEmptyRole(ctx)
	if err != nil {
		logger.Error("listing users failed, skipping run", "error", err)
		return
	}
	logger.Info("daily gap check started", "users", len(users))

	for _, user := range users {
		doc, ok, err := storedResume(user)
		if err != nil {
			logger.Error("skipping user", "user_id", user.ID, "error", err)
			continue
		}
		if !ok {
			continue // nothing uploaded yet
		}

		gaps := p.GapsForRole(ctx, doc.Skills, user.TargetRole)
		if len(gaps) == 0 {
			continue
		}

		body := gapSummaryHTML(user.Name, user.TargetRole, gaps)
		if err := p.Mailer.Send("Your daily skill gap summary", body, user.Email); err != nil {
			logger.Error("sending summary failed", "user_id", user.ID, "error", err)
			continue
		}
		logger.Info("summary sent", "user_id", user.ID, "gaps", len(gaps))
	}
	logger.Info("daily gap check finished")
}

// RunWeekly re-extracts every stored resume end to end, treating the stored
// structured data as potentially stale, then recomputes gaps and emails a
// report with a fresh roadmap. Same per-user failure isolation as RunDaily.
func (p *Pipeline) RunWeekly(ctx context.Context) {
	logger := slog.With("component", "batch", "job", "weekly")
	users, err := p.Store.ListUsersWithNonEmptyRole(ctx)
	if err != nil {
		logger.Error("listing users failed, skipping run", "error", err)
		return
	}
	logger.Info("weekly reindex started", "users", len(users))

	for _, user := range users {
		doc, ok, err := p.ReindexResume(ctx, user)
		if err != nil {
			logger.Error("skipping user", "user_id", user.ID, "error", err)
			continue
		}
		if !ok {
			continue // nothing uploaded yet
		}

		gaps := p.GapsForRole(ctx, doc.Skills, user.TargetRole)
		if len(gaps) == 0 {
			continue
		}

		roadmap := Synthesize(ctx, p.Completer, gaps, p.Resources)
		body := weeklyReportHTML(user.Name, user.TargetRole, gaps, roadmap)
		if err := p.Mailer.Send("Your weekly skill gap report", body, user.Email); err != nil {
			logger.Error("sending report failed", "user_id", user.ID, "error", err)
			continue
		}
		logger.Info("report sent", "user_id", user.ID, "gaps", len(gaps))
	}
	logger.Info("weekly reindex finished")
}
