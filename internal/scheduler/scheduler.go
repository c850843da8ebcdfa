// Copyright (c) 2025-2026 Ammar Ahmed
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scheduler runs the site's periodic maintenance jobs.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Ammar-Ma-Eid/QAIU-Website/internal/activity"
)

// Scheduler owns the cron instance and the jobs registered on it.
type Scheduler struct {
	cron     *cron.Cron
	recorder *activity.Recorder
	logger   *slog.Logger
}

// New creates a scheduler. Jobs are registered in Start.
func New(recorder *activity.Recorder, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:     cron.New(),
		recorder: recorder,
		logger:   logger,
	}
}

// Start registers the hourly activity log prune and begins the cron loop.
// The read path already caps what it serves, so the prune only keeps the
// table from accumulating rows past the retention limit.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("@hourly", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.recorder.Prune(ctx); err != nil {
			s.logger.Error("failed to prune activity log", "error", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
	return nil
}

// Stop waits for any running job before shutting the scheduler down.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}
