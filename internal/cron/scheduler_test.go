package cron

import (
	"context"
	"log/slog"
	"testing"
)

type stubJob struct {
	name     string
	schedule string
}

func (j stubJob) Name() string              { return j.name }
func (j stubJob) Schedule() string          { return j.schedule }
func (j stubJob) Run(context.Context) error { return nil }

func TestRegisterJob_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	s := NewScheduler(slog.New(slog.DiscardHandler))
	if err := s.RegisterJob(stubJob{name: "stats", schedule: "* * * * *"}); err != nil {
		t.Fatalf("RegisterJob() error: %v", err)
	}
	if err := s.RegisterJob(stubJob{name: "stats", schedule: "* * * * *"}); err == nil {
		t.Error("RegisterJob() = nil, want duplicate error")
	}
}

func TestStart_RejectsInvalidSchedule(t *testing.T) {
	t.Parallel()

	s := NewScheduler(slog.New(slog.DiscardHandler))
	if err := s.RegisterJob(stubJob{name: "bad", schedule: "not a schedule"}); err != nil {
		t.Fatalf("RegisterJob() error: %v", err)
	}
	if err := s.Start(); err == nil {
		t.Error("Start() = nil, want invalid schedule error")
	}
}

func TestStartStop(t *testing.T) {
	t.Parallel()

	s := NewScheduler(slog.New(slog.DiscardHandler))
	if err := s.RegisterJob(stubJob{name: "stats", schedule: "*/5 * * * *"}); err != nil {
		t.Fatalf("RegisterJob() error: %v", err)
	}
	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Errorf("Stop() error: %v", err)
	}
}
