// Package heartbeat implements the heartbeat.stats module: a periodic job
// that logs conversation statistics and refreshes the active conversations
// gauge, so a silent bot still shows signs of life in the logs.
package heartbeat

import (
	"context"
	"errors"
	"log/slog"

	"github.com/flemzord/wattsup/internal/conversation"
	"github.com/flemzord/wattsup/internal/core"
	"github.com/flemzord/wattsup/internal/cron"
	"github.com/flemzord/wattsup/internal/metrics"
	"gopkg.in/yaml.v3"
)

func init() {
	core.RegisterModule(&Heartbeat{})
}

// Compile-time interface guards.
var (
	_ core.Module       = (*Heartbeat)(nil)
	_ core.Configurable = (*Heartbeat)(nil)
	_ core.Provisioner  = (*Heartbeat)(nil)
	_ core.Starter      = (*Heartbeat)(nil)
	_ core.Stopper      = (*Heartbeat)(nil)
)

// Config holds the heartbeat configuration.
type Config struct {
	// Schedule is a 5-field cron expression. Defaults to every 5 minutes.
	Schedule string `yaml:"schedule"`
}

func (c *Config) defaults() {
	if c.Schedule == "" {
		c.Schedule = "*/5 * * * *"
	}
}

// Heartbeat is the stats heartbeat module.
type Heartbeat struct {
	config    Config
	appCtx    *core.AppContext
	logger    *slog.Logger
	scheduler *cron.Scheduler
}

// ModuleInfo implements core.Module.
func (h *Heartbeat) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{
		ID:  "heartbeat.stats",
		New: func() core.Module { return &Heartbeat{} },
	}
}

// Configure implements core.Configurable.
func (h *Heartbeat) Configure(node *yaml.Node) error {
	if err := node.Decode(&h.config); err != nil {
		return err
	}
	h.config.defaults()
	return nil
}

// Provision implements core.Provisioner.
func (h *Heartbeat) Provision(ctx *core.AppContext) error {
	h.appCtx = ctx
	h.logger = ctx.Logger
	h.scheduler = cron.NewScheduler(ctx.Logger)
	return nil
}

// Start implements core.Starter. The conversation store is resolved lazily
// because the bot wiring registers it after module provisioning.
func (h *Heartbeat) Start() error {
	svc, ok := h.appCtx.Service("conversation.store")
	if !ok {
		return errors.New("heartbeat: conversation.store service not found")
	}
	store, ok := svc.(conversation.Store)
	if !ok {
		return errors.New("heartbeat: conversation.store service has wrong type")
	}

	job := &statsJob{
		store:    store,
		logger:   h.logger,
		schedule: h.config.Schedule,
	}
	if svc, ok := h.appCtx.Service("metrics"); ok {
		if m, ok := svc.(*metrics.Metrics); ok {
			job.metrics = m
		}
	}

	if err := h.scheduler.RegisterJob(job); err != nil {
		return err
	}
	return h.scheduler.Start()
}

// Stop implements core.Stopper.
func (h *Heartbeat) Stop(ctx context.Context) error {
	if h.scheduler == nil {
		return nil
	}
	return h.scheduler.Stop(ctx)
}

// statsJob logs the conversation count and refreshes the gauge.
type statsJob struct {
	store    conversation.Store
	metrics  *metrics.Metrics
	logger   *slog.Logger
	schedule string
}

// Compile-time interface check.
var _ cron.Job = (*statsJob)(nil)

// Name implements cron.Job.
func (j *statsJob) Name() string { return "conversation_stats" }

// Schedule implements cron.Job.
func (j *statsJob) Schedule() string { return j.schedule }

// Run implements cron.Job.
func (j *statsJob) Run(_ context.Context) error {
	count := j.store.Len()
	j.logger.Info("heartbeat", "conversations", count)
	if j.metrics != nil {
		j.metrics.ActiveConversations.Set(float64(count))
	}
	return nil
}
