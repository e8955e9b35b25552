// Package bot implements the reply orchestrator. It consumes inbound
// messages from channels through a worker pool, serializes processing per
// user, drives the extraction and completion flow, and sends replies back
// through the channel dispatcher.
package bot

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flemzord/wattsup/internal/augment"
	"github.com/flemzord/wattsup/internal/channel"
	"github.com/flemzord/wattsup/internal/conversation"
	"github.com/flemzord/wattsup/internal/core"
	"github.com/flemzord/wattsup/internal/metrics"
	"github.com/flemzord/wattsup/internal/provider"
	"github.com/flemzord/wattsup/internal/trip"
	"github.com/flemzord/wattsup/pkg/message"
)

const defaultInboxSize = 256

// ErrInboxFull is returned by Submit when the inbox is at capacity.
var ErrInboxFull = errors.New("bot: inbox full, message dropped")

// ErrBotStopped is returned by Submit after the bot has been stopped.
var ErrBotStopped = errors.New("bot: stopped")

// Config holds the bot's construction dependencies and tuning knobs.
type Config struct {
	Dispatcher *channel.Dispatcher
	Provider   provider.Provider
	Augmenter  augment.Augmenter // optional
	Store      conversation.Store
	Metrics    *metrics.Metrics
	Logger     *slog.Logger

	WorkerCount int
	InboxSize   int
}

// Bot is the reply orchestrator.
type Bot struct {
	config   Config
	store    conversation.Store
	lanes    *laneLock
	pool     *workerPool
	inbox    chan envelope
	inboxMu  sync.RWMutex
	cancel   context.CancelFunc
	stopOnce sync.Once
	stopped  atomic.Bool
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Compile-time interface guards.
var (
	_ core.Module  = (*Bot)(nil)
	_ core.Starter = (*Bot)(nil)
	_ core.Stopper = (*Bot)(nil)
)

// New creates a Bot. Dispatcher, Provider, Store, Metrics, and Logger are
// required; Augmenter is optional.
func New(cfg Config) (*Bot, error) {
	if cfg.Dispatcher == nil {
		return nil, errors.New("bot: dispatcher is required")
	}
	if cfg.Provider == nil {
		return nil, errors.New("bot: provider is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("bot: conversation store is required")
	}
	if cfg.Metrics == nil {
		return nil, errors.New("bot: metrics are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.InboxSize <= 0 {
		cfg.InboxSize = defaultInboxSize
	}

	return &Bot{
		config: cfg,
		store:  cfg.Store,
		lanes:  newLaneLock(),
		pool:   newWorkerPool(cfg.WorkerCount),
		inbox:  make(chan envelope, cfg.InboxSize),
		logger: cfg.Logger,
		tracer: otel.Tracer("wattsup/bot"),
	}, nil
}

// ModuleInfo implements core.Module. The bot is constructed by the wiring
// layer rather than the registry, so New is nil.
func (b *Bot) ModuleInfo() core.ModuleInfo {
	return core.ModuleInfo{ID: "bot"}
}

// Start implements core.Starter. It launches the worker pool.
func (b *Bot) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	b.inboxMu.Lock()
	b.cancel = cancel
	b.inboxMu.Unlock()

	b.pool.Start(ctx, b.inbox, b.handle)
	b.logger.Info("bot started", "workers", b.pool.size, "inbox_size", cap(b.inbox))
	return nil
}

// Stop implements core.Stopper. It closes the inbox, drains in-flight work,
// and cancels the worker context.
func (b *Bot) Stop(_ context.Context) error {
	b.stopOnce.Do(func() {
		b.logger.Info("bot stopping")

		b.inboxMu.Lock()
		b.stopped.Store(true)
		close(b.inbox)
		cancel := b.cancel
		b.inboxMu.Unlock()

		// Messages still queued at shutdown are processed with a live
		// context; cancel only once the workers have drained the inbox.
		b.pool.Wait()
		if cancel != nil {
			cancel()
		}
		b.logger.Info("bot stopped")
	})
	return nil
}

// Submit enqueues an inbound message for processing. If the inbox is full
// the message is dropped with a warning log.
func (b *Bot) Submit(msg message.InboundMessage) error {
	b.inboxMu.RLock()
	defer b.inboxMu.RUnlock()

	if b.stopped.Load() {
		return ErrBotStopped
	}

	b.config.Metrics.MessagesTotal.Inc()

	env := envelope{Message: msg, UserID: msg.Sender.ID}
	select {
	case b.inbox <- env:
		return nil
	default:
		b.logger.Warn("inbox full, message dropped",
			"channel", msg.Channel,
			"chat_id", msg.Chat.ID,
		)
		return ErrInboxFull
	}
}

// handle processes one inbound message end to end. Messages from the same
// user are serialized via the lane lock.
func (b *Bot) handle(ctx context.Context, env envelope) {
	start := time.Now()
	msg := env.Message

	correlationID := uuid.NewString()
	logger := b.logger.With(
		"correlation_id", correlationID,
		"user", env.UserID,
		"chat", msg.Chat.ID,
	)

	ctx, span := b.tracer.Start(ctx, "bot.handle",
		trace.WithAttributes(
			attribute.String("correlation_id", correlationID),
			attribute.String("channel", msg.Channel),
		),
	)
	defer span.End()

	b.lanes.Acquire(env.UserID)
	defer b.lanes.Release(env.UserID)

	if msg.IsCommand("start") {
		b.store.Reset(env.UserID)
		b.send(ctx, logger, msg, greetingText)
		b.config.Metrics.ActiveConversations.Set(float64(b.store.Len()))
		return
	}

	// Off-topic messages from users with no history get a fixed refusal
	// without touching the model or creating state.
	if !trip.InDomain(msg.Text) && !b.store.Exists(env.UserID) {
		logger.Debug("off-topic first contact refused")
		b.config.Metrics.RefusalsTotal.Inc()
		b.send(ctx, logger, msg, refusalText)
		return
	}

	b.store.Ensure(env.UserID)

	facts := trip.Extract(msg.Text, b.store.Facts(env.UserID))
	b.store.SetFacts(env.UserID, facts)

	prompt := msg.Text
	if len(facts) > 0 {
		prompt += factsHeader + facts.Render()
	}

	userTurn := provider.LLMMessage{Role: provider.MessageRoleUser, Content: prompt}
	request := provider.CompletionRequest{
		Messages: append(b.store.History(env.UserID), userTurn),
	}

	b.sendTyping(ctx, msg.Chat, msg.Channel)

	resp, err := b.config.Provider.Complete(ctx, request)
	if err != nil {
		logger.Error("completion failed", "error", err)
		b.config.Metrics.ProviderFailures.WithLabelValues(failureReason(err)).Inc()
		// The exchange is not recorded; the user can simply try again.
		b.send(ctx, logger, msg, apologyText)
		return
	}

	assistantTurn := provider.LLMMessage{Role: provider.MessageRoleAssistant, Content: resp.Content}
	b.store.AppendExchange(env.UserID, userTurn, assistantTurn)

	b.send(ctx, logger, msg, resp.Content)
	b.config.Metrics.RepliesTotal.Inc()
	b.config.Metrics.ObserveReplyLatency(time.Since(start))
	b.config.Metrics.ActiveConversations.Set(float64(b.store.Len()))

	b.augmentReply(ctx, logger, msg, facts)
}

// augmentReply sends the charging station supplement as a follow-up message
// when the augmenter produces one. Failures are logged and swallowed; the
// reply has already been delivered.
func (b *Bot) augmentReply(ctx context.Context, logger *slog.Logger, msg message.InboundMessage, facts trip.Facts) {
	if b.config.Augmenter == nil {
		return
	}

	supplement, err := b.config.Augmenter.Supplement(ctx, facts)
	if err != nil {
		logger.Warn("augmentation failed", "error", err)
		b.config.Metrics.LookupErrorsTotal.Inc()
		return
	}
	if supplement == "" {
		return
	}

	b.send(ctx, logger, msg, supplement)
	b.config.Metrics.AugmentationsTotal.Inc()
}

// send delivers text back to the chat the message came from. Send failures
// are logged, never propagated; there is nowhere to report them to.
func (b *Bot) send(ctx context.Context, logger *slog.Logger, in message.InboundMessage, text string) {
	if err := b.config.Dispatcher.Send(ctx, message.NewTextMessage(in, text)); err != nil {
		logger.Error("send failed", "error", err)
	}
}

// sendTyping shows a typing indicator when the channel supports one.
func (b *Bot) sendTyping(ctx context.Context, chat message.Chat, channelName string) {
	ch, ok := b.config.Dispatcher.Get(channelName)
	if !ok {
		return
	}
	typing, ok := ch.(channel.TypingChannel)
	if !ok {
		return
	}
	if err := typing.SendTyping(ctx, chat); err != nil {
		b.logger.Debug("typing indicator failed", "error", err)
	}
}

// failureReason maps provider errors to a metrics label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, provider.ErrRateLimit):
		return "rate_limit"
	case errors.Is(err, provider.ErrProviderDown):
		return "unavailable"
	case errors.Is(err, provider.ErrMalformedResponse):
		return "malformed"
	default:
		return "other"
	}
}
