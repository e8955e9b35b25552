package app

import (
	"fmt"
	"log/slog"

	"github.com/flemzord/wattsup/internal/augment"
	"github.com/flemzord/wattsup/internal/bot"
	"github.com/flemzord/wattsup/internal/channel"
	"github.com/flemzord/wattsup/internal/conversation"
	"github.com/flemzord/wattsup/internal/core"
	"github.com/flemzord/wattsup/internal/metrics"
	"github.com/flemzord/wattsup/internal/provider"
)

// wireBot creates the conversation store, metrics, and the bot itself, wires
// every loaded channel's inbox to the bot, and appends the bot to the app
// lifecycle. Must be called after LoadModules and before Start.
func wireBot(
	application *core.App,
	appCtx *core.AppContext,
	ids []string,
	logger *slog.Logger,
) error {
	dispatcher := channel.NewDispatcher()
	var channels []channel.Channel
	var llm provider.Provider
	var augmenter augment.Augmenter

	for _, id := range ids {
		mod, ok := application.Module(id)
		if !ok {
			continue
		}
		if ch, ok := mod.(channel.Channel); ok {
			// Register under the full module ID (e.g. "channel.telegram")
			// because that is what the channel sets as msg.Channel.
			if err := dispatcher.Register(id, ch); err != nil {
				return fmt.Errorf("registering channel %s: %w", id, err)
			}
			channels = append(channels, ch)
			logger.Info("bot: registered channel", "channel", id)
		}
		if p, ok := mod.(provider.Provider); ok {
			llm = p
			logger.Info("bot: discovered provider", "module", id)
		}
		if a, ok := mod.(augment.Augmenter); ok {
			augmenter = a
			logger.Info("bot: discovered augmenter", "module", id)
		}
	}

	if len(channels) == 0 {
		return fmt.Errorf("bot: at least one channel module is required")
	}
	if llm == nil {
		return fmt.Errorf("bot: at least one provider module is required")
	}
	if augmenter == nil {
		return fmt.Errorf("bot: an augmenter module is required")
	}

	store := conversation.NewInMemoryStore(bot.SystemPrompt)
	m := metrics.New("wattsup")

	b, err := bot.New(bot.Config{
		Dispatcher: dispatcher,
		Provider:   llm,
		Augmenter:  augmenter,
		Store:      store,
		Metrics:    m,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("creating bot: %w", err)
	}

	// Wire each channel's inbox to the bot.
	for _, ch := range channels {
		ch.SetInbox(b.Submit)
	}

	// The bot starts after the modules it depends on and stops before them.
	application.AppendModule("bot", b)

	// Register shared services for the gateway and heartbeat to discover.
	appCtx.RegisterService("conversation.store", store)
	appCtx.RegisterService("metrics", m)

	logger.Info("bot: wired", "channels", len(channels))
	return nil
}
