package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jusunglee/chuvtranslit/internal/metrics"
	"github.com/jusunglee/chuvtranslit/internal/ratelimit"
)

const (
	defaultRateLimit  = 5
	defaultRateWindow = 60 * time.Second
	commandTimeout    = 10 * time.Second
)

// Command result labels for metrics.BotCommandsTotal.
const (
	resultOK          = "ok"
	resultUserError   = "user_error"
	resultError       = "error"
	resultRateLimited = "rate_limited"
)

type Config struct {
	// GuildID registers commands to a single guild, which propagates
	// immediately. Empty registers globally.
	GuildID         string
	RateLimit       int
	RateWindow      time.Duration
	CleanupInterval time.Duration
}

type Bot struct {
	log     Logger
	session DiscordSession
	limiter *ratelimit.Limiter
	config  Config
}

func New(log Logger, session DiscordSession, config Config) *Bot {
	if config.RateLimit <= 0 {
		config.RateLimit = defaultRateLimit
	}
	if config.RateWindow <= 0 {
		config.RateWindow = defaultRateWindow
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = 10 * time.Minute
	}
	return &Bot{
		log:     log,
		session: session,
		limiter: ratelimit.New(config.RateLimit, config.RateWindow),
		config:  config,
	}
}

// Run connects to Discord, registers the slash commands and serves
// interactions until ctx is canceled.
func (b *Bot) Run(ctx context.Context) error {
	b.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		b.handleInteraction(ctx, i)
	})
	b.session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		b.log.InfoContext(ctx, "connected to Discord", "username", r.User.Username)
	})

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("opening Discord connection: %w", err)
	}
	defer b.session.Close()

	if err := b.registerCommands(ctx); err != nil {
		return fmt.Errorf("registering commands: %w", err)
	}

	go b.limiter.Run(ctx, b.config.CleanupInterval)

	b.log.InfoContext(ctx, "bot is running, press Ctrl+C to stop")
	<-ctx.Done()
	b.log.Info("shutdown signal received")
	return nil
}

func (b *Bot) registerCommands(ctx context.Context) error {
	appID := b.session.GetUserID()
	guildID := b.config.GuildID
	if guildID != "" {
		b.log.InfoContext(ctx, "registering commands to guild", "guild_id", guildID)
		if _, err := b.session.ApplicationCommandBulkOverwrite(appID, "", []*discordgo.ApplicationCommand{}); err != nil {
			b.log.WarnContext(ctx, "failed to clear global commands", "error", err)
		} else {
			b.log.InfoContext(ctx, "cleared global commands")
		}
	} else {
		b.log.InfoContext(ctx, "registering commands globally (may take up to 1 hour to propagate)")
	}

	if _, err := b.session.ApplicationCommandBulkOverwrite(appID, guildID, commands); err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}
	b.log.InfoContext(ctx, "registered commands", "count", len(commands))
	return nil
}

type handlerResult struct {
	Response  string
	Embed     *discordgo.MessageEmbed
	Ephemeral bool
	Err       error
}

type userError struct {
	Err error
}

func (e *userError) Error() string {
	return e.Err.Error()
}

func (e *userError) Unwrap() error {
	return e.Err
}

func newUserError(err error) *userError {
	return &userError{Err: err}
}

func (b *Bot) handleInteraction(parent context.Context, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	ctx, cancel := context.WithTimeout(parent, commandTimeout)
	defer cancel()

	cmd := i.ApplicationCommandData().Name
	userID := interactionUserID(i)

	if !b.limiter.Allow(userID) {
		metrics.RateLimitHits.WithLabelValues("bot").Inc()
		metrics.BotCommandsTotal.WithLabelValues(cmd, resultRateLimited).Inc()
		b.respond(ctx, i, handlerResult{
			Response:  "⏳ You're sending commands too quickly. Please wait a minute and try again.",
			Ephemeral: true,
		})
		return
	}

	var result handlerResult
	switch cmd {
	case "translit":
		result = b.handleTranslit(i)
	case "directions":
		result = b.handleDirections()
	case "table":
		result = b.handleTable(i)
	default:
		result = handlerResult{
			Response:  "❌ Unknown command.",
			Ephemeral: true,
			Err:       fmt.Errorf("unknown command %q", cmd),
		}
	}

	b.respond(ctx, i, result)

	if result.Err == nil {
		metrics.BotCommandsTotal.WithLabelValues(cmd, resultOK).Inc()
		return
	}

	if _, ok := errors.AsType[*userError](result.Err); ok {
		metrics.BotCommandsTotal.WithLabelValues(cmd, resultUserError).Inc()
		if b.config.GuildID != "" {
			b.log.WarnContext(ctx, "user error", "command", cmd, "error", result.Err, "channel_id", i.ChannelID)
		}
		return
	}
	metrics.BotCommandsTotal.WithLabelValues(cmd, resultError).Inc()
	b.log.ErrorContext(ctx, "command failed", "command", cmd, "error", result.Err, "channel_id", i.ChannelID)
}

func (b *Bot) respond(ctx context.Context, i *discordgo.InteractionCreate, result handlerResult) {
	data := &discordgo.InteractionResponseData{Content: result.Response}
	if result.Embed != nil {
		data.Embeds = []*discordgo.MessageEmbed{result.Embed}
	}
	if result.Ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		b.log.ErrorContext(ctx, "failed to respond to interaction", "error", err)
	}
}

// interactionUserID is the invoking user: Member in guilds, User in DMs.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
