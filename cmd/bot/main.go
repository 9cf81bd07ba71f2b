package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/jusunglee/chuvtranslit/internal/bot"
	"github.com/jusunglee/chuvtranslit/internal/envsetup"
	"github.com/jusunglee/chuvtranslit/internal/health"
	"github.com/jusunglee/chuvtranslit/internal/logger"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/sync/errgroup"
)

const envFile = ".env"

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
	slog.Info("exiting without error")
}

func mainE() error {
	if envsetup.NeedsSetup(envFile) && os.Getenv("DISCORD_TOKEN") == "" {
		completed, err := envsetup.Run(envFile)
		if err != nil {
			return fmt.Errorf("running env setup: %w", err)
		}
		if !completed {
			return errors.New("env setup was not completed")
		}
	}
	_ = godotenv.Load(envFile)

	fs := ff.NewFlagSet("translit-bot")
	var (
		discordToken = fs.StringLong("discord-token", "", "Discord bot token")
		guildID      = fs.StringLong("discord-guild-id", "", "Register commands to this guild only (instant, for development)")
		healthPort   = fs.IntLong("health-port", 8081, "Port for /health and /metrics")
		rateLimit    = fs.IntLong("rate-limit", 5, "Commands allowed per user per window")
		rateWindow   = fs.DurationLong("rate-window", time.Minute, "Per-user rate limit window")
	)

	if err := ff.Parse(fs, os.Args[1:], ff.WithEnvVars()); err != nil {
		fmt.Printf("%s\n", ffhelp.Flags(fs))
		return fmt.Errorf("parsing flags: %w", err)
	}

	if *discordToken == "" {
		return errors.New("discord-token is required")
	}

	log := logger.New()

	session, err := discordgo.New("Bot " + *discordToken)
	if err != nil {
		return fmt.Errorf("creating Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds

	b := bot.New(bot.NewLogger(log), bot.NewDiscordSession(session), bot.Config{
		GuildID:    *guildID,
		RateLimit:  *rateLimit,
		RateWindow: *rateWindow,
	})
	healthServer := health.New(*healthPort)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("received signal, shutting down", "signal", sig)
		cancel(errors.New("signal received"))
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.Run(ctx)
	})
	g.Go(func() error {
		log.InfoContext(ctx, "starting health server", "port", *healthPort)
		return healthServer.Start()
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return healthServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
