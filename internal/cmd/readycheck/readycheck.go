// Package readycheck parses bot command flags and composes the process
// entrypoint.
package readycheck

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/readycheck/internal/gateway/telegram"
	entrypoint "github.com/louisbranch/readycheck/internal/platform/cmd"
	"github.com/louisbranch/readycheck/internal/poll/app"
	"github.com/louisbranch/readycheck/internal/schedule"
)

// Config holds bot command configuration.
type Config struct {
	BotToken        string        `env:"READYCHECK_BOT_TOKEN"`
	ChatID          int64         `env:"READYCHECK_CHAT_ID"`
	Timezone        string        `env:"READYCHECK_TZ"               envDefault:"Asia/Seoul"`
	MeetingTime     string        `env:"READYCHECK_MEETING_TIME"     envDefault:"21:00"`
	MeetingDays     string        `env:"READYCHECK_MEETING_DAYS"     envDefault:"TUE,THU,SAT"`
	OpenLead        time.Duration `env:"READYCHECK_OPEN_LEAD"        envDefault:"10m"`
	SessionDuration time.Duration `env:"READYCHECK_SESSION_DURATION" envDefault:"5m"`
	PollTimeout     time.Duration `env:"READYCHECK_POLL_TIMEOUT"     envDefault:"10s"`
}

// ParseConfig parses environment and flags into a Config. The bot token is
// deliberately env-only so it never shows up in process listings.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.Int64Var(&cfg.ChatID, "chat-id", cfg.ChatID, "target group chat id for scheduled polls")
	fs.StringVar(&cfg.Timezone, "tz", cfg.Timezone, "IANA time zone for the meeting schedule")
	fs.StringVar(&cfg.MeetingTime, "meeting-time", cfg.MeetingTime, "meeting start time (HH:MM)")
	fs.StringVar(&cfg.MeetingDays, "meeting-days", cfg.MeetingDays, "comma-separated meeting weekdays")
	fs.DurationVar(&cfg.OpenLead, "open-lead", cfg.OpenLead, "how long before the meeting the poll opens")
	fs.DurationVar(&cfg.SessionDuration, "session-duration", cfg.SessionDuration, "how long a poll accepts votes")
	fs.DurationVar(&cfg.PollTimeout, "poll-timeout", cfg.PollTimeout, "Telegram long-poll timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run builds the bot and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, "readycheck", func(ctx context.Context) error {
		if strings.TrimSpace(cfg.BotToken) == "" {
			return fmt.Errorf("READYCHECK_BOT_TOKEN is required")
		}
		location, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return fmt.Errorf("load time zone %q: %w", cfg.Timezone, err)
		}

		client, err := telegram.NewClient(cfg.BotToken, cfg.PollTimeout)
		if err != nil {
			return err
		}
		controller := app.NewController(telegram.NewGateway(client), app.Config{
			SessionDuration: cfg.SessionDuration,
			OpenLead:        cfg.OpenLead,
		})
		bot := telegram.NewBot(client, controller)

		if cfg.ChatID != 0 {
			days, err := schedule.ParseDays(cfg.MeetingDays)
			if err != nil {
				return fmt.Errorf("parse meeting days: %w", err)
			}
			scheduler, err := schedule.New(schedule.Config{
				MeetingTime: cfg.MeetingTime,
				Days:        days,
				Lead:        cfg.OpenLead,
				Location:    location,
				ChatID:      cfg.ChatID,
			}, controller)
			if err != nil {
				return fmt.Errorf("build schedule: %w", err)
			}
			go scheduler.Run(ctx)
		} else {
			log.Printf("no target chat configured; scheduled polls disabled (send /where in the group to find its id)")
		}

		log.Printf("bot started")
		bot.Run(ctx)
		return nil
	})
}
