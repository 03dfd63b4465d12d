package readycheck

import (
	"context"
	"flag"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("readycheck", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Timezone != "Asia/Seoul" {
		t.Fatalf("expected default time zone, got %q", cfg.Timezone)
	}
	if cfg.MeetingTime != "21:00" {
		t.Fatalf("expected default meeting time, got %q", cfg.MeetingTime)
	}
	if cfg.MeetingDays != "TUE,THU,SAT" {
		t.Fatalf("expected default meeting days, got %q", cfg.MeetingDays)
	}
	if cfg.OpenLead != 10*time.Minute {
		t.Fatalf("expected default open lead, got %s", cfg.OpenLead)
	}
	if cfg.SessionDuration != 5*time.Minute {
		t.Fatalf("expected default session duration, got %s", cfg.SessionDuration)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("READYCHECK_TZ", "America/Toronto")
	t.Setenv("READYCHECK_SESSION_DURATION", "15m")

	fs := flag.NewFlagSet("readycheck", flag.ContinueOnError)
	args := []string{
		"-meeting-time", "19:30",
		"-chat-id", "-100200300",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Timezone != "America/Toronto" {
		t.Fatalf("expected env time zone, got %q", cfg.Timezone)
	}
	if cfg.SessionDuration != 15*time.Minute {
		t.Fatalf("expected env session duration, got %s", cfg.SessionDuration)
	}
	if cfg.MeetingTime != "19:30" {
		t.Fatalf("expected flag meeting time, got %q", cfg.MeetingTime)
	}
	if cfg.ChatID != -100200300 {
		t.Fatalf("expected flag chat id, got %d", cfg.ChatID)
	}
}

func TestRunRequiresBotToken(t *testing.T) {
	t.Setenv("READYCHECK_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{Timezone: "UTC"})
	if err == nil {
		t.Fatal("expected missing token error")
	}
}
