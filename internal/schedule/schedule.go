// Package schedule opens polls at configured wall-clock times.
//
// The schedule derives from the meeting time and weekday set: the poll
// opens a configured lead ahead of the meeting so members answer before
// it starts. Time zone handling is delegated to the cron runner.
package schedule

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const minutesPerDay = 24 * 60

// validDays are the weekday tokens accepted in schedule configuration,
// matching the cron day-of-week names.
var validDays = map[string]bool{
	"SUN": true, "MON": true, "TUE": true, "WED": true,
	"THU": true, "FRI": true, "SAT": true,
}

// ParseDays splits and validates a comma-separated weekday list such as
// "TUE,THU,SAT".
func ParseDays(list string) ([]string, error) {
	var days []string
	for _, raw := range strings.Split(list, ",") {
		day := strings.ToUpper(strings.TrimSpace(raw))
		if day == "" {
			continue
		}
		if !validDays[day] {
			return nil, fmt.Errorf("invalid weekday %q", raw)
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays in %q", list)
	}
	return days, nil
}

// Spec derives the cron expression that fires lead before meetingTime
// (24h "HH:MM") on the given weekdays. A lead crossing midnight wraps to
// the previous clock time; the weekdays are left untouched.
func Spec(meetingTime string, days []string, lead time.Duration) (string, error) {
	var hh, mm int
	if _, err := fmt.Sscanf(meetingTime, "%d:%d", &hh, &mm); err != nil {
		return "", fmt.Errorf("invalid meeting time %q: %w", meetingTime, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return "", fmt.Errorf("invalid meeting time %q", meetingTime)
	}
	if lead < 0 {
		return "", fmt.Errorf("negative open lead %s", lead)
	}
	for _, day := range days {
		if !validDays[day] {
			return "", fmt.Errorf("invalid weekday %q", day)
		}
	}
	if len(days) == 0 {
		return "", fmt.Errorf("no weekdays configured")
	}

	leadMinutes := int(lead.Minutes()) % minutesPerDay
	total := (hh*60 + mm - leadMinutes + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%d %d * * %s", total%60, total/60, strings.Join(days, ",")), nil
}

// Opener starts a poll for a chat; satisfied by the poll controller.
type Opener interface {
	Open(ctx context.Context, chatID int64) error
}

// Config describes when and where scheduled polls open.
type Config struct {
	MeetingTime string
	Days        []string
	Lead        time.Duration
	Location    *time.Location
	ChatID      int64
}

// Scheduler fires poll opens on a cron schedule.
type Scheduler struct {
	cron *cron.Cron
}

// New builds a scheduler that opens polls in the configured chat. A failed
// scheduled open is logged and leaves the session idle until the next
// trigger or a manual /ready.
func New(cfg Config, opener Opener) (*Scheduler, error) {
	spec, err := Spec(cfg.MeetingTime, cfg.Days, cfg.Lead)
	if err != nil {
		return nil, err
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}

	runner := cron.New(cron.WithLocation(loc))
	_, err = runner.AddFunc(spec, func() {
		if err := opener.Open(context.Background(), cfg.ChatID); err != nil {
			log.Printf("scheduled poll open for chat %d: %v", cfg.ChatID, err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("register schedule %q: %w", spec, err)
	}

	log.Printf("schedule %q in %s for chat %d", spec, loc, cfg.ChatID)
	return &Scheduler{cron: runner}, nil
}

// Run starts the cron runner and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	<-ctx.Done()
	stopped := s.cron.Stop()
	<-stopped.Done()
}
