// Package render produces the fixed-locale text the bot shows in chats.
//
// Truncation of long voter lists is a rendering concern only: the counts in
// a summary always reflect the full ledger.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/louisbranch/readycheck/internal/poll/domain"
)

// maxListedNames caps how many voters are listed per answer group before
// the remainder collapses into a "+N" marker.
const maxListedNames = 30

// emptyList is shown for an answer group nobody picked.
const emptyList = "—"

// Prompt returns the poll opening message. A positive lead mentions how
// long remains until the meeting.
func Prompt(lead time.Duration) string {
	if lead > 0 {
		return fmt.Sprintf("🕘 The meeting starts in %s.\nAre you ready?", formatLead(lead))
	}
	return "🕘 Are you ready for the meeting?"
}

// ShortLine renders a one-line summary for callback answers and quick status.
func ShortLine(sum domain.ShortSummary) string {
	return fmt.Sprintf("✅ Ready: %d | ❌ Not ready: %d | Total: %d", sum.Yes, sum.No, sum.Total)
}

// FullResults renders the final tally with both voter lists.
func FullResults(sum domain.FullSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Results:\n")
	fmt.Fprintf(&b, "✅ Ready: %d\n", sum.Yes)
	fmt.Fprintf(&b, "❌ Not ready: %d\n", sum.No)
	fmt.Fprintf(&b, "Total: %d\n\n", sum.Total)
	fmt.Fprintf(&b, "✅ Ready:\n%s\n\n", nameList(sum.YesNames))
	fmt.Fprintf(&b, "❌ Not ready:\n%s", nameList(sum.NoNames))
	return b.String()
}

// Help returns the /start reply listing the bot commands.
func Help() string {
	return "Hi! I run the meeting readiness poll. 👋\n\n" +
		"/where — show this chat's ID\n" +
		"/ready — open a poll now\n" +
		"/results — current results with names\n" +
		"/stop — close the poll early"
}

// ChatID returns the /where reply.
func ChatID(id int64) string {
	return fmt.Sprintf("Chat ID: %d", id)
}

// NoActivePoll is the notice for operations outside an open poll.
func NoActivePoll() string {
	return "There is no active poll right now."
}

// VoteRecorded acknowledges a vote button press.
func VoteRecorded(answer domain.Answer) string {
	if answer == domain.AnswerYes {
		return "✅ Recorded"
	}
	return "❌ Recorded"
}

// VoteCancelled acknowledges a vote retraction.
func VoteCancelled() string {
	return "Vote cancelled"
}

// NothingToCancel is the notice for cancelling without a recorded vote.
func NothingToCancel() string {
	return "You have not voted yet."
}

// PollClosed acknowledges an operator /stop.
func PollClosed() string {
	return "✅ Poll closed."
}

func nameList(names []string) string {
	if len(names) == 0 {
		return emptyList
	}
	shown := names
	if len(shown) > maxListedNames {
		shown = shown[:maxListedNames]
	}
	lines := make([]string, 0, len(shown)+1)
	for i, n := range shown {
		lines = append(lines, fmt.Sprintf("%d) %s", i+1, n))
	}
	if rest := len(names) - maxListedNames; rest > 0 {
		lines = append(lines, fmt.Sprintf("... +%d", rest))
	}
	return strings.Join(lines, "\n")
}

func formatLead(lead time.Duration) string {
	if m := int(lead.Minutes()); m > 0 && lead == time.Duration(m)*time.Minute {
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	}
	return lead.String()
}
