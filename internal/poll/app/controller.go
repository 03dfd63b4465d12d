// Package app implements the attendance-poll session store and lifecycle
// controller.
//
// The controller owns the per-chat deferred-close timer and dispatches
// opening and closing messages through the chat gateway. Sessions are
// partitioned by chat id and never share mutable state, so chats proceed in
// parallel while operations on one chat serialize behind its mutex.
package app

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/readycheck/internal/poll/domain"
	"github.com/louisbranch/readycheck/internal/poll/render"
)

// Control identifies an inline action attached to the poll message.
type Control int

const (
	// ControlYes votes ready.
	ControlYes Control = iota
	// ControlNo votes not ready.
	ControlNo
	// ControlCancel retracts the sender's vote.
	ControlCancel
	// ControlResult answers with the current short summary.
	ControlResult
)

// pollControls is the full control row attached to an open poll.
var pollControls = []Control{ControlYes, ControlNo, ControlCancel, ControlResult}

// MessageRef identifies a previously sent chat message so it can be edited.
type MessageRef struct {
	MessageID string
	ChatID    int64
}

// Gateway sends and edits chat messages. Implementations adapt a concrete
// chat platform; the controller never depends on one directly.
type Gateway interface {
	Send(ctx context.Context, chatID int64, text string, controls []Control) (MessageRef, error)
	Edit(ctx context.Context, chatID int64, ref MessageRef, text string, controls []Control) error
}

// defaultSessionDuration is the voting window when none is configured.
const defaultSessionDuration = 5 * time.Minute

// Config controls poll lifecycle behavior.
type Config struct {
	// SessionDuration is how long a poll accepts votes before the deferred
	// close fires. Defaults to five minutes.
	SessionDuration time.Duration
	// OpenLead is how far ahead of the meeting the poll opens. It only
	// affects the prompt wording.
	OpenLead time.Duration
}

// Controller drives per-chat poll sessions: open, timed or explicit close,
// votes, retractions, and result peeks.
type Controller struct {
	gateway         Gateway
	sessionDuration time.Duration
	openLead        time.Duration

	mu    sync.Mutex
	chats map[int64]*chatState
}

// chatState bundles one chat's session with the controller-owned pieces of
// its lifecycle. The mutex serializes every operation touching the chat,
// including the timer-fired close, reproducing a single-threaded event
// order per chat.
type chatState struct {
	mu         sync.Mutex
	session    *domain.Session
	timer      *time.Timer
	generation uint64
	ref        MessageRef
	hasRef     bool
}

// NewController returns a controller dispatching through gateway.
func NewController(gateway Gateway, cfg Config) *Controller {
	duration := cfg.SessionDuration
	if duration <= 0 {
		duration = defaultSessionDuration
	}
	return &Controller{
		gateway:         gateway,
		sessionDuration: duration,
		openLead:        cfg.OpenLead,
		chats:           make(map[int64]*chatState),
	}
}

// chat returns the chat's state, creating an idle session on first use.
func (c *Controller) chat(chatID int64) *chatState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.chats[chatID]
	if !ok {
		st = &chatState{session: domain.NewSession()}
		c.chats[chatID] = st
	}
	return st
}

// Open starts a poll in the chat. An active session is closed first, with
// its final tally dispatched before the new ledger is cleared, so every
// opened poll gets exactly one terminal summary. A failed prompt send
// aborts the open and leaves the session idle.
func (c *Controller) Open(ctx context.Context, chatID int64) error {
	st := c.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := c.closeLocked(ctx, chatID, st); err != nil {
		// The superseded poll's summary could not be delivered; the new
		// poll still opens.
		log.Printf("close superseded poll for chat %d: %v", chatID, err)
	}

	st.session.Open()
	ref, err := c.gateway.Send(ctx, chatID, render.Prompt(c.openLead), pollControls)
	if err != nil {
		st.session.Close()
		return fmt.Errorf("send poll prompt: %w", err)
	}
	st.ref = ref
	st.hasRef = true

	st.generation++
	generation := st.generation
	st.timer = time.AfterFunc(c.sessionDuration, func() {
		if err := c.closeExpired(chatID, generation); err != nil {
			log.Printf("close expired poll for chat %d: %v", chatID, err)
		}
	})
	return nil
}

// Close ends the chat's poll and dispatches the final tally. Closing an
// idle session is a no-op.
func (c *Controller) Close(ctx context.Context, chatID int64) error {
	st := c.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return c.closeLocked(ctx, chatID, st)
}

// closeExpired is the timer-fired close. The generation tag keeps a stale
// timer that lost the race with a reopen from closing the newer session.
func (c *Controller) closeExpired(chatID int64, generation uint64) error {
	st := c.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.generation != generation {
		return nil
	}
	return c.closeLocked(context.Background(), chatID, st)
}

// closeLocked runs the close sequence under the chat lock: stop accepting
// votes, cancel the timer, and publish the final tally by editing the
// original poll message in place. When the edit fails the same text goes
// out as a new message instead; only a failed fallback send is reported.
func (c *Controller) closeLocked(ctx context.Context, chatID int64, st *chatState) error {
	if !st.session.Close() {
		return nil
	}
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
	}

	text := render.FullResults(domain.FullTally(st.session.Ballots()))

	hadRef := st.hasRef
	ref := st.ref
	st.hasRef = false
	if hadRef {
		err := c.gateway.Edit(ctx, chatID, ref, text, nil)
		if err == nil {
			return nil
		}
		log.Printf("edit poll message for chat %d: %v; sending summary instead", chatID, err)
	}
	if _, err := c.gateway.Send(ctx, chatID, text, nil); err != nil {
		return fmt.Errorf("send close summary: %w", err)
	}
	return nil
}

// Vote records or overwrites the user's answer in the chat's active poll.
func (c *Controller) Vote(chatID, userID int64, answer domain.Answer, user domain.UserInfo) error {
	st := c.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.session.RecordVote(userID, answer, user.DisplayName())
}

// CancelVote retracts the user's vote from the chat's active poll.
func (c *Controller) CancelVote(chatID, userID int64) error {
	st := c.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.session.RetractVote(userID)
}

// PeekShortSummary returns the running counts of the chat's active poll.
// Peeks are rejected once the poll closes.
func (c *Controller) PeekShortSummary(chatID int64) (domain.ShortSummary, error) {
	st := c.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.session.Active() {
		return domain.ShortSummary{}, domain.ErrSessionNotActive
	}
	return domain.ShortTally(st.session.Ballots()), nil
}

// PeekFullSummary returns the running tally with voter names.
func (c *Controller) PeekFullSummary(chatID int64) (domain.FullSummary, error) {
	st := c.chat(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()
	if !st.session.Active() {
		return domain.FullSummary{}, domain.ErrSessionNotActive
	}
	return domain.FullTally(st.session.Ballots()), nil
}
