package domain

import "errors"

// Answer is a member's yes/no readiness response.
type Answer string

const (
	// AnswerYes indicates the member is ready for the meeting.
	AnswerYes Answer = "yes"
	// AnswerNo indicates the member is not ready.
	AnswerNo Answer = "no"
)

// IsValid reports whether the answer is a supported value.
func (a Answer) IsValid() bool {
	return a == AnswerYes || a == AnswerNo
}

var (
	// ErrSessionNotActive indicates an operation was attempted while no poll
	// is open for the chat.
	ErrSessionNotActive = errors.New("no active poll session")
	// ErrNoVoteToRetract indicates a vote cancellation for a user who has
	// not voted in the current session.
	ErrNoVoteToRetract = errors.New("no vote to retract")
	// ErrInvalidAnswer indicates an answer value outside yes/no.
	ErrInvalidAnswer = errors.New("invalid answer")
)

// Ballot is a user's latest response within a session.
type Ballot struct {
	Answer      Answer
	DisplayName string
}

// Session is the attendance-poll state for one chat.
//
// A session is created inactive, flips to active on Open, accumulates
// ballots keyed by user id, and flips back on Close. It is reused for the
// chat's next poll rather than deleted. The session itself carries no
// locking; callers serialize access per chat.
type Session struct {
	active  bool
	answers map[int64]Ballot
}

// NewSession returns an inactive session with an empty ledger.
func NewSession() *Session {
	return &Session{answers: make(map[int64]Ballot)}
}

// Active reports whether the session currently accepts votes.
func (s *Session) Active() bool {
	return s.active
}

// Open clears the ledger and starts accepting votes. Callers must close
// and dispatch the previous poll's tally before reopening.
func (s *Session) Open() {
	s.answers = make(map[int64]Ballot)
	s.active = true
}

// Close stops accepting votes and reports whether the session was active.
func (s *Session) Close() bool {
	was := s.active
	s.active = false
	return was
}

// RecordVote inserts or overwrites the ballot for userID. Re-voting is
// idempotent: the latest write wins and a user holds at most one entry.
func (s *Session) RecordVote(userID int64, answer Answer, displayName string) error {
	if !s.active {
		return ErrSessionNotActive
	}
	if !answer.IsValid() {
		return ErrInvalidAnswer
	}
	s.answers[userID] = Ballot{Answer: answer, DisplayName: displayName}
	return nil
}

// RetractVote removes the ballot for userID.
func (s *Session) RetractVote(userID int64) error {
	if !s.active {
		return ErrSessionNotActive
	}
	if _, ok := s.answers[userID]; !ok {
		return ErrNoVoteToRetract
	}
	delete(s.answers, userID)
	return nil
}

// Ballots returns a snapshot copy of the ledger.
func (s *Session) Ballots() []Ballot {
	out := make([]Ballot, 0, len(s.answers))
	for _, b := range s.answers {
		out = append(out, b)
	}
	return out
}
