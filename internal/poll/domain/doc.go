// Package domain defines the entities and ledger rules for attendance polls.
//
// A Session represents one chat's poll lifecycle. It tracks whether voting
// is open and the latest ballot per user.
//
// # Session Lifecycle
//
// Sessions move between two states:
//   - Idle: No poll is open. Votes, retractions, and result peeks are rejected.
//   - Active: The poll accepts votes. At most one active session exists per chat.
//
// Tallies are pure functions over a ledger snapshot and never mutate it.
package domain
