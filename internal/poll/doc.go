// Package poll is an umbrella for the attendance-poll core.
//
// The package is organized into three subpackages:
//   - domain: Defines the per-chat session entity, its vote ledger rules,
//     display-name resolution, and the tally computations.
//   - render: Produces the fixed-locale text shown to chat members.
//   - app: Implements the session store and lifecycle controller that own
//     timers and dispatch messages through the chat gateway.
package poll
