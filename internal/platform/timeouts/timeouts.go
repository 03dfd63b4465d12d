// Package timeouts defines shared timeout constants used across the bot.
// Centralizing these values keeps the durations discoverable and prevents
// drift between the Telegram client and the entrypoint.
package timeouts

import "time"

// TelegramRequest caps a single Telegram Bot API HTTP request. It must stay
// above the long-poll timeout, which rides on the same client.
const TelegramRequest = 30 * time.Second

// LongPoll is the default getUpdates long-poll window.
const LongPoll = 10 * time.Second

// Shutdown limits how long the process waits for telemetry and the poller
// to drain during graceful shutdown.
const Shutdown = 5 * time.Second
