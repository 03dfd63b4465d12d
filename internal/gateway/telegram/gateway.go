// Package telegram adapts the poll controller to the Telegram Bot API via
// telebot. It renders lifecycle controls as an inline keyboard and routes
// commands and button callbacks into controller operations, keeping the
// poll core free of any Telegram dependency.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/louisbranch/readycheck/internal/platform/timeouts"
	"github.com/louisbranch/readycheck/internal/poll/app"
)

// Callback uniques for the poll controls. They are part of the bot's wire
// surface: pending callbacks keep working across restarts as long as these
// stay stable.
const (
	uniqueYes    = "ready_yes"
	uniqueNo     = "ready_no"
	uniqueCancel = "ready_cancel"
	uniqueResult = "ready_result"
)

// controlButton maps a lifecycle control to its inline keyboard button.
func controlButton(markup *tele.ReplyMarkup, control app.Control) tele.Btn {
	switch control {
	case app.ControlYes:
		return markup.Data("✅ Ready", uniqueYes)
	case app.ControlNo:
		return markup.Data("❌ Not ready", uniqueNo)
	case app.ControlCancel:
		return markup.Data("↩️ Cancel vote", uniqueCancel)
	case app.ControlResult:
		return markup.Data("📊 Result", uniqueResult)
	}
	return tele.Btn{}
}

// controlMarkup builds the inline keyboard for the given controls, two
// buttons per row. Nil when there are no controls, which lets message
// edits drop the keyboard entirely.
func controlMarkup(controls []app.Control) *tele.ReplyMarkup {
	if len(controls) == 0 {
		return nil
	}
	markup := &tele.ReplyMarkup{}
	buttons := make([]tele.Btn, 0, len(controls))
	for _, control := range controls {
		buttons = append(buttons, controlButton(markup, control))
	}
	rows := make([]tele.Row, 0, (len(buttons)+1)/2)
	for len(buttons) > 2 {
		rows = append(rows, markup.Row(buttons[0], buttons[1]))
		buttons = buttons[2:]
	}
	rows = append(rows, markup.Row(buttons...))
	markup.Inline(rows...)
	return markup
}

// Gateway implements the controller's outbound message contract on a
// telebot client.
type Gateway struct {
	bot *tele.Bot
}

// NewGateway wraps the telebot client as a poll gateway.
func NewGateway(bot *tele.Bot) *Gateway {
	return &Gateway{bot: bot}
}

// Send posts text to the chat, attaching the controls as an inline
// keyboard when present.
func (g *Gateway) Send(_ context.Context, chatID int64, text string, controls []app.Control) (app.MessageRef, error) {
	var msg *tele.Message
	var err error
	if markup := controlMarkup(controls); markup != nil {
		msg, err = g.bot.Send(tele.ChatID(chatID), text, markup)
	} else {
		msg, err = g.bot.Send(tele.ChatID(chatID), text)
	}
	if err != nil {
		return app.MessageRef{}, fmt.Errorf("send to chat %d: %w", chatID, err)
	}
	return app.MessageRef{MessageID: strconv.Itoa(msg.ID), ChatID: chatID}, nil
}

// Edit rewrites a previously sent message in place. Editing without
// controls removes the inline keyboard.
func (g *Gateway) Edit(_ context.Context, chatID int64, ref app.MessageRef, text string, controls []app.Control) error {
	stored := tele.StoredMessage{MessageID: ref.MessageID, ChatID: ref.ChatID}
	var err error
	if markup := controlMarkup(controls); markup != nil {
		_, err = g.bot.Edit(stored, text, markup)
	} else {
		_, err = g.bot.Edit(stored, text)
	}
	if err != nil {
		return fmt.Errorf("edit message %s in chat %d: %w", ref.MessageID, chatID, err)
	}
	return nil
}

// NewClient builds a long-polling telebot client.
func NewClient(token string, pollTimeout time.Duration) (*tele.Bot, error) {
	if pollTimeout <= 0 {
		pollTimeout = timeouts.LongPoll
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: pollTimeout},
		Client: &http.Client{Timeout: timeouts.TelegramRequest},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return bot, nil
}
