package telegram

import (
	"context"
	"errors"
	"log"

	tele "gopkg.in/telebot.v4"

	"github.com/louisbranch/readycheck/internal/poll/domain"
	"github.com/louisbranch/readycheck/internal/poll/render"
)

// Controller is the poll lifecycle surface the bot routes chat updates
// into.
type Controller interface {
	Open(ctx context.Context, chatID int64) error
	Close(ctx context.Context, chatID int64) error
	Vote(chatID, userID int64, answer domain.Answer, user domain.UserInfo) error
	CancelVote(chatID, userID int64) error
	PeekShortSummary(chatID int64) (domain.ShortSummary, error)
	PeekFullSummary(chatID int64) (domain.FullSummary, error)
}

// Bot binds commands and callback buttons to poll controller operations.
type Bot struct {
	bot  *tele.Bot
	ctrl Controller
	ctx  context.Context
}

// NewBot registers the command and callback routes on the telebot client.
func NewBot(bot *tele.Bot, ctrl Controller) *Bot {
	b := &Bot{bot: bot, ctrl: ctrl, ctx: context.Background()}
	b.route()
	return b
}

// Run starts long polling and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	b.ctx = ctx
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()
	b.bot.Start()
}

func (b *Bot) route() {
	b.bot.Handle("/start", func(c tele.Context) error {
		return c.Send(render.Help())
	})
	b.bot.Handle("/where", func(c tele.Context) error {
		return c.Send(render.ChatID(c.Chat().ID))
	})
	b.bot.Handle("/ready", func(c tele.Context) error {
		if err := b.ctrl.Open(b.ctx, c.Chat().ID); err != nil {
			log.Printf("open poll for chat %d: %v", c.Chat().ID, err)
		}
		return nil
	})
	b.bot.Handle("/results", func(c tele.Context) error {
		return c.Send(b.resultsReply(c.Chat().ID))
	})
	b.bot.Handle("/stop", func(c tele.Context) error {
		if err := b.ctrl.Close(b.ctx, c.Chat().ID); err != nil {
			log.Printf("stop poll for chat %d: %v", c.Chat().ID, err)
		}
		return c.Send(render.PollClosed())
	})

	markup := &tele.ReplyMarkup{}
	yes := markup.Data("", uniqueYes)
	no := markup.Data("", uniqueNo)
	cancel := markup.Data("", uniqueCancel)
	result := markup.Data("", uniqueResult)

	b.bot.Handle(&yes, b.voteHandler(domain.AnswerYes))
	b.bot.Handle(&no, b.voteHandler(domain.AnswerNo))
	b.bot.Handle(&cancel, func(c tele.Context) error {
		return respond(c, b.cancelAck(c.Chat().ID, c.Sender().ID))
	})
	b.bot.Handle(&result, func(c tele.Context) error {
		return respond(c, b.resultAck(c.Chat().ID))
	})
}

func (b *Bot) voteHandler(answer domain.Answer) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		if sender == nil {
			return nil
		}
		return respond(c, b.voteAck(c.Chat().ID, sender.ID, answer, userInfo(sender)))
	}
}

// voteAck records the vote and returns the callback notice shown to the
// voter. Rejections outside an open poll are notices, not failures.
func (b *Bot) voteAck(chatID, userID int64, answer domain.Answer, user domain.UserInfo) string {
	err := b.ctrl.Vote(chatID, userID, answer, user)
	switch {
	case errors.Is(err, domain.ErrSessionNotActive):
		return render.NoActivePoll()
	case err != nil:
		log.Printf("record vote in chat %d: %v", chatID, err)
		return render.NoActivePoll()
	default:
		return render.VoteRecorded(answer)
	}
}

// cancelAck retracts the sender's vote and returns the callback notice.
func (b *Bot) cancelAck(chatID, userID int64) string {
	err := b.ctrl.CancelVote(chatID, userID)
	switch {
	case errors.Is(err, domain.ErrSessionNotActive):
		return render.NoActivePoll()
	case errors.Is(err, domain.ErrNoVoteToRetract):
		return render.NothingToCancel()
	case err != nil:
		log.Printf("cancel vote in chat %d: %v", chatID, err)
		return render.NoActivePoll()
	default:
		return render.VoteCancelled()
	}
}

// resultAck returns the short summary as the callback notice.
func (b *Bot) resultAck(chatID int64) string {
	sum, err := b.ctrl.PeekShortSummary(chatID)
	if err != nil {
		return render.NoActivePoll()
	}
	return render.ShortLine(sum)
}

// resultsReply returns the /results message body.
func (b *Bot) resultsReply(chatID int64) string {
	sum, err := b.ctrl.PeekFullSummary(chatID)
	if err != nil {
		return render.NoActivePoll()
	}
	return render.FullResults(sum)
}

func respond(c tele.Context, notice string) error {
	return c.Respond(&tele.CallbackResponse{Text: notice})
}

func userInfo(u *tele.User) domain.UserInfo {
	return domain.UserInfo{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
	}
}
