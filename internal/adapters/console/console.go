// Package console is the text-menu front end: role selection, organizer
// and participant menus, line-based prompts and plain text tables.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"venuebook/internal/domain/entities"
	"venuebook/internal/ports/input"
	"venuebook/internal/ports/output"
)

// TicketIssuer produces a ticket for a completed registration and returns
// where it was written.
type TicketIssuer interface {
	Issue(p *entities.Participant) (string, error)
}

// Console drives the menus against the use cases.
type Console struct {
	in           *bufio.Scanner
	out          io.Writer
	events       input.EventUseCase
	participants input.ParticipantUseCase
	translator   output.T
	locale       string
	tickets      TicketIssuer
}

type Option func(*Console)

// WithIO replaces stdin/stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Console) {
		c.in = bufio.NewScanner(in)
		c.out = out
	}
}

// WithTickets issues a ticket after every successful registration.
func WithTickets(t TicketIssuer) Option {
	return func(c *Console) { c.tickets = t }
}

func New(
	events input.EventUseCase,
	participants input.ParticipantUseCase,
	translator output.T,
	locale string,
	opts ...Option,
) *Console {
	c := &Console{
		in:           bufio.NewScanner(os.Stdin),
		out:          os.Stdout,
		events:       events,
		participants: participants,
		translator:   translator,
		locale:       locale,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the role menu until the user quits or input ends.
func (c *Console) Run(ctx context.Context) error {
	c.say("info.welcome", nil)
	for {
		c.say("menu.role", nil)
		choice, err := c.ask("prompt.choice", nil)
		if err != nil {
			return endOfInput(err)
		}
		switch choice {
		case "1":
			err = c.organizerMenu(ctx)
		case "2":
			err = c.participantMenu(ctx)
		case "0", "q", "Q":
			c.say("info.goodbye", nil)
			return nil
		default:
			c.say("errors.invalid_choice", nil)
		}
		if err != nil {
			return endOfInput(err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

// endOfInput turns the end of stdin into a clean exit.
func endOfInput(err error) error {
	if isEOF(err) {
		return nil
	}
	return err
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

func (c *Console) t(key string, data map[string]any) string {
	return c.translator.T(c.locale, key, data)
}

func (c *Console) say(key string, data map[string]any) {
	fmt.Fprintln(c.out, c.t(key, data))
}
