package console

import (
	"context"

	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain/entities"
)

func (c *Console) participantMenu(ctx context.Context) error {
	for {
		c.say("menu.participant", nil)
		choice, err := c.ask("prompt.choice", nil)
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.listWithCounts(ctx)
		case "2":
			err = c.register(ctx)
		case "0":
			return nil
		default:
			c.say("errors.invalid_choice", nil)
		}
		if err := c.handle(err); err != nil {
			return err
		}
	}
}

func (c *Console) listWithCounts(ctx context.Context) error {
	events, err := c.events.ListEvents(ctx)
	if err != nil {
		return err
	}
	counts, err := c.participants.RegistrationCounts(ctx)
	if err != nil {
		return err
	}
	c.printEvents(events, counts)
	return nil
}

func (c *Console) register(ctx context.Context) error {
	eventName, err := askUntil(c, "prompt.event_name", nil, requiredText("event"))
	if err != nil {
		return err
	}
	if _, err := c.events.GetEvent(ctx, eventName); err != nil {
		return err
	}

	p := &entities.Participant{EventName: eventName}
	fields := []struct {
		key, field string
		dst        *string
	}{
		{"prompt.your_name", "name", &p.Name},
		{"prompt.roll_number", "roll", &p.RollNumber},
		{"prompt.department", "department", &p.Department},
		{"prompt.phone", "phone", &p.Phone},
	}
	for _, f := range fields {
		if *f.dst, err = askUntil(c, f.key, nil, requiredText(f.field)); err != nil {
			return err
		}
	}

	if err := c.participants.Register(ctx, p); err != nil {
		return err
	}
	c.say("info.registered", map[string]any{"Event": p.EventName})

	if c.tickets != nil {
		path, err := c.tickets.Issue(p)
		if err != nil {
			log.WithError(err).Warn("⚠️ Ticket could not be written")
			return nil
		}
		c.say("info.ticket_written", map[string]any{"Path": path})
	}
	return nil
}
