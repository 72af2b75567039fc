package console

import (
	"context"
	"errors"
	"fmt"

	"venuebook/internal/domain"
	"venuebook/internal/domain/entities"
)

func (c *Console) organizerMenu(ctx context.Context) error {
	for {
		c.say("menu.organizer", nil)
		choice, err := c.ask("prompt.choice", nil)
		if err != nil {
			return err
		}
		switch choice {
		case "1":
			err = c.listScheduled(ctx)
		case "2":
			err = c.addEvent(ctx)
		case "3":
			err = c.listOwn(ctx)
		case "4":
			err = c.modifyEvent(ctx)
		case "5":
			err = c.deleteEvent(ctx)
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

// handle reports err and keeps the menu going. Only the end of input
// leaves the menu.
func (c *Console) handle(err error) error {
	if err == nil {
		return nil
	}
	if isEOF(err) {
		return err
	}
	c.fail(err)
	return nil
}

func (c *Console) listScheduled(ctx context.Context) error {
	events, err := c.events.ListEvents(ctx)
	if err != nil {
		return err
	}
	c.printEvents(events, nil)
	return nil
}

func (c *Console) listOwn(ctx context.Context) error {
	organizer, err := askUntil(c, "prompt.organizer", nil, requiredText("organizer"))
	if err != nil {
		return err
	}
	events, err := c.events.ListEventsByOrganizer(ctx, organizer)
	if err != nil {
		return err
	}
	c.printEvents(events, nil)
	return nil
}

func (c *Console) addEvent(ctx context.Context) error {
	name, err := askUntil(c, "prompt.event_name", nil, requiredText("name"))
	if err != nil {
		return err
	}
	if _, err := c.events.GetEvent(ctx, name); err == nil {
		return domain.ErrDuplicateEventName
	} else if !errors.Is(err, domain.ErrEventNotFound) {
		return err
	}

	organizer, err := askUntil(c, "prompt.organizer", nil, requiredText("organizer"))
	if err != nil {
		return err
	}
	c.printCategories()
	category, err := askUntil(c, "prompt.category", nil, entities.ParseCategory)
	if err != nil {
		return err
	}
	date, err := askUntil(c, "prompt.date", nil, parseDate)
	if err != nil {
		return err
	}
	w, err := c.askWindow(date, nil)
	if err != nil {
		return err
	}
	seats, err := askUntil(c, "prompt.seats", nil, parseSeats)
	if err != nil {
		return err
	}

	event := &entities.Event{
		Name:      name,
		Organizer: organizer,
		Category:  category,
		Date:      date,
		StartTime: w.start,
		EndTime:   w.end,
		Seats:     seats,
	}
	for {
		err := c.events.CreateEvent(ctx, event)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrNoVenueAvailable) {
			return err
		}
		c.fail(err)
		retry, err := c.confirm("prompt.retry_slot", nil)
		if err != nil || !retry {
			return err
		}
		if event.Date, err = askUntil(c, "prompt.date", nil, parseDate); err != nil {
			return err
		}
		if w, err = c.askWindow(event.Date, nil); err != nil {
			return err
		}
		event.StartTime, event.EndTime = w.start, w.end
	}

	c.say("info.event_created", eventData(event))
	return nil
}

func (c *Console) modifyEvent(ctx context.Context) error {
	name, err := askUntil(c, "prompt.event_name", nil, requiredText("name"))
	if err != nil {
		return err
	}
	current, err := c.events.GetEvent(ctx, name)
	if err != nil {
		return err
	}
	c.printEvents([]entities.Event{*current}, nil)

	event := *current
	keep := map[string]any{"Current": current.Organizer}
	if event.Organizer, err = askUntil(c, "prompt.organizer_keep", keep, keepOnEmpty(current.Organizer, requiredText("organizer"))); err != nil {
		return err
	}
	c.printCategories()
	keep = map[string]any{"Current": string(current.Category)}
	if event.Category, err = askUntil(c, "prompt.category_keep", keep, keepOnEmpty(current.Category, entities.ParseCategory)); err != nil {
		return err
	}
	keep = map[string]any{"Current": current.Date}
	if event.Date, err = askUntil(c, "prompt.date_keep", keep, keepOnEmpty(current.Date, parseDate)); err != nil {
		return err
	}
	w, err := c.askWindow(event.Date, &window{start: current.StartTime, end: current.EndTime})
	if err != nil {
		return err
	}
	event.StartTime, event.EndTime = w.start, w.end
	keep = map[string]any{"Current": current.Seats}
	if event.Seats, err = askUntil(c, "prompt.seats_keep", keep, keepOnEmpty(current.Seats, parseSeats)); err != nil {
		return err
	}

	if err := c.events.ModifyEvent(ctx, &event); err != nil {
		return err
	}
	c.say("info.event_modified", eventData(&event))
	return nil
}

func (c *Console) deleteEvent(ctx context.Context) error {
	name, err := askUntil(c, "prompt.event_name", nil, requiredText("name"))
	if err != nil {
		return err
	}
	if _, err := c.events.GetEvent(ctx, name); err != nil {
		return err
	}
	ok, err := c.confirm("prompt.confirm_delete", map[string]any{"Name": name})
	if err != nil || !ok {
		return err
	}
	if err := c.events.DeleteEvent(ctx, name); err != nil {
		return err
	}
	c.say("info.event_deleted", map[string]any{"Name": name})
	return nil
}

func eventData(e *entities.Event) map[string]any {
	return map[string]any{
		"Name":  e.Name,
		"Venue": e.Venue,
		"Date":  e.Date,
		"Start": e.StartTime,
		"End":   e.EndTime,
		"Seats": fmt.Sprint(e.Seats),
	}
}
