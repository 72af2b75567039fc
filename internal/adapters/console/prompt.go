package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"venuebook/internal/domain"
	"venuebook/pkg/schedule"
)

func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			log.WithError(err).Error("❌ Reading input failed")
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// ask prints the prompt for key and reads one trimmed line.
func (c *Console) ask(key string, data map[string]any) (string, error) {
	fmt.Fprint(c.out, c.t(key, data)+" ")
	return c.readLine()
}

// askUntil repeats the prompt until parse accepts the answer. Validation
// errors are shown and the question asked again; any other error ends it.
func askUntil[T any](c *Console, key string, data map[string]any, parse func(string) (T, error)) (T, error) {
	for {
		s, err := c.ask(key, data)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(s)
		if err == nil {
			return v, nil
		}
		if !domain.IsValidation(err) {
			var zero T
			return zero, err
		}
		c.fail(err)
	}
}

// keepOnEmpty makes parse return current for an empty answer.
func keepOnEmpty[T any](current T, parse func(string) (T, error)) func(string) (T, error) {
	return func(s string) (T, error) {
		if s == "" {
			return current, nil
		}
		return parse(s)
	}
}

func requiredText(field string) func(string) (string, error) {
	return func(s string) (string, error) {
		if s == "" {
			return "", domain.Invalid(field, "required_"+field)
		}
		return s, nil
	}
}

func parseSeats(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, domain.Invalid("seats", "invalid_seats")
	}
	return n, nil
}

func parseDate(s string) (string, error) {
	return schedule.ValidateDate(s)
}

// window is a validated start/end pair.
type window struct {
	start, end string
}

// askWindow asks for start and end times, both again on any error, and
// checks them together against the booking window.
func (c *Console) askWindow(date string, current *window) (window, error) {
	for {
		data := map[string]any{}
		if current != nil {
			data["Current"] = current.start
		}
		start, err := c.ask(promptKey("prompt.start_time", current), data)
		if err != nil {
			return window{}, err
		}
		if current != nil {
			data["Current"] = current.end
		}
		end, err := c.ask(promptKey("prompt.end_time", current), data)
		if err != nil {
			return window{}, err
		}
		if current != nil {
			if start == "" {
				start = current.start
			}
			if end == "" {
				end = current.end
			}
		}
		slot, err := schedule.ValidateSlot(date, start, end)
		if err != nil {
			c.fail(err)
			continue
		}
		return window{start: slot.Start, end: slot.End}, nil
	}
}

// promptKey selects the "keep current value" variant of a prompt.
func promptKey[T any](key string, current *T) string {
	if current != nil {
		return key + "_keep"
	}
	return key
}

func (c *Console) confirm(key string, data map[string]any) (bool, error) {
	s, err := c.ask(key, data)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes", "o", "oui":
		return true, nil
	}
	return false, nil
}
