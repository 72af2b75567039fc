package console

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"venuebook/internal/domain/entities"
)

// printEvents renders events as an aligned table. counts adds a
// registrations column when non-nil.
func (c *Console) printEvents(events []entities.Event, counts map[string]int) {
	if len(events) == 0 {
		c.say("info.no_events", nil)
		return
	}
	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	headers := []string{
		c.t("table.name", nil),
		c.t("table.organizer", nil),
		c.t("table.category", nil),
		c.t("table.date", nil),
		c.t("table.time", nil),
		c.t("table.venue", nil),
		c.t("table.seats", nil),
	}
	if counts != nil {
		headers = append(headers, c.t("table.registered", nil))
	}
	fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, e := range events {
		cols := []string{
			e.Name,
			e.Organizer,
			string(e.Category),
			e.Date,
			e.StartTime + "-" + e.EndTime,
			e.Venue,
			fmt.Sprint(e.Seats),
		}
		if counts != nil {
			cols = append(cols, fmt.Sprintf("%d/%d", counts[e.Name], e.Seats))
		}
		fmt.Fprintln(w, strings.Join(cols, "\t"))
	}
	w.Flush()
}

func (c *Console) printCategories() {
	for i, cat := range entities.Categories {
		fmt.Fprintf(c.out, "  %d. %s\n", i+1, cat)
	}
}
