// Package render formats one theater's listing for a sequential console
// display.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/vmunix/marquee/internal/showtimes"
)

const clearScreen = "\033[2J\033[H"
const maxTitleWidth = 60

// Console renders theater listings as text frames, one frame per tick.
type Console struct {
	out io.Writer
	// loc shifts the banner clock; freshness decisions elsewhere stay UTC.
	loc *time.Location
}

// NewConsole creates a renderer writing to out. A nil location means UTC.
func NewConsole(out io.Writer, loc *time.Location) *Console {
	if loc == nil {
		loc = time.UTC
	}
	return &Console{out: out, loc: loc}
}

// RenderTheater writes one theater's full movie listing as a single
// frame: banner, theater identity, and a movie/times table.
func (c *Console) RenderTheater(th *showtimes.Theater, now time.Time) error {
	if _, err := fmt.Fprint(c.out, clearScreen); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	c.banner(now)
	fmt.Fprintf(c.out, "Theater: %s\n", th.Name)
	if th.Location != "" {
		fmt.Fprintf(c.out, "Location: %s\n", th.Location)
	}
	if th.Address != "" {
		fmt.Fprintf(c.out, "Address: %s\n", th.Address)
	}

	if th.Empty() {
		fmt.Fprintln(c.out, "\nNo showtimes found")
		return nil
	}

	fmt.Fprintln(c.out, c.listingTable(th))
	fmt.Fprintf(c.out, "Total showtime entries: %d\n", th.ShowtimeCount())
	return nil
}

// RenderEmpty writes the frame shown when no data is available at all.
func (c *Console) RenderEmpty(now time.Time) error {
	if _, err := fmt.Fprint(c.out, clearScreen); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	c.banner(now)
	fmt.Fprintln(c.out, "No showtimes to display. Check your theater configuration.")
	return nil
}

func (c *Console) banner(now time.Time) {
	fmt.Fprintf(c.out, "MOVIE SHOWTIMES @ %s\n", now.In(c.loc).Format("2006-01-02 15:04:05 MST"))
}

func (c *Console) listingTable(th *showtimes.Theater) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"MOVIE", "TIMES"})

	for _, m := range th.Movies {
		title := m.Title
		if m.Rating != "" {
			title = fmt.Sprintf("%s [%s]", title, m.Rating)
		}
		if len(m.Showtimes) == 0 {
			tw.AppendRow(table.Row{title, "(no times)"})
			continue
		}
		tw.AppendRow(table.Row{title, m.Showtimes[0]})
		for _, extra := range m.Showtimes[1:] {
			tw.AppendRow(table.Row{"", extra})
		}
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, WidthMax: maxTitleWidth},
		{Number: 2, Align: text.AlignLeft},
	})
	return tw.Render()
}
