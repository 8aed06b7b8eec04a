package serpapi

import (
	"encoding/json"

	"github.com/vmunix/marquee/internal/showtimes"
)

// maxTimesPerMovie keeps a single movie's time list displayable.
const maxTimesPerMovie = 8

// payload is the subset of the search response the normalizer reads.
// Field names vary across result shapes, so most leaves are tolerant.
type payload struct {
	Error     string      `json:"error"`
	Showtimes []listEntry `json:"showtimes"`
}

// listEntry is one entry of the showtimes array. Depending on the result
// shape it names a theater directly or is a per-day grouping.
type listEntry struct {
	Day         string    `json:"day"`
	TheaterName string    `json:"theater_name"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	AddressLine string    `json:"address_line"`
	FullAddress string    `json:"full_address"`
	Movies      movieList `json:"movies"`
	Showing     movieList `json:"showing"`
}

func (e *listEntry) displayName() string {
	if e.TheaterName != "" {
		return e.TheaterName
	}
	return e.Name
}

func (e *listEntry) address() string {
	switch {
	case e.Address != "":
		return e.Address
	case e.AddressLine != "":
		return e.AddressLine
	default:
		return e.FullAddress
	}
}

func (e *listEntry) movies() []movieBlock {
	if len(e.Movies) > 0 {
		return e.Movies
	}
	return e.Showing
}

// movieList unwraps the occasional [[...]] day nesting: when the movies
// array is itself a list of per-day lists, only the first (today's) list
// is kept.
type movieList []movieBlock

func (l *movieList) UnmarshalJSON(data []byte) error {
	var flat []movieBlock
	if err := json.Unmarshal(data, &flat); err == nil {
		*l = flat
		return nil
	}
	var nested [][]movieBlock
	if err := json.Unmarshal(data, &nested); err != nil {
		return err
	}
	if len(nested) > 0 {
		*l = nested[0]
	}
	return nil
}

type movieBlock struct {
	Title    string   `json:"title"`
	Name     string   `json:"name"`
	FilmName string   `json:"film_name"`
	Rating   string   `json:"rating"`
	Times    timeList `json:"showtimes"`
	AltTimes timeList `json:"times"`
	Showing  timeList `json:"showing"`
}

func (m *movieBlock) displayTitle() string {
	switch {
	case m.Title != "":
		return m.Title
	case m.Name != "":
		return m.Name
	case m.FilmName != "":
		return m.FilmName
	default:
		return "(title unknown)"
	}
}

func (m *movieBlock) timeBlocks() []timeBlock {
	switch {
	case len(m.Times) > 0:
		return m.Times
	case len(m.AltTimes) > 0:
		return m.AltTimes
	default:
		return m.Showing
	}
}

type timeList []timeBlock

// timeBlock is one showtime. The wire value is either a bare string, or
// an object whose time field is a scalar or a list sharing one format tag.
type timeBlock struct {
	Times  []string
	Format string
}

func (t *timeBlock) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		t.Times = []string{s}
		return nil
	}

	var obj struct {
		Time       json.RawMessage `json:"time"`
		StartTime  string          `json:"start_time"`
		Start      string          `json:"start"`
		Type       string          `json:"type"`
		Format     string          `json:"format"`
		TicketType string          `json:"ticket_type"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	switch {
	case obj.Type != "":
		t.Format = obj.Type
	case obj.Format != "":
		t.Format = obj.Format
	default:
		t.Format = obj.TicketType
	}

	if len(obj.Time) > 0 {
		var one string
		if err := json.Unmarshal(obj.Time, &one); err == nil {
			t.Times = []string{one}
			return nil
		}
		var many []string
		if err := json.Unmarshal(obj.Time, &many); err == nil {
			t.Times = many
			return nil
		}
	}
	if obj.StartTime != "" {
		t.Times = []string{obj.StartTime}
	} else if obj.Start != "" {
		t.Times = []string{obj.Start}
	}
	return nil
}

// normalize reduces a search payload to one theater's movie listing. When
// the payload lists several theaters, the entry whose name best matches
// the configured query wins; otherwise the first entry is taken as
// today's data and later (future-day) entries are ignored.
func normalize(query string, p *payload) ([]showtimes.Movie, string) {
	if len(p.Showtimes) == 0 {
		return nil, ""
	}

	entry := &p.Showtimes[bestEntry(query, p.Showtimes)]

	var movies []showtimes.Movie
	for _, block := range entry.movies() {
		movie := showtimes.Movie{
			Title:  block.displayTitle(),
			Rating: block.Rating,
		}

		seenFormats := map[string]bool{}
		for _, tb := range block.timeBlocks() {
			if tb.Format != "" && !seenFormats[tb.Format] {
				seenFormats[tb.Format] = true
				movie.Formats = append(movie.Formats, tb.Format)
			}
			for _, tv := range tb.Times {
				if tv == "" {
					continue
				}
				if tb.Format != "" {
					tv = tv + " (" + tb.Format + ")"
				}
				movie.Showtimes = append(movie.Showtimes, tv)
			}
		}
		if len(movie.Showtimes) > maxTimesPerMovie {
			movie.Showtimes = movie.Showtimes[:maxTimesPerMovie]
		}

		movies = append(movies, movie)
	}

	return movies, entry.address()
}

// bestEntry picks the showtimes entry to treat as the queried theater.
func bestEntry(query string, entries []listEntry) int {
	if len(entries) < 2 {
		return 0
	}
	names := make([]string, len(entries))
	named := false
	for i := range entries {
		names[i] = entries[i].displayName()
		if names[i] != "" {
			named = true
		}
	}
	if !named {
		return 0
	}
	return matchTheater(query, names)
}
