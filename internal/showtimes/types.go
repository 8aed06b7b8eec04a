// Package showtimes defines the domain types shared by the fetcher, the
// cache store, and the display loop. The JSON tags are the persisted cache
// wire format and must stay stable.
package showtimes

// Snapshot is one full day of fetched data for every configured theater.
// Date is the UTC calendar day ("2006-01-02") the fetch ran; the snapshot
// is only valid for display while the current UTC day equals Date.
type Snapshot struct {
	Date     string    `json:"date"`
	Theaters []Theater `json:"theaters"`
}

// Theater is one theater's listing for the day. Order inside a Snapshot
// matches the configuration order.
type Theater struct {
	Name     string  `json:"name"`
	Location string  `json:"location,omitempty"`
	Address  string  `json:"address,omitempty"`
	Movies   []Movie `json:"movies"`
}

// Movie is a single film with its showtimes. Showtime strings carry any
// format annotation inline, e.g. "7:30pm (IMAX)".
type Movie struct {
	Title     string   `json:"title"`
	Rating    string   `json:"rating,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Showtimes []string `json:"showtimes"`
}

// ShowtimeCount returns the total number of showtime entries across all
// movies in the listing.
func (t *Theater) ShowtimeCount() int {
	n := 0
	for _, m := range t.Movies {
		n += len(m.Showtimes)
	}
	return n
}

// Empty reports whether the theater has no movies listed, which is also
// how a failed fetch for that theater is recorded.
func (t *Theater) Empty() bool {
	return len(t.Movies) == 0
}
