package display

import "github.com/vmunix/marquee/internal/showtimes"

// Unit is one theater's full listing, the atomic item the cycle advances
// over. Movies within a theater are rendered together.
type Unit struct {
	Theater *showtimes.Theater
}

// Flatten materializes the snapshot's display units in theater order,
// which is the configuration order by construction.
func Flatten(snap *showtimes.Snapshot) []Unit {
	if snap == nil {
		return nil
	}
	units := make([]Unit, 0, len(snap.Theaters))
	for i := range snap.Theaters {
		units = append(units, Unit{Theater: &snap.Theaters[i]})
	}
	return units
}
