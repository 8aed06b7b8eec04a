package serpapi

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, raw string) *payload {
	t.Helper()
	var p payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return &p
}

func TestNormalize_FieldFallbacks(t *testing.T) {
	p := decodePayload(t, `{
	  "showtimes": [
	    {
	      "name": "Alamo Drafthouse",
	      "address_line": "2550 W Sunset Blvd",
	      "showing": [
	        {"film_name": "The Long Goodbye", "times": ["9:45pm"]},
	        {"showtimes": ["11:00pm"]}
	      ]
	    }
	  ]
	}`)

	movies, address := normalize("Alamo Drafthouse", p)

	assert.Equal(t, "2550 W Sunset Blvd", address)
	require.Len(t, movies, 2)
	assert.Equal(t, "The Long Goodbye", movies[0].Title)
	assert.Equal(t, []string{"9:45pm"}, movies[0].Showtimes)
	assert.Equal(t, "(title unknown)", movies[1].Title)
	assert.Equal(t, []string{"11:00pm"}, movies[1].Showtimes)
}

func TestNormalize_TimeObjectVariants(t *testing.T) {
	p := decodePayload(t, `{
	  "showtimes": [
	    {
	      "theater_name": "Cinema",
	      "movies": [
	        {
	          "title": "Film",
	          "showtimes": [
	            {"start_time": "1:00pm", "format": "3D"},
	            {"start": "4:00pm", "ticket_type": "Standard"},
	            {"time": ["6:00pm", "8:30pm"], "type": "IMAX"}
	          ]
	        }
	      ]
	    }
	  ]
	}`)

	movies, _ := normalize("Cinema", p)
	require.Len(t, movies, 1)
	assert.Equal(t,
		[]string{"1:00pm (3D)", "4:00pm (Standard)", "6:00pm (IMAX)", "8:30pm (IMAX)"},
		movies[0].Showtimes)
	assert.Equal(t, []string{"3D", "Standard", "IMAX"}, movies[0].Formats)
}

func TestNormalize_NestedDayGrouping(t *testing.T) {
	// Movies wrapped in per-day lists: only today's (first) list counts.
	p := decodePayload(t, `{
	  "showtimes": [
	    {
	      "theater_name": "Cinema",
	      "movies": [
	        [{"title": "Today Film", "showtimes": ["2:00pm"]}],
	        [{"title": "Tomorrow Film", "showtimes": ["2:00pm"]}]
	      ]
	    }
	  ]
	}`)

	movies, _ := normalize("Cinema", p)
	require.Len(t, movies, 1)
	assert.Equal(t, "Today Film", movies[0].Title)
}

func TestNormalize_CapsTimes(t *testing.T) {
	p := decodePayload(t, `{
	  "showtimes": [
	    {
	      "theater_name": "Cinema",
	      "movies": [
	        {"title": "Film", "showtimes":
	          ["1","2","3","4","5","6","7","8","9","10"]}
	      ]
	    }
	  ]
	}`)

	movies, _ := normalize("Cinema", p)
	require.Len(t, movies, 1)
	assert.Len(t, movies[0].Showtimes, maxTimesPerMovie)
}

func TestNormalize_PicksBestMatchingTheater(t *testing.T) {
	p := decodePayload(t, `{
	  "showtimes": [
	    {
	      "theater_name": "Regal Union Square",
	      "movies": [{"title": "Wrong Theater Film", "showtimes": ["1:00pm"]}]
	    },
	    {
	      "theater_name": "AMC Empire 25",
	      "address": "234 W 42nd St",
	      "movies": [{"title": "Right Theater Film", "showtimes": ["2:00pm"]}]
	    }
	  ]
	}`)

	movies, address := normalize("amc empire 25", p)
	require.Len(t, movies, 1)
	assert.Equal(t, "Right Theater Film", movies[0].Title)
	assert.Equal(t, "234 W 42nd St", address)
}

func TestNormalize_UnnamedEntriesTakeFirst(t *testing.T) {
	// Per-day entries carry no theater name; the first entry is today.
	p := decodePayload(t, `{
	  "showtimes": [
	    {"day": "Today", "movies": [{"title": "Today Film", "showtimes": ["2:00pm"]}]},
	    {"day": "Tomorrow", "movies": [{"title": "Tomorrow Film", "showtimes": ["2:00pm"]}]}
	  ]
	}`)

	movies, _ := normalize("Cinema", p)
	require.Len(t, movies, 1)
	assert.Equal(t, "Today Film", movies[0].Title)
}

func TestNormalize_Empty(t *testing.T) {
	movies, address := normalize("Cinema", &payload{})
	assert.Nil(t, movies)
	assert.Empty(t, address)
}

func TestMatchTheater(t *testing.T) {
	tests := []struct {
		name  string
		query string
		names []string
		want  int
	}{
		{
			name:  "exact match",
			query: "AMC Empire 25",
			names: []string{"Regal Union Square", "AMC Empire 25"},
			want:  1,
		},
		{
			name:  "case and punctuation insensitive",
			query: "alamo drafthouse",
			names: []string{"Alamo Drafthouse!", "Angelika Film Center"},
			want:  0,
		},
		{
			name:  "accents stripped",
			query: "Cinematheque Francaise",
			names: []string{"Le Grand Rex", "Cinémathèque Française"},
			want:  1,
		},
		{
			name:  "nothing clears threshold falls back to first",
			query: "AMC Empire 25",
			names: []string{"Completely Unrelated", "Also Unrelated"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchTheater(tt.query, tt.names))
		})
	}
}

func TestCleanName(t *testing.T) {
	assert.Equal(t, "amc empire 25", cleanName("AMC  Empire   25"))
	assert.Equal(t, "cinematheque francaise", cleanName("Cinémathèque Française"))
	assert.Equal(t, "drafthouse and friends", cleanName("Drafthouse & Friends"))
	assert.Equal(t, "alamo drafthouse", cleanName("Alamo Drafthouse!"))
}
