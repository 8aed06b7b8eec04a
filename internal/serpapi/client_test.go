package serpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const showtimesResponse = `{
  "showtimes": [
    {
      "theater_name": "AMC Empire 25",
      "address": "234 W 42nd St, New York, NY 10036",
      "movies": [
        {
          "title": "Dune: Part Three",
          "rating": "PG-13",
          "showtimes": [
            {"time": "3:30pm", "type": "IMAX"},
            {"time": "7:00pm", "type": "IMAX"},
            "10:15pm"
          ]
        },
        {
          "name": "Paddington 4",
          "showtimes": ["1:15pm", "4:45pm"]
        }
      ]
    }
  ]
}`

func TestClient_Showtimes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search.json", r.URL.Path)
		assert.Equal(t, "AMC Empire 25", r.URL.Query().Get("q"))
		assert.Equal(t, "New York, NY", r.URL.Query().Get("location"))
		assert.Equal(t, "en", r.URL.Query().Get("hl"))
		assert.Equal(t, "us", r.URL.Query().Get("gl"))
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "marquee/1.0", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(showtimesResponse))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	movies, address, err := client.Showtimes(context.Background(), "AMC Empire 25", "New York, NY")
	require.NoError(t, err)
	assert.Equal(t, "234 W 42nd St, New York, NY 10036", address)

	require.Len(t, movies, 2)
	assert.Equal(t, "Dune: Part Three", movies[0].Title)
	assert.Equal(t, "PG-13", movies[0].Rating)
	assert.Equal(t, []string{"IMAX"}, movies[0].Formats)
	assert.Equal(t, []string{"3:30pm (IMAX)", "7:00pm (IMAX)", "10:15pm"}, movies[0].Showtimes)

	assert.Equal(t, "Paddington 4", movies[1].Title)
	assert.Empty(t, movies[1].Rating)
	assert.Equal(t, []string{"1:15pm", "4:45pm"}, movies[1].Showtimes)
}

func TestClient_Showtimes_Locale(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "de", r.URL.Query().Get("hl"))
		assert.Equal(t, "at", r.URL.Query().Get("gl"))
		_, _ = w.Write([]byte(`{"showtimes": []}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithLocale("de", "at"))

	movies, _, err := client.Showtimes(context.Background(), "Gartenbaukino", "Vienna, Austria")
	require.NoError(t, err)
	assert.Empty(t, movies, "no showtimes entries is a successful empty result")
}

func TestClient_Showtimes_PayloadError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error": "Invalid API key"}`))
	}))
	defer server.Close()

	client := NewClient("bad-key", WithBaseURL(server.URL))

	_, _, err := client.Showtimes(context.Background(), "AMC Empire 25", "New York, NY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestClient_Showtimes_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, _, err := client.Showtimes(context.Background(), "AMC Empire 25", "New York, NY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestClient_Showtimes_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, _, err := client.Showtimes(context.Background(), "AMC Empire 25", "New York, NY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode response")
}
