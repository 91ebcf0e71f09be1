package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feed = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"

func TestGetCalendar(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "text/calendar", r.Header.Get("Accept"))

		switch r.URL.Path {
		case "/team.ics":
			w.Header().Set("Content-Type", "text/calendar")
			_, _ = io.WriteString(w, feed)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewCalendarClient(server.Client(), nil)

	body, err := client.GetCalendar(context.Background(), server.URL+"/team.ics")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, feed, string(data))

	_, err = client.GetCalendar(context.Background(), server.URL+"/missing.ics")
	assert.ErrorContains(t, err, "unexpected status code: 404")
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"https", "https://example.com/a.ics", "https://example.com/a.ics", nil},
		{"webcal", "webcal://example.com/a.ics", "https://example.com/a.ics", nil},
		{"ftp", "ftp://example.com/a.ics", "", ErrUnsupportedScheme},
		{"file path", "/tmp/a.ics", "", ErrUnsupportedScheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := resolveURL(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestIsFeedURL(t *testing.T) {
	assert.True(t, IsFeedURL("HTTPS://example.com/a.ics"))
	assert.True(t, IsFeedURL("webcal://example.com/a.ics"))
	assert.False(t, IsFeedURL("team.ics"))
	assert.False(t, IsFeedURL("-"))
}

func TestBasicAuthTransport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		if !ok || user != "alice" || pass != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, feed)
	}))
	defer server.Close()

	tests := []struct {
		name     string
		username string
		password string
		wantErr  string
	}{
		{"valid credentials", "alice", "secret", ""},
		{"wrong password", "alice", "nope", "unexpected status code: 401"},
		{"empty username", "", "secret", "basic auth username cannot be empty"},
		{"empty password", "alice", "", "basic auth password cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpClient := &http.Client{
				Transport: NewBasicAuthTransport(tt.username, tt.password, server.Client().Transport, nil),
			}
			client := NewCalendarClient(httpClient, nil)

			body, err := client.GetCalendar(context.Background(), server.URL)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			body.Close()
		})
	}
}

func TestBasicAuthTransport_DoesNotMutateRequest(t *testing.T) {
	var seen string
	transport := NewBasicAuthTransport("alice", "secret", roundTripFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.Header.Get("Authorization")
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody, Request: r}, nil
	}), nil)

	req, err := http.NewRequest(http.MethodGet, "https://example.com/a.ics", nil)
	require.NoError(t, err)

	_, err = transport.RoundTrip(req)
	require.NoError(t, err)
	assert.NotEmpty(t, seen)
	assert.Empty(t, req.Header.Get("Authorization"))
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
