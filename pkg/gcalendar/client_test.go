package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"compliance-assistant/pkg/gcalendar"
)

// rewriteTransport forces API traffic onto the local fake server.
type rewriteTransport struct {
	transport http.RoundTripper
	host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.transport.RoundTrip(req)
}

// newFakeCalendar starts a fake Calendar API and returns a client pointed at it.
func newFakeCalendar(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		transport: httpClient.Transport,
		host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), httpClient)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewClient(t *testing.T) {
	installedCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Unsupported Credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed App With Token", func(t *testing.T) {
		// The installed-app path reads token.json from the working directory.
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds))
		if err != nil {
			t.Fatalf("expected installed-app credentials to load: %v", err)
		}
	})

	t.Run("Installed App Without Token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds))
		if err == nil {
			t.Fatalf("expected failure without token.json")
		}
	})

	t.Run("Installed App Corrupt Token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds))
		if err == nil {
			t.Fatalf("expected failure on corrupt token.json")
		}
	})

	t.Run("Credentials File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		if err := os.WriteFile(path, []byte(`{"broken":true}`), 0600); err != nil {
			t.Fatalf("failed to write fixture: %v", err)
		}

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path); err == nil {
			t.Errorf("expected failure on malformed credentials")
		}
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Errorf("expected failure on missing file")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	type wireEvent struct {
		Summary     string `json:"summary"`
		Description string `json:"description"`
		Start       struct {
			DateTime string `json:"dateTime"`
			TimeZone string `json:"timeZone"`
		} `json:"start"`
		Attendees []struct {
			Email string `json:"email"`
		} `json:"attendees"`
	}

	var lastPath string
	var lastEvent wireEvent

	client := newFakeCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/events") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		lastPath = r.URL.Path
		lastEvent = wireEvent{}
		if err := json.NewDecoder(r.Body).Decode(&lastEvent); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if strings.Contains(r.URL.Path, "broken-calendar") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "evt-review-1",
			"htmlLink": "https://calendar.google.com/evt-review-1",
			"status": "confirmed"
		}`))
	})

	start := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	t.Run("Event On The Wire", func(t *testing.T) {
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID:  "compliance-team",
			Summary:     "DPA renewal review",
			Description: "Walk through the outstanding processor agreements before the deadline.",
			StartTime:   start,
			EndTime:     start.Add(time.Hour),
			Timezone:    "Europe/London",
			Attendees:   []string{"dpo@example.com"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.HtmlLink != "https://calendar.google.com/evt-review-1" {
			t.Errorf("unexpected link: %s", event.HtmlLink)
		}
		if lastPath != "/calendar/v3/calendars/compliance-team/events" {
			t.Errorf("unexpected path: %s", lastPath)
		}
		if lastEvent.Summary != "DPA renewal review" {
			t.Errorf("unexpected summary on the wire: %s", lastEvent.Summary)
		}
		if lastEvent.Start.DateTime != "2026-04-10T09:00:00Z" {
			t.Errorf("unexpected start on the wire: %s", lastEvent.Start.DateTime)
		}
		if lastEvent.Start.TimeZone != "Europe/London" {
			t.Errorf("unexpected timezone on the wire: %s", lastEvent.Start.TimeZone)
		}
		if len(lastEvent.Attendees) != 1 || lastEvent.Attendees[0].Email != "dpo@example.com" {
			t.Errorf("unexpected attendees on the wire: %+v", lastEvent.Attendees)
		}
	})

	t.Run("Default Calendar", func(t *testing.T) {
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Quarterly access review",
			StartTime: start,
			EndTime:   start.Add(30 * time.Minute),
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if lastPath != "/calendar/v3/calendars/primary/events" {
			t.Errorf("empty CalendarID should target primary, got %s", lastPath)
		}
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "broken-calendar",
			Summary:    "Never lands",
			StartTime:  start,
			EndTime:    start.Add(time.Hour),
		})
		if err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestListEvents(t *testing.T) {
	var lastQuery url.Values

	client := newFakeCalendar(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		lastQuery = r.URL.Query()
		if r.URL.Path == "/calendar/v3/calendars/broken-calendar/events" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"items": [
				{
					"id": "evt-soc2",
					"summary": "SOC 2 evidence collection",
					"start": { "dateTime": "2026-04-10T09:00:00Z" },
					"end": { "dateTime": "2026-04-10T10:00:00Z" }
				},
				{
					"id": "evt-retention",
					"summary": "Data-retention policy review",
					"start": { "date": "2026-04-12" },
					"end": { "date": "2026-04-13" }
				}
			]
		}`))
	})

	window := gcalendar.ListEventsRequest{
		CalendarID: "compliance-team",
		TimeMin:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		TimeMax:    time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		MaxResults: 25,
	}

	t.Run("Deadline Window", func(t *testing.T) {
		events, err := client.ListEvents(context.Background(), window)
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Summary != "SOC 2 evidence collection" {
			t.Errorf("unexpected event: %s", events[0].Summary)
		}
		if got := events[0].StartTime; !got.Equal(time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)) {
			t.Errorf("timed start parsed wrong: %v", got)
		}
		// All-day entries carry a bare date, which resolves to midnight.
		if got := events[1].StartTime; !got.Equal(time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("all-day start parsed wrong: %v", got)
		}
	})

	t.Run("Query Parameters", func(t *testing.T) {
		if _, err := client.ListEvents(context.Background(), window); err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if lastQuery.Get("singleEvents") != "true" {
			t.Errorf("recurring events should be expanded, got singleEvents=%q", lastQuery.Get("singleEvents"))
		}
		if lastQuery.Get("orderBy") != "startTime" {
			t.Errorf("unexpected ordering: %q", lastQuery.Get("orderBy"))
		}
		if lastQuery.Get("maxResults") != "25" {
			t.Errorf("unexpected page size: %q", lastQuery.Get("maxResults"))
		}
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID: "broken-calendar",
			TimeMin:    window.TimeMin,
			TimeMax:    window.TimeMax,
		})
		if err == nil {
			t.Fatalf("expected api error")
		}
	})
}
