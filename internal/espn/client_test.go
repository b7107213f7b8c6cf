package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientBuildsResourcePaths(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.RequestURI())
		if ua := r.Header.Get("User-Agent"); ua != "MMM-LiveStats" {
			t.Errorf("unexpected user agent: %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := New(server.URL)
	ctx := context.Background()

	if _, err := client.FetchTeamSchedule(ctx, "basketball/wnba", "ind"); err != nil {
		t.Fatalf("schedule fetch failed: %v", err)
	}
	if _, err := client.FetchTeamInfo(ctx, "basketball/wnba", "ind"); err != nil {
		t.Fatalf("team info fetch failed: %v", err)
	}
	if _, err := client.FetchEventSummary(ctx, "basketball/wnba", "401736103"); err != nil {
		t.Fatalf("summary fetch failed: %v", err)
	}

	expected := []string{
		"/basketball/wnba/teams/ind/schedule",
		"/basketball/wnba/teams/ind",
		"/basketball/wnba/summary?event=401736103",
	}
	if len(paths) != len(expected) {
		t.Fatalf("unexpected request count: %v", paths)
	}
	for i, want := range expected {
		if paths[i] != want {
			t.Fatalf("request %d: expected %s, got %s", i, want, paths[i])
		}
	}
}

func TestClientRejectsNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.FetchTeamSchedule(context.Background(), "hockey/nhl", "chi"); err == nil {
		t.Fatalf("expected an error for a 502 response")
	}
}

func TestClientRejectsMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(server.URL)
	if _, err := client.FetchTeamInfo(context.Background(), "basketball/nba", "ind"); err == nil {
		t.Fatalf("expected a decode error")
	}
}
