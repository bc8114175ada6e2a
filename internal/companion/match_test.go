package companion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramonehamilton/arena-insights/internal/models"
)

func TestMatchClient_GetMatchesPostsNormalizedFilter(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.EscapedPath()
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"m1","format":"Ladder","result":"win","timestamp":"2024-01-01T10:00:00Z"}]}`))
	}))
	defer server.Close()

	client := NewMatchClient(newTestTransport(server.URL))

	format := "Ladder"
	matches, err := client.GetMatches(context.Background(), models.StatsFilter{
		Format:    &format,
		StartDate: models.DateString("2024-01-01T00:00:00.000Z"),
	})
	if err != nil {
		t.Fatalf("GetMatches failed: %v", err)
	}

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/matches", gotPath)

	// The wire body is the normalized request, never the raw filter
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(gotBody, &wire); err != nil {
		t.Fatalf("request body is not valid JSON: %v", err)
	}
	assert.Len(t, wire, len(RequestFieldNames))
	assert.Equal(t, `"2024-01-01"`, string(wire["start_date"]))
	assert.Equal(t, `"Ladder"`, string(wire["format"]))
	assert.Equal(t, "null", string(wire["deck_id"]))

	if len(matches) != 1 || matches[0].ID != "m1" {
		t.Errorf("matches = %+v, want one match m1", matches)
	}
}

func TestMatchClient_GetMatch(t *testing.T) {
	server, captured := recordingServer(t, `{"data":{"id":"m 1","format":"Play","result":"loss","timestamp":"2024-01-01T10:00:00Z"}}`)
	defer server.Close()

	client := NewMatchClient(newTestTransport(server.URL))
	match, err := client.GetMatch(context.Background(), "m 1")
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}

	if got := captured.URL.EscapedPath(); got != "/matches/m%201" {
		t.Errorf("path = %q, want /matches/m%%201", got)
	}
	if match.ID != "m 1" {
		t.Errorf("match ID = %q, want %q", match.ID, "m 1")
	}
}

func TestMatchClient_GetMatchGames(t *testing.T) {
	server, captured := recordingServer(t, `{"data":[
		{"id":1,"match_id":"m1","game_number":1,"result":"win"},
		{"id":2,"match_id":"m1","game_number":2,"result":"loss"}
	]}`)
	defer server.Close()

	client := NewMatchClient(newTestTransport(server.URL))
	games, err := client.GetMatchGames(context.Background(), "m1")
	if err != nil {
		t.Fatalf("GetMatchGames failed: %v", err)
	}

	if got := captured.URL.EscapedPath(); got != "/matches/m1/games" {
		t.Errorf("path = %q, want /matches/m1/games", got)
	}
	if len(games) != 2 || games[1].GameNumber != 2 {
		t.Errorf("games = %+v, want two games", games)
	}
}

func TestMatchClient_GetStats(t *testing.T) {
	server, captured := recordingServer(t, `{"data":{
		"total_matches":10,"matches_won":6,"matches_lost":4,
		"total_games":22,"games_won":13,"games_lost":9,
		"match_win_rate":0.6,"game_win_rate":0.59
	}}`)
	defer server.Close()

	client := NewMatchClient(newTestTransport(server.URL))
	stats, err := client.GetStats(context.Background(), models.StatsFilter{})
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}

	if got := captured.URL.EscapedPath(); got != "/matches/stats" {
		t.Errorf("path = %q, want /matches/stats", got)
	}
	if captured.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", captured.Method)
	}
	if stats.TotalMatches != 10 || stats.MatchWinRate != 0.6 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestMatchClient_GetRankProgression(t *testing.T) {
	server, captured := recordingServer(t, `{"data":{
		"format":"constructed","current_rank":"Diamond","peak_rank":"Mythic",
		"matches_won":30,"matches_lost":20,"win_rate":0.6,"rank_changes":[]
	}}`)
	defer server.Close()

	client := NewMatchClient(newTestTransport(server.URL))
	progression, err := client.GetRankProgression(context.Background(), "constructed")
	if err != nil {
		t.Fatalf("GetRankProgression failed: %v", err)
	}

	if got := captured.URL.EscapedPath(); got != "/matches/rank-progression/constructed" {
		t.Errorf("path = %q, want /matches/rank-progression/constructed", got)
	}
	if progression.CurrentRank == nil || *progression.CurrentRank != "Diamond" {
		t.Errorf("CurrentRank = %v, want Diamond", progression.CurrentRank)
	}
}

func TestMatchClient_ExportMatches(t *testing.T) {
	csvPayload := []byte("id,result\nm1,win\nm2,loss\n")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("format") {
		case "csv":
			w.Header().Set("Content-Type", "text/csv")
			_, _ = w.Write(csvPayload)
		case "json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"matches":[]}`))
		default:
			t.Errorf("unexpected format %q", r.URL.Query().Get("format"))
			w.WriteHeader(http.StatusBadRequest)
		}
		if r.URL.EscapedPath() != "/matches/export" {
			t.Errorf("path = %q, want /matches/export", r.URL.EscapedPath())
		}
	}))
	defer server.Close()

	client := NewMatchClient(newTestTransport(server.URL))
	ctx := context.Background()

	// CSV comes back byte-for-byte, no parsing
	payload, err := client.ExportMatches(ctx, ExportCSV)
	if err != nil {
		t.Fatalf("ExportMatches(csv) failed: %v", err)
	}
	if !bytes.Equal(payload, csvPayload) {
		t.Errorf("csv payload = %q, want %q", payload, csvPayload)
	}

	// JSON too: no envelope unwrapping on the export path
	payload, err = client.ExportMatches(ctx, ExportJSON)
	if err != nil {
		t.Fatalf("ExportMatches(json) failed: %v", err)
	}
	if string(payload) != `{"matches":[]}` {
		t.Errorf("json payload = %s", payload)
	}
}

func TestMatchClient_GetFormats(t *testing.T) {
	server, captured := recordingServer(t, `{"data":["Ladder","Play","Draft"]}`)
	defer server.Close()

	client := NewMatchClient(newTestTransport(server.URL))
	formats, err := client.GetFormats(context.Background())
	if err != nil {
		t.Fatalf("GetFormats failed: %v", err)
	}

	if got := captured.URL.EscapedPath(); got != "/matches/formats" {
		t.Errorf("path = %q, want /matches/formats", got)
	}
	assert.Equal(t, []string{"Ladder", "Play", "Draft"}, formats)
}
