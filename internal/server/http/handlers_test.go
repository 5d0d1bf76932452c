package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shogi/internal/server/game"
	"shogi/internal/shogi"
)

const mateDiagram = `white: none
| * | * | * | * | * | * |+RY| * |-OU|
| * | * | * | * | * | * | * | * | * |
| * | * | * | * | * | * | * | * | * |
| * | * | * | * | * | * | * | * | * |
| * | * | * | * | * | * | * | * |+KY|
| * | * | * | * | * | * | * | * | * |
| * | * | * | * | * | * | * | * | * |
| * | * | * | * | * | * | * | * | * |
|+OU| * | * | * | * | * | * | * | * |
black: none
turn: white
`

func newTestHandler() *Handler {
	return NewHandler(game.NewManager())
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestNewGamePlayStateFlow(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/new_game", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("new_game status = %d, body %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("Content-Type = %q", ct)
	}
	created := decodeBody[NewGameResponse](t, rec)
	if created.GameID == "" {
		t.Fatalf("new_game returned empty game_id")
	}
	if created.ToMove != "black" || created.Status != "ongoing" {
		t.Fatalf("new_game to_move=%q status=%q", created.ToMove, created.Status)
	}
	if len(created.LegalMoves) != 30 {
		t.Fatalf("new_game legal moves = %d, want 30", len(created.LegalMoves))
	}
	if want := shogi.NewInitialPosition().Encode(); created.Position != want {
		t.Fatalf("new_game position = %q, want initial", created.Position)
	}

	rec = postJSON(t, h, "/api/play", PlayRequest{GameID: created.GameID, Move: "+7776FU"})
	if rec.Code != http.StatusOK {
		t.Fatalf("play status = %d, body %q", rec.Code, rec.Body.String())
	}
	played := decodeBody[PlayResponse](t, rec)
	if played.ToMove != "white" || played.Status != "ongoing" {
		t.Fatalf("play to_move=%q status=%q", played.ToMove, played.Status)
	}
	if len(played.Moves) != 1 || played.Moves[0] != "+7776FU" {
		t.Fatalf("play moves = %v, want [+7776FU]", played.Moves)
	}

	rec = postJSON(t, h, "/api/state", StateRequest{GameID: created.GameID})
	if rec.Code != http.StatusOK {
		t.Fatalf("state status = %d, body %q", rec.Code, rec.Body.String())
	}
	state := decodeBody[StateResponse](t, rec)
	if state.Position != played.Position {
		t.Fatalf("state position differs from play response")
	}
	if len(state.LegalMoves) == 0 {
		t.Fatalf("state legal moves empty in ongoing game")
	}
}

func TestNewGameFromDiagram(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/new_game", NewGameRequest{Position: mateDiagram})
	if rec.Code != http.StatusOK {
		t.Fatalf("new_game status = %d, body %q", rec.Code, rec.Body.String())
	}
	created := decodeBody[NewGameResponse](t, rec)
	if created.Status != "checkmate" {
		t.Fatalf("status = %q, want checkmate", created.Status)
	}
	if len(created.LegalMoves) != 0 {
		t.Fatalf("decided game listed %d legal moves", len(created.LegalMoves))
	}

	rec = postJSON(t, h, "/api/state", StateRequest{GameID: created.GameID})
	state := decodeBody[StateResponse](t, rec)
	if state.Winner != "black" {
		t.Fatalf("winner = %q, want black", state.Winner)
	}

	rec = postJSON(t, h, "/api/play", PlayRequest{GameID: created.GameID, Move: "-1112OU"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("play in decided game status = %d, want 409", rec.Code)
	}
}

func TestNewGameFromRecord(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/new_game", NewGameRequest{Record: "+7776FU\n-3334FU\n"})
	if rec.Code != http.StatusOK {
		t.Fatalf("new_game status = %d, body %q", rec.Code, rec.Body.String())
	}
	created := decodeBody[NewGameResponse](t, rec)
	if created.ToMove != "black" || created.Status != "ongoing" {
		t.Fatalf("to_move=%q status=%q", created.ToMove, created.Status)
	}

	rec = postJSON(t, h, "/api/moves", StateRequest{GameID: created.GameID})
	if rec.Code != http.StatusOK {
		t.Fatalf("moves status = %d, body %q", rec.Code, rec.Body.String())
	}
	hist := decodeBody[MovesResponse](t, rec)
	if len(hist.Moves) != 2 || hist.Moves[0] != "+7776FU" || hist.Moves[1] != "-3334FU" {
		t.Fatalf("moves = %v, want [+7776FU -3334FU]", hist.Moves)
	}
	if len(hist.LegalMoves) == 0 {
		t.Fatalf("legal moves empty after replay")
	}
}

func TestNewGameRejectsBadRecord(t *testing.T) {
	h := newTestHandler()

	rec := postJSON(t, h, "/api/new_game", NewGameRequest{Record: "+7775FU\n"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "invalid record: ") {
		t.Fatalf("body = %q, want invalid record prefix", rec.Body.String())
	}

	rec = postJSON(t, h, "/api/new_game", NewGameRequest{Position: mateDiagram, Record: "+7776FU\n"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("exclusive check status = %d, want 400", rec.Code)
	}
}

func TestNewGameRejectsBadDiagram(t *testing.T) {
	h := newTestHandler()
	rec := postJSON(t, h, "/api/new_game", NewGameRequest{Position: "nonsense"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "invalid position" {
		t.Fatalf("body = %q, want %q", got, "invalid position")
	}
}

func TestPlayErrorMapping(t *testing.T) {
	h := newTestHandler()
	created := decodeBody[NewGameResponse](t, postJSON(t, h, "/api/new_game", nil))

	req := httptest.NewRequest(http.MethodPost, "/api/play", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != "bad json" {
		t.Fatalf("bad json: status=%d body=%q", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, h, "/api/play", PlayRequest{GameID: "no-such-id", Move: "+7776FU"})
	if rec.Code != http.StatusNotFound || strings.TrimSpace(rec.Body.String()) != "game not found" {
		t.Fatalf("unknown game: status=%d body=%q", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, h, "/api/play", PlayRequest{GameID: created.GameID, Move: "+7775FU"})
	if rec.Code != http.StatusBadRequest || strings.TrimSpace(rec.Body.String()) != "illegal move" {
		t.Fatalf("illegal move: status=%d body=%q", rec.Code, rec.Body.String())
	}

	rec = postJSON(t, h, "/api/play", PlayRequest{GameID: created.GameID, Move: "7776FU"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad token status = %d, want 400", rec.Code)
	}
	if !strings.HasPrefix(rec.Body.String(), "parse: expected") {
		t.Fatalf("bad token body = %q, want parse error text", rec.Body.String())
	}
}

func TestMethodAndPathChecks(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/new_game", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("GET new_game status = %d, want 405", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/no_such_route", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown path status = %d, want 404", rec.Code)
	}
}

func TestServerRoutesAPIAndStatic(t *testing.T) {
	srv := NewServer(game.NewManager(), t.TempDir())

	rec := postJSON(t, srv, "/api/new_game", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("new_game via server status = %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/web/" {
		t.Fatalf("root via server: status=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestStaticRoutes(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>board</html>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	mux := http.NewServeMux()
	RegisterStaticRoutes(mux, dir)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/web/" {
		t.Fatalf("root redirect: status=%d location=%q", rec.Code, rec.Header().Get("Location"))
	}

	req = httptest.NewRequest(http.MethodGet, "/web/", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "board") {
		t.Fatalf("serve index: status=%d body=%q", rec.Code, rec.Body.String())
	}
}
