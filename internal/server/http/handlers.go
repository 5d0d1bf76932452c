package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"shogi/internal/server/game"
	"shogi/internal/shogi"
)

// Handler 实现 http.Handler，承接 /api/* 路由。
type Handler struct {
	games *game.Manager
}

func NewHandler(games *game.Manager) *Handler {
	return &Handler{games: games}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.URL.Path {
	case "/api/new_game":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleNewGame(w, r)

	case "/api/play":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handlePlay(w, r)

	case "/api/state":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleState(w, r)

	case "/api/moves":
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.handleMoves(w, r)

	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	// 请求体可省：空体就按平手初始局面开局。
	var req NewGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	var g *game.GameState
	switch {
	case req.Position != "" && req.Record != "":
		http.Error(w, "position and record are exclusive", http.StatusBadRequest)
		return
	case req.Position != "":
		pos, err := shogi.DecodePosition(req.Position)
		if err != nil {
			http.Error(w, "invalid position", http.StatusBadRequest)
			return
		}
		g = h.games.NewGameFrom(pos)
	case req.Record != "":
		replayed, err := h.games.Replay(req.Record)
		if err != nil {
			http.Error(w, "invalid record: "+err.Error(), http.StatusBadRequest)
			return
		}
		g = replayed
	default:
		g = h.games.NewGame()
	}

	st := gameToState(g)
	writeJSON(w, NewGameResponse{
		GameID:     g.ID,
		Position:   st.Position,
		ToMove:     st.ToMove,
		LegalMoves: st.LegalMoves,
		Status:     st.Status,
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Play(req.GameID, req.Move)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, PlayResponse(gameToState(g)))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, gameToState(g))
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	st := gameToState(g)
	writeJSON(w, MovesResponse{
		Moves:      st.Moves,
		LegalMoves: st.LegalMoves,
		Status:     st.Status,
	})
}

// writeError 把对局管理器的错误翻译成 HTTP 状态码。
func writeError(w http.ResponseWriter, err error) {
	var perr *shogi.ParseError
	switch {
	case errors.Is(err, game.ErrNotFound):
		http.Error(w, "game not found", http.StatusNotFound)
	case errors.Is(err, game.ErrIllegalMove):
		http.Error(w, "illegal move", http.StatusBadRequest)
	case errors.Is(err, game.ErrGameOver):
		http.Error(w, "game already decided", http.StatusConflict)
	case errors.As(err, &perr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
