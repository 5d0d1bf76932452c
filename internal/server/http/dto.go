package httpserver

import (
	"shogi/internal/server/game"
	"shogi/internal/shogi"
)

// NewGame 请求：可以带一个局面图文本来摆棋，或带一份棋谱文本重放成对局；
// 两者都省略时从平手初始局面开局。
type NewGameRequest struct {
	Position string `json:"position,omitempty"`
	Record   string `json:"record,omitempty"`
}

// NewGame 返回
type NewGameResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"`    // 局面图文本
	ToMove     string   `json:"to_move"`     // "black" / "white"
	LegalMoves []string `json:"legal_moves"` // 棋谱着手记号
	Status     string   `json:"status"`
}

// Play 请求：着手用棋谱记号传，比如 "+7776FU"。
type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

// Play 返回
type PlayResponse struct {
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Moves      []string `json:"moves"` // 从开局起的全部着手
	Status     string   `json:"status"`
	Winner     string   `json:"winner,omitempty"`
}

// State 请求：前端刷新时用 game_id 来要当前盘面
type StateRequest struct {
	GameID string `json:"game_id"`
}

// Moves 返回：只有棋谱历史和可走着手，刷新着法面板用
type MovesResponse struct {
	Moves      []string `json:"moves"`
	LegalMoves []string `json:"legal_moves"`
	Status     string   `json:"status"`
}

// State 返回：结构和 PlayResponse 一样
type StateResponse struct {
	Position   string   `json:"position"`
	ToMove     string   `json:"to_move"`
	LegalMoves []string `json:"legal_moves"`
	Moves      []string `json:"moves"`
	Status     string   `json:"status"`
	Winner     string   `json:"winner,omitempty"`
}

// legalTokens 列出当前局面全部可走着手的棋谱记号。
// 终局着手没有棋谱形式，不进列表，由 status 字段表达。
func legalTokens(p *shogi.Position) []string {
	moves := p.GenerateMoves()
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		if m.Kind == shogi.MoveTerminal {
			continue
		}
		out = append(out, shogi.EncodeMove(m))
	}
	return out
}

func recordTokens(moves []shogi.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = shogi.EncodeMove(m)
	}
	return out
}

// gameToState 把对局快照整理成给前端的应答。终局后不再列可走着手，
// 改为给出赢家。
func gameToState(g *game.GameState) StateResponse {
	resp := StateResponse{
		Position:   g.Pos.Encode(),
		ToMove:     g.Pos.SideToMove.String(),
		LegalMoves: []string{},
		Moves:      recordTokens(g.Moves),
		Status:     g.Status.String(),
	}
	if g.Status == game.StatusOngoing {
		resp.LegalMoves = legalTokens(g.Pos)
	} else {
		resp.Winner = g.Winner.String()
	}
	return resp
}
