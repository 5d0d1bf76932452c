package game

import (
	"time"

	"shogi/internal/shogi"
)

// Status 是对局的进行状态。
type Status int8

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusKingTaken
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusKingTaken:
		return "king_taken"
	default:
		return "ongoing"
	}
}

// GameState 保存一盘对局：当前局面、完整着手历史和胜负状态。
type GameState struct {
	ID        string
	Pos       *shogi.Position
	Moves     []shogi.Move
	Status    Status
	Winner    shogi.Side
	CreatedAt time.Time
	UpdatedAt time.Time
}

// snapshot 复制一份对局状态给调用方；着手历史另拷一份，局面本身构造后
// 不再改动，指针可以共享。
func (g *GameState) snapshot() *GameState {
	cp := *g
	cp.Moves = append([]shogi.Move(nil), g.Moves...)
	return &cp
}

// refreshStatus 按当前局面核对胜负：有一方的王已被吃掉按吃王定局，
// 否则手番一方被将死时按将死定局。
func (g *GameState) refreshStatus() {
	for _, side := range []shogi.Side{shogi.Black, shogi.White} {
		if _, ok := g.Pos.KingSquare(side); !ok {
			g.Status = StatusKingTaken
			g.Winner = side.Opposite()
			return
		}
	}
	if g.Pos.IsCheckmate() {
		g.Status = StatusCheckmate
		g.Winner = g.Pos.SideToMove.Opposite()
	}
}
