package tui

import (
	"strings"

	"shogi/internal/shogi"
)

// RenderPosition 把局面画成固定宽度的棋盘：上方后手持驹，下方先手持驹。
// 格子写法与局面图一致（先手 +，后手 -），路号从右往左 9..1，段号在左侧。
func RenderPosition(p *shogi.Position) string {
	var b strings.Builder
	b.WriteString("white hand: ")
	b.WriteString(p.Hands[shogi.White].String())
	b.WriteString("\n")
	b.WriteString("    9   8   7   6   5   4   3   2   1\n")
	for rank := 1; rank <= shogi.Ranks; rank++ {
		b.WriteString(" ")
		b.WriteByte(byte('0' + rank))
		b.WriteString("|")
		for file := shogi.Files; file >= 1; file-- {
			b.WriteString(p.Board.Get(shogi.Square{File: file, Rank: rank}).String())
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	b.WriteString("black hand: ")
	b.WriteString(p.Hands[shogi.Black].String())
	b.WriteString("\n")
	return b.String()
}
