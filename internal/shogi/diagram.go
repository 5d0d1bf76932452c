package shogi

import (
	"strconv"
	"strings"
)

// Encode 把局面写成局面图文本：一行后手持驹、九段盘面、一行先手持驹、
// 一行手番。盘面每格宽三个字符，空格写 " * "，有驹的格写方向符号
// （先手 +，后手 -）加两字母驹面代号；段从上往下，每段里从 9 路到 1 路。
func (p *Position) Encode() string {
	var b strings.Builder
	b.WriteString("white: ")
	writeHand(&b, &p.Hands[White])
	b.WriteByte('\n')
	for rank := 1; rank <= Ranks; rank++ {
		b.WriteByte('|')
		for file := Files; file >= 1; file-- {
			b.WriteString(p.Board.Get(Square{File: file, Rank: rank}).String())
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	b.WriteString("black: ")
	writeHand(&b, &p.Hands[Black])
	b.WriteByte('\n')
	b.WriteString("turn: ")
	b.WriteString(p.SideToMove.String())
	b.WriteByte('\n')
	return b.String()
}

// String 等同于 Encode，让 %v 直接打出局面图。
func (p *Position) String() string {
	return p.Encode()
}

// String 按局面图里的持驹写法输出。
func (h Hand) String() string {
	var b strings.Builder
	writeHand(&b, &h)
	return b.String()
}

// writeHand 按驹种从大到小列出持驹，同种多于一枚时代号后跟数量；
// 一枚都没有时写 none。
func writeHand(b *strings.Builder, h *Hand) {
	if h.Total() == 0 {
		b.WriteString("none")
		return
	}
	first := true
	for pt := King; pt >= Pawn; pt-- {
		c := h.Count(pt)
		if c == 0 {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(faceCodes[baseFaces[pt]])
		if c > 1 {
			b.WriteString(strconv.Itoa(c))
		}
	}
}

// DecodePosition 解析局面图文本，格式必须与 Encode 的输出一致，仅结尾的
// 换行可省。只检查文本结构，不检查局面本身是否合理。
func DecodePosition(text string) (*Position, error) {
	s := newScanner(text)
	p := &Position{SideToMove: Black}

	if err := s.literal("white: "); err != nil {
		return nil, err
	}
	if err := parseHand(s, &p.Hands[White]); err != nil {
		return nil, err
	}
	if err := s.literal("\n"); err != nil {
		return nil, err
	}
	for rank := 1; rank <= Ranks; rank++ {
		if err := parseRow(s, &p.Board, rank); err != nil {
			return nil, err
		}
	}
	if err := s.literal("black: "); err != nil {
		return nil, err
	}
	if err := parseHand(s, &p.Hands[Black]); err != nil {
		return nil, err
	}
	if err := s.literal("\n"); err != nil {
		return nil, err
	}
	if err := s.literal("turn: "); err != nil {
		return nil, err
	}
	switch {
	case s.tryLiteral("black"):
		p.SideToMove = Black
	case s.tryLiteral("white"):
		p.SideToMove = White
	default:
		return nil, s.errExpected(`"black" or "white"`)
	}
	s.tryLiteral("\n")
	if err := s.expectEOF(); err != nil {
		return nil, err
	}
	return p, nil
}

// parseHand 读一行持驹：空手写 none，否则是空格分隔的“基本面代号[数量]”。
func parseHand(s *scanner, h *Hand) error {
	if s.tryLiteral("none") {
		return nil
	}
	for {
		at := s.pos
		face, err := s.faceCode()
		if err != nil {
			return err
		}
		if baseFaces[faceTypes[face]] != face {
			return &ParseError{Expected: "unpromoted piece code", Offset: at, Remainder: s.src[at:]}
		}
		count := 1
		if c := s.peek(); c >= '0' && c <= '9' {
			at = s.pos
			count, _ = s.number()
			if count < 1 || count > 18 {
				return &ParseError{Expected: "count 1-18", Offset: at, Remainder: s.src[at:]}
			}
		}
		h[faceTypes[face]] += uint8(count)
		if !s.tryLiteral(" ") {
			return nil
		}
	}
}

// parseRow 读一段盘面：竖线分隔的九个三字符格。
func parseRow(s *scanner, b *Board, rank int) error {
	if err := s.literal("|"); err != nil {
		return err
	}
	for file := Files; file >= 1; file-- {
		switch {
		case s.tryLiteral(" * "):
			// 空格
		case s.tryLiteral("+"):
			face, err := s.faceCode()
			if err != nil {
				return err
			}
			b.set(Square{File: file, Rank: rank}, makePiece(Black, face))
		case s.tryLiteral("-"):
			face, err := s.faceCode()
			if err != nil {
				return err
			}
			b.set(Square{File: file, Rank: rank}, makePiece(White, face))
		default:
			return s.errExpected(`cell " * ", "+" or "-"`)
		}
		if err := s.literal("|"); err != nil {
			return err
		}
	}
	return s.literal("\n")
}
