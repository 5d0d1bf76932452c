package shogi

import "fmt"

// EncodeMove 把着手写成一条棋谱文本：手番符号、起点、终点、走后的驹面
// 代号，如 +7776FU；打入的起点写 00。终局标记不属于棋谱词汇，传入即
// panic。
func EncodeMove(m Move) string {
	if m.Kind == MoveTerminal {
		panic("shogi: terminal move has no record form")
	}
	face := m.Face
	if m.Promote {
		face = promotedFaces[face]
	}
	marker := "+"
	if m.Side == White {
		marker = "-"
	}
	return marker + m.From.String() + m.To.String() + faceCodes[face]
}

func (m Move) String() string {
	if m.Kind == MoveTerminal {
		return "win:" + m.Winner.String()
	}
	return EncodeMove(m)
}

// DecodeMove 解析一条棋谱着手并对照当前局面补全：起点 00 视为打入；驹面
// 代号写的是走后的面，与起点处驹面不同时推断为成驹的一手。文本格式不对
// 或与局面对不上时返回 *ParseError。这里不核对着手是否合法，合法性交给
// 调用方对照 GenerateMoves 检查。
func (p *Position) DecodeMove(text string) (Move, error) {
	s := newScanner(text)

	var side Side
	switch {
	case s.tryLiteral("+"):
		side = Black
	case s.tryLiteral("-"):
		side = White
	default:
		return Move{}, s.errExpected(`side marker "+" or "-"`)
	}

	fromAt := s.pos
	var from Square
	drop := s.tryLiteral("00")
	if !drop {
		ff, err := s.digit(1, 9)
		if err != nil {
			return Move{}, err
		}
		fr, err := s.digit(1, 9)
		if err != nil {
			return Move{}, err
		}
		from = Square{File: ff, Rank: fr}
	}

	tf, err := s.digit(1, 9)
	if err != nil {
		return Move{}, err
	}
	tr, err := s.digit(1, 9)
	if err != nil {
		return Move{}, err
	}
	to := Square{File: tf, Rank: tr}

	codeAt := s.pos
	face, err := s.faceCode()
	if err != nil {
		return Move{}, err
	}
	if err := s.expectEOF(); err != nil {
		return Move{}, err
	}

	if drop {
		pt := faceTypes[face]
		if baseFaces[pt] != face {
			return Move{}, &ParseError{Expected: "unpromoted piece code for a drop", Offset: codeAt, Remainder: text[codeAt:]}
		}
		return NewDrop(side, to, pt), nil
	}

	pc := p.Board.Get(from)
	if pc == 0 || pc.Side() != side {
		return Move{}, &ParseError{
			Expected:  fmt.Sprintf("origin %v holding a %v piece", from, side),
			Offset:    fromAt,
			Remainder: text[fromAt:],
		}
	}
	orig := pc.Face()
	switch face {
	case orig:
		return NewMove(side, from, to, orig, false), nil
	case promotedFaces[orig]:
		return NewMove(side, from, to, orig, true), nil
	}
	return Move{}, &ParseError{
		Expected:  fmt.Sprintf("%s at %v or its promotion", faceCodes[orig], from),
		Offset:    codeAt,
		Remainder: text[codeAt:],
	}
}
