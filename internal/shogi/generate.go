package shogi

import "fmt"

// GeneratePseudoMoves 生成当前手番的全部伪合法着手：盘上驹的走动（含成与
// 不成两个分支）和所有能打入的持驹。这一层不管王的安危，将军相关的判断
// 在 GenerateMoves 和调用方那边。
func (p *Position) GeneratePseudoMoves() []Move {
	var moves []Move
	for idx, pc := range p.Board.Squares {
		switch {
		case pc == 0:
			genDropMoves(p, squareOf(idx), &moves)
		case pc.Side() == p.SideToMove:
			genPieceMoves(p, squareOf(idx), &moves)
		}
	}
	return moves
}

// genPieceMoves 展开 from 处驹的单步和滑行走法。
func genPieceMoves(p *Position, from Square, moves *[]Move) {
	pc := p.Board.Get(from)
	side, face := pc.Side(), pc.Face()
	fwd := forward(side)

	for _, d := range faceSteps[face] {
		f, r := from.File+d[0], from.Rank+d[1]*fwd
		if !onBoard(f, r) {
			continue
		}
		to := Square{File: f, Rank: r}
		if dst := p.Board.Get(to); dst != 0 && dst.Side() == side {
			continue
		}
		emitMoves(side, from, to, face, moves)
	}

	for _, d := range faceSlides[face] {
		df, dr := d[0], d[1]*fwd
		for f, r := from.File+df, from.Rank+dr; onBoard(f, r); f, r = f+df, r+dr {
			to := Square{File: f, Rank: r}
			dst := p.Board.Get(to)
			if dst != 0 && dst.Side() == side {
				break
			}
			emitMoves(side, from, to, face, moves)
			if dst != 0 {
				break
			}
		}
	}
}

// emitMoves 把一次走动摊开成成驹 / 不成两个候选：起点或终点在敌阵内且该面
// 还能成时给出成驹的一手；终点是该面永远无子可走的段时略去不成的一手，
// “此时必须成”的规则就由这个缺项自然成立。
func emitMoves(side Side, from, to Square, face Face, moves *[]Move) {
	if face.CanPromote() && (inPromotionZone(side, from.Rank) || inPromotionZone(side, to.Rank)) {
		*moves = append(*moves, NewMove(side, from, to, face, true))
	}
	if !placementProhibited(face, side, to.Rank) {
		*moves = append(*moves, NewMove(side, from, to, face, false))
	}
}

// genDropMoves 枚举能打到空格 to 的持驹。打入不能落在让该驹永远无子可走
// 的段，步兵另外受二步禁手约束：同一路上已有本方未成的步兵就不能再打。
func genDropMoves(p *Position, to Square, moves *[]Move) {
	side := p.SideToMove
	hand := &p.Hands[side]
	for pt := Pawn; pt <= King; pt++ {
		if hand.Count(pt) == 0 {
			continue
		}
		if placementProhibited(baseFaces[pt], side, to.Rank) {
			continue
		}
		if pt == Pawn && p.Board.PawnCount(side, to.File) > 0 {
			continue
		}
		*moves = append(*moves, NewDrop(side, to, pt))
	}
}

// Apply 执行一手着手，返回全新的后继局面，原局面保持不变。终局着手没有
// 后继局面，返回 nil。与局面不一致的着手（起点驹面不符、手里没有要打的驹、
// 打到有驹的格……）只可能出自伪造而非生成器，一律视为上层编程错误，
// 直接 panic。
func (p *Position) Apply(m Move) *Position {
	if m.Kind == MoveTerminal {
		return nil
	}
	if m.Side != p.SideToMove {
		panic(fmt.Errorf("shogi: apply out-of-turn move %v", m))
	}

	np := &Position{Board: p.Board, Hands: p.Hands, SideToMove: p.SideToMove.Opposite()}

	switch m.Kind {
	case MoveDrop:
		pt := m.DropType()
		if baseFaces[pt] != m.Face {
			panic(fmt.Errorf("shogi: drop with promoted face %s", faceCodes[m.Face]))
		}
		if np.Hands[m.Side].Count(pt) == 0 {
			panic(fmt.Errorf("shogi: drop %s with empty hand", faceCodes[m.Face]))
		}
		if np.Board.Get(m.To) != 0 {
			panic(fmt.Errorf("shogi: drop %s onto occupied square %v", faceCodes[m.Face], m.To))
		}
		np.Hands[m.Side][pt]--
		np.Board.set(m.To, makePiece(m.Side, m.Face))

	case MoveNormal:
		pc := p.Board.Get(m.From)
		if pc == 0 || pc.Side() != m.Side || pc.Face() != m.Face {
			panic(fmt.Errorf("shogi: origin %v does not hold %s", m.From, faceCodes[m.Face]))
		}
		if dst := p.Board.Get(m.To); dst != 0 {
			if dst.Side() == m.Side {
				panic(fmt.Errorf("shogi: move %v captures own piece", m))
			}
			// 吃驹入手：成驹还原成基本驹种
			np.Hands[m.Side][dst.Type()]++
		}
		face := m.Face
		if m.Promote {
			face = promotedFaces[face]
			if face == NoFace {
				panic(fmt.Errorf("shogi: %s cannot promote", faceCodes[m.Face]))
			}
		}
		np.Board.set(m.From, 0)
		np.Board.set(m.To, makePiece(m.Side, face))

	default:
		panic(fmt.Errorf("shogi: apply unknown move kind %d", m.Kind))
	}
	return np
}
