package shogi

// reach 标记 side 一方所有驹按几何走法能到达的格。withGuarded 为 true 时，
// 被己方驹占住的目标格也标上，这样对方的王就不能走进有驹看护的格。打入
// 永远落在空格上吃不到驹，不参与攻击范围。
func (p *Position) reach(side Side, withGuarded bool) [NumSquares]bool {
	var out [NumSquares]bool
	fwd := forward(side)
	for idx, pc := range p.Board.Squares {
		if pc == 0 || pc.Side() != side {
			continue
		}
		from := squareOf(idx)
		face := pc.Face()

		for _, d := range faceSteps[face] {
			f, r := from.File+d[0], from.Rank+d[1]*fwd
			if !onBoard(f, r) {
				continue
			}
			to := Square{File: f, Rank: r}
			if dst := p.Board.Get(to); dst != 0 && dst.Side() == side && !withGuarded {
				continue
			}
			out[to.Index()] = true
		}

		for _, d := range faceSlides[face] {
			df, dr := d[0], d[1]*fwd
			for f, r := from.File+df, from.Rank+dr; onBoard(f, r); f, r = f+df, r+dr {
				to := Square{File: f, Rank: r}
				dst := p.Board.Get(to)
				if dst == 0 {
					out[to.Index()] = true
					continue
				}
				if dst.Side() != side || withGuarded {
					out[to.Index()] = true
				}
				break
			}
		}
	}
	return out
}

// InCheck 报告 side 的王当前是否被对方攻击。王已不在盘上时返回 false。
func (p *Position) InCheck(side Side) bool {
	king, ok := p.KingSquare(side)
	if !ok {
		return false
	}
	att := p.reach(side.Opposite(), false)
	return att[king.Index()]
}

// GenerateMoves 在伪合法着手之上加一层终局判定：当前手番已经有着手能吃到
// 对方的王时，在列表末尾追加一个宣告胜负的终局着手。返回空列表表示无子
// 可动。
func (p *Position) GenerateMoves() []Move {
	moves := p.GeneratePseudoMoves()
	if king, ok := p.KingSquare(p.SideToMove.Opposite()); ok {
		for _, m := range moves {
			if m.Kind == MoveNormal && m.To == king {
				moves = append(moves, NewTerminal(ReasonKingTaken, p.SideToMove))
				break
			}
		}
	}
	return moves
}

// IsCheckmate 判断当前手番一方的王是否已无处可逃：王的每个落脚格要么被
// 己方驹占住，要么处在对方的攻击或看护之下。这里只考察王自身的可动性，
// 吃掉攻击驹、用驹遮挡、打入解将都不在考察范围内，王原地不动是否安全也
// 不看。
func (p *Position) IsCheckmate() bool {
	side := p.SideToMove
	king, ok := p.KingSquare(side)
	if !ok {
		return false
	}
	att := p.reach(side.Opposite(), true)
	fwd := forward(side)
	for _, d := range kingSteps {
		f, r := king.File+d[0], king.Rank+d[1]*fwd
		if !onBoard(f, r) {
			continue
		}
		to := Square{File: f, Rank: r}
		if dst := p.Board.Get(to); dst != 0 && dst.Side() == side {
			continue
		}
		if !att[to.Index()] {
			return false
		}
	}
	return true
}
