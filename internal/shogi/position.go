package shogi

// locations 返回按 (side, face) 分组的棋子坐标表，首次访问时扫描一遍棋盘。
// Position 构造后不再变，缓存可以一直用下去。
func (p *Position) locations() *locationIndex {
	p.locOnce.Do(func() {
		var idx locationIndex
		for i, pc := range p.Board.Squares {
			if pc == 0 {
				continue
			}
			s, f := pc.Side(), pc.Face()
			idx[s][f] = append(idx[s][f], squareOf(i))
		}
		p.locs = &idx
	})
	return p.locs
}

// KingSquare 返回 side 的王所在格；王已被吃掉时 ok 为 false。
func (p *Position) KingSquare(side Side) (Square, bool) {
	ls := p.locations()[side][FaceKing]
	if len(ls) == 0 {
		return Square{}, false
	}
	return ls[0], true
}

// Equal 按盘面、双方持驹和手番比较两个局面。
func (p *Position) Equal(o *Position) bool {
	return p.Board == o.Board && p.Hands == o.Hands && p.SideToMove == o.SideToMove
}
