package shogi

const (
	Files      = 9
	Ranks      = 9
	NumSquares = Files * Ranks
)

// Board 是 9×9 盘面。下标按段行优先排列：0 号元素是 1一（右上角，
// 后手阵地的右端），最后一个元素是 9九（左下角）。
type Board struct {
	Squares [NumSquares]Piece
}

func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq.Index()]
}

func (b *Board) set(sq Square, pc Piece) {
	b.Squares[sq.Index()] = pc
}

// Search 收集盘上内容属于给定集合的格，按下标序返回。
func (b *Board) Search(pieces ...Piece) []Square {
	var out []Square
	for idx, pc := range b.Squares {
		for _, want := range pieces {
			if pc == want {
				out = append(out, squareOf(idx))
				break
			}
		}
	}
	return out
}

// PawnCount 统计 side 在 file 路上未成的步兵数，二步禁手靠它判断。
// 成驹（と金）不算在内。
func (b *Board) PawnCount(side Side, file int) int {
	target := makePiece(side, FacePawn)
	n := 0
	for rank := 1; rank <= Ranks; rank++ {
		if b.Squares[(rank-1)*Files+file-1] == target {
			n++
		}
	}
	return n
}

func onBoard(file, rank int) bool {
	return file >= 1 && file <= Files && rank >= 1 && rank <= Ranks
}

// forward 返回 side 前进方向在段号上的符号：先手向小段号走。
func forward(s Side) int {
	if s == Black {
		return -1
	}
	return 1
}

// inPromotionZone 报告 rank 是否在 side 的敌阵（可以成驹的三段）内。
func inPromotionZone(side Side, rank int) bool {
	if side == Black {
		return rank <= 3
	}
	return rank >= Ranks-2
}

// initialDiagram 是平手初始局面，直接用对外的局面图格式书写。
const initialDiagram = `white: none
|-KY|-KE|-GI|-KI|-OU|-KI|-GI|-KE|-KY|
| * |-HI| * | * | * | * | * |-KA| * |
|-FU|-FU|-FU|-FU|-FU|-FU|-FU|-FU|-FU|
| * | * | * | * | * | * | * | * | * |
| * | * | * | * | * | * | * | * | * |
| * | * | * | * | * | * | * | * | * |
|+FU|+FU|+FU|+FU|+FU|+FU|+FU|+FU|+FU|
| * |+KA| * | * | * | * | * |+HI| * |
|+KY|+KE|+GI|+KI|+OU|+KI|+GI|+KE|+KY|
black: none
turn: black
`

// NewInitialPosition 返回平手开局局面。
// 常量解析失败只可能是常量本身被改坏，直接 panic。
func NewInitialPosition() *Position {
	p, err := DecodePosition(initialDiagram)
	if err != nil {
		panic("shogi: bad initial diagram: " + err.Error())
	}
	return p
}
