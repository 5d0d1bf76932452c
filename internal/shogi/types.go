package shogi

import (
	"strconv"
	"sync"
)

// Side 表示执棋方
type Side int8

const (
	NoSide Side = -1
	Black  Side = 0 // 先手，棋盘下方，向小段号方向前进
	White  Side = 1 // 后手，棋盘上方
)

func (s Side) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "none"
	}
}

// Opposite 返回对方。
func (s Side) Opposite() Side {
	if s == Black {
		return White
	}
	return Black
}

// PieceType 表示驹的基本种类（不区分是否成驹），同时充当持驹计数的下标。
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Lance
	Knight
	Silver
	Gold
	Bishop
	Rook
	King

	NumPieceTypes = int(King) + 1
)

// Face 表示驹在盘上的具体一面：八种基本面加六种成面。
// 盘上每个格存的就是 Face（带上方向符号，见 Piece）。
type Face int8

const (
	NoFace Face = iota
	FacePawn
	FaceLance
	FaceKnight
	FaceSilver
	FaceGold
	FaceBishop
	FaceRook
	FaceKing
	FaceTokin          // と金，成步
	FacePromotedLance  // 成香
	FacePromotedKnight // 成桂
	FacePromotedSilver // 成银
	FaceHorse          // 马，成角
	FaceDragon         // 龙，成飞

	NumFaces = int(FaceDragon) + 1
)

// Type 返回该面对应的基本驹种；被吃进持驹时以此还原。
func (f Face) Type() PieceType {
	return faceTypes[f]
}

// CanPromote 报告该面是否还能成驹。
func (f Face) CanPromote() bool {
	return promotedFaces[f] != NoFace
}

// Piece 是棋盘格上的内容：0 表示空格，正数为先手驹，负数为后手驹，
// 绝对值是 Face。
type Piece int8

func makePiece(side Side, f Face) Piece {
	if side == White {
		return Piece(-int8(f))
	}
	return Piece(f)
}

func (p Piece) Face() Face {
	if p < 0 {
		return Face(-p)
	}
	return Face(p)
}

func (p Piece) Side() Side {
	switch {
	case p > 0:
		return Black
	case p < 0:
		return White
	default:
		return NoSide
	}
}

func (p Piece) Type() PieceType {
	return p.Face().Type()
}

// String 按局面图的格子写法输出：空格是 " * "，有驹是方向符号加驹面代号。
func (p Piece) String() string {
	switch p.Side() {
	case Black:
		return "+" + faceCodes[p.Face()]
	case White:
		return "-" + faceCodes[p.Face()]
	default:
		return " * "
	}
}

// Square 用将棋记谱坐标定位棋盘格：File 从右往左数 1..9，Rank 从上往下数 1..9。
// 零值 (0,0) 不在盘上，打入着手用它充当起点。
type Square struct {
	File int
	Rank int
}

// Index 把坐标折算成 Board.Squares 的下标。
func (s Square) Index() int {
	return (s.Rank-1)*Files + (s.File - 1)
}

// String 输出记谱用的两位数字，如 76；零值输出 00。
func (s Square) String() string {
	return strconv.Itoa(s.File) + strconv.Itoa(s.Rank)
}

func squareOf(index int) Square {
	return Square{File: index%Files + 1, Rank: index/Files + 1}
}

// Hand 记录一方的持驹数量，按 PieceType 下标计数。
type Hand [NumPieceTypes]uint8

func (h *Hand) Count(pt PieceType) int {
	return int(h[pt])
}

// Total 返回持驹总数。
func (h *Hand) Total() int {
	n := 0
	for _, c := range h {
		n += int(c)
	}
	return n
}

// MoveKind 区分三类着手。
type MoveKind int8

const (
	MoveNormal   MoveKind = iota // 盘上驹的移动，可能同时成驹
	MoveDrop                     // 打入持驹
	MoveTerminal                 // 终局标记：不改变盘面，只宣告胜负
)

// TerminalReason 说明终局着手的来由。
type TerminalReason int8

const (
	NoReason        TerminalReason = iota
	ReasonKingTaken                // 当前手番可以直接吃掉对方的王
)

// Move 用一个扁平结构承载三类着手，各类只使用自己需要的字段。
// 经由构造函数生成的着手可以直接用 == 判等。
type Move struct {
	Kind    MoveKind
	Side    Side
	From    Square         // 仅 MoveNormal；打入时保持零值（记谱里的 00 起点）
	To      Square         // MoveNormal / MoveDrop
	Face    Face           // 移动前的面；打入时是该驹种的基本面
	Promote bool           // 仅 MoveNormal
	Reason  TerminalReason // 仅 MoveTerminal
	Winner  Side           // 仅 MoveTerminal
}

// NewMove 构造一手盘上驹的移动。face 是起点处移动前的面。
func NewMove(side Side, from, to Square, face Face, promote bool) Move {
	return Move{Kind: MoveNormal, Side: side, From: from, To: to, Face: face, Promote: promote, Winner: NoSide}
}

// NewDrop 构造一手打入。
func NewDrop(side Side, to Square, pt PieceType) Move {
	return Move{Kind: MoveDrop, Side: side, To: to, Face: baseFaces[pt], Winner: NoSide}
}

// NewTerminal 构造一个终局标记。
func NewTerminal(reason TerminalReason, winner Side) Move {
	return Move{Kind: MoveTerminal, Side: NoSide, Reason: reason, Winner: winner}
}

// DropType 返回打入着手的驹种。
func (m Move) DropType() PieceType {
	return m.Face.Type()
}

// Position 表示一个完整局面。构造之后不应再修改：Apply 总是复制出新局面，
// 所以并发探索可以放心共享同一个 *Position。
type Position struct {
	Board      Board
	Hands      [2]Hand // 按 Side 下标：Black=0，White=1
	SideToMove Side

	locOnce sync.Once
	locs    *locationIndex
}

// locationIndex 按 (side, face) 缓存棋子坐标，首次访问时惰性扫描一遍棋盘。
type locationIndex [2][NumFaces][]Square
