package shogi

// 走法表统一按“前进方向为正”的相对坐标书写：{file 增量, 前进步数}。
// 所有面都左右对称，换边时只需把段分量乘上 forward(side)。

var (
	orthoDirs = [][2]int{{0, 1}, {0, -1}, {-1, 0}, {1, 0}}
	diagDirs  = [][2]int{{-1, 1}, {1, 1}, {-1, -1}, {1, -1}}

	goldSteps = [][2]int{{0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}}
	kingSteps = [][2]int{{0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {-1, -1}, {1, -1}}
)

// faceSteps 是各面的单步走法；滑行类的面只在 faceSlides 里出现。
// 马和龙两者都有：一圈单步补上斜向/直向滑行。
var faceSteps = [NumFaces][][2]int{
	FacePawn:           {{0, 1}},
	FaceKnight:         {{-1, 2}, {1, 2}},
	FaceSilver:         {{0, 1}, {-1, 1}, {1, 1}, {-1, -1}, {1, -1}},
	FaceGold:           goldSteps,
	FaceKing:           kingSteps,
	FaceTokin:          goldSteps,
	FacePromotedLance:  goldSteps,
	FacePromotedKnight: goldSteps,
	FacePromotedSilver: goldSteps,
	FaceHorse:          orthoDirs,
	FaceDragon:         diagDirs,
}

// faceSlides 是各面的滑行方向，沿方向走到底或走到第一个挡路的驹为止。
var faceSlides = [NumFaces][][2]int{
	FaceLance:  {{0, 1}},
	FaceBishop: diagDirs,
	FaceRook:   orthoDirs,
	FaceHorse:  diagDirs,
	FaceDragon: orthoDirs,
}

// promotedFaces 给出每个面成驹之后的面；NoFace 表示不能成。
var promotedFaces = [NumFaces]Face{
	FacePawn:   FaceTokin,
	FaceLance:  FacePromotedLance,
	FaceKnight: FacePromotedKnight,
	FaceSilver: FacePromotedSilver,
	FaceBishop: FaceHorse,
	FaceRook:   FaceDragon,
}

// baseFaces 把驹种映射到未成的基本面，打入时用。
var baseFaces = [NumPieceTypes]Face{
	Pawn:   FacePawn,
	Lance:  FaceLance,
	Knight: FaceKnight,
	Silver: FaceSilver,
	Gold:   FaceGold,
	Bishop: FaceBishop,
	Rook:   FaceRook,
	King:   FaceKing,
}

// faceTypes 把面折算回基本驹种，吃驹入手时用。
var faceTypes = [NumFaces]PieceType{
	FacePawn:           Pawn,
	FaceLance:          Lance,
	FaceKnight:         Knight,
	FaceSilver:         Silver,
	FaceGold:           Gold,
	FaceBishop:         Bishop,
	FaceRook:           Rook,
	FaceKing:           King,
	FaceTokin:          Pawn,
	FacePromotedLance:  Lance,
	FacePromotedKnight: Knight,
	FacePromotedSilver: Silver,
	FaceHorse:          Bishop,
	FaceDragon:         Rook,
}

// deadDepths 给出各面在对方底线方向“最深处”不允许停留的段数：
// 步和香是最底一段，桂是最底两段。打入与走子共用这张表：打到这些段
// 直接非法，走进这些段则必须选择成驹的那一手。
var deadDepths = [NumFaces]int{
	FacePawn:   1,
	FaceLance:  1,
	FaceKnight: 2,
}

// placementProhibited 报告 side 的 face 驹停在 rank 段之后是否永远无子可走。
func placementProhibited(face Face, side Side, rank int) bool {
	d := deadDepths[face]
	if d == 0 {
		return false
	}
	if side == Black {
		return rank <= d
	}
	return rank > Ranks-d
}

// faceCodes 是棋谱和局面图共用的两字母驹面代号。
var faceCodes = [NumFaces]string{
	FacePawn:           "FU",
	FaceLance:          "KY",
	FaceKnight:         "KE",
	FaceSilver:         "GI",
	FaceGold:           "KI",
	FaceBishop:         "KA",
	FaceRook:           "HI",
	FaceKing:           "OU",
	FaceTokin:          "TO",
	FacePromotedLance:  "NY",
	FacePromotedKnight: "NK",
	FacePromotedSilver: "NG",
	FaceHorse:          "UM",
	FaceDragon:         "RY",
}

// String 返回两字母驹面代号。
func (f Face) String() string {
	return faceCodes[f]
}

var codeFaces map[string]Face

func init() {
	codeFaces = make(map[string]Face, NumFaces)
	for f := FacePawn; f < Face(NumFaces); f++ {
		codeFaces[faceCodes[f]] = f
	}
}
