package shogi

import "testing"

func TestPromotionTables(t *testing.T) {
	promotable := map[Face]bool{
		FacePawn: true, FaceLance: true, FaceKnight: true,
		FaceSilver: true, FaceBishop: true, FaceRook: true,
	}
	for f := FacePawn; f < Face(NumFaces); f++ {
		if got := f.CanPromote(); got != promotable[f] {
			t.Errorf("%s.CanPromote() = %v, want %v", faceCodes[f], got, promotable[f])
		}
		if pf := promotedFaces[f]; pf != NoFace && pf.Type() != f.Type() {
			t.Errorf("promoting %s changes base type %v -> %v", faceCodes[f], f.Type(), pf.Type())
		}
	}
	for pt := Pawn; pt <= King; pt++ {
		if faceTypes[baseFaces[pt]] != pt {
			t.Errorf("baseFaces/faceTypes disagree for type %d", pt)
		}
	}
}

func TestFaceCodesDistinct(t *testing.T) {
	if len(codeFaces) != NumFaces-1 {
		t.Fatalf("codeFaces has %d entries, want %d", len(codeFaces), NumFaces-1)
	}
	for f := FacePawn; f < Face(NumFaces); f++ {
		code := faceCodes[f]
		if len(code) != 2 {
			t.Fatalf("face %d code %q is not two letters", f, code)
		}
		if codeFaces[code] != f {
			t.Fatalf("code %q maps back to %d, want %d", code, codeFaces[code], f)
		}
	}
}

// 禁停段表必须与“从该段再无任何走法”严格一致：走子一侧靠略去不成的
// 着手来强制成驹，打入一侧靠同一张表直接拒绝，两边共用的正是这个等价。
func TestProhibitedRanksMatchImmobility(t *testing.T) {
	for f := FacePawn; f < Face(NumFaces); f++ {
		for _, side := range []Side{Black, White} {
			for rank := 1; rank <= Ranks; rank++ {
				p := &Position{SideToMove: side}
				p.Board.set(Square{File: 5, Rank: rank}, makePiece(side, f))

				immobile := len(p.GeneratePseudoMoves()) == 0
				prohibited := placementProhibited(f, side, rank)
				if immobile != prohibited {
					t.Errorf("%s %v at rank %d: immobile=%v prohibited=%v",
						faceCodes[f], side, rank, immobile, prohibited)
				}
			}
		}
	}
}

func TestProhibitedRanksBySide(t *testing.T) {
	cases := []struct {
		face Face
		side Side
		rank int
		want bool
	}{
		{FacePawn, Black, 1, true},
		{FacePawn, Black, 2, false},
		{FacePawn, White, 9, true},
		{FacePawn, White, 8, false},
		{FaceLance, Black, 1, true},
		{FaceLance, White, 9, true},
		{FaceKnight, Black, 1, true},
		{FaceKnight, Black, 2, true},
		{FaceKnight, Black, 3, false},
		{FaceKnight, White, 8, true},
		{FaceKnight, White, 9, true},
		{FaceKnight, White, 7, false},
		{FaceSilver, Black, 1, false},
		{FaceTokin, Black, 1, false},
		{FaceKing, White, 9, false},
	}
	for _, c := range cases {
		if got := placementProhibited(c.face, c.side, c.rank); got != c.want {
			t.Errorf("placementProhibited(%s, %v, %d) = %v, want %v",
				faceCodes[c.face], c.side, c.rank, got, c.want)
		}
	}
}
