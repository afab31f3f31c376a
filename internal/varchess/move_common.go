package varchess

var (
	rookDirs   = [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
	bishopDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	// 王和后按 df、dr 各从 -1 到 1 的顺序
	queenDirs  = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// 滑子共用的射线：遇己方或盘外停（不含），遇敌方吃子后停，空格继续
func genRayMoves(g *Grid, pc Piece, dirs [][2]int, moves *[]Move) {
	for _, d := range dirs {
		to := pc.Loc.Add(d[0], d[1])
		for {
			dst := g.PieceAt(to)
			if !dst.OnBoard() || dst.Side == pc.Side {
				break
			}
			*moves = append(*moves, Move{To: to})
			if !dst.IsEmpty() {
				break
			}
			to = to.Add(d[0], d[1])
		}
	}
}

func genBishopMoves(g *Grid, pc Piece, moves *[]Move) { genRayMoves(g, pc, bishopDirs, moves) }
func genRookMoves(g *Grid, pc Piece, moves *[]Move)   { genRayMoves(g, pc, rookDirs, moves) }
func genQueenMoves(g *Grid, pc Piece, moves *[]Move)  { genRayMoves(g, pc, queenDirs, moves) }

// 王：周围 8 格 + 易位（不检查是否被将军）
func genKingMoves(g *Grid, pc Piece, moves *[]Move) {
	for _, d := range queenDirs {
		to := pc.Loc.Add(d[0], d[1])
		if !g.InBounds(to) {
			continue
		}
		if g.PieceAt(to).Side != pc.Side {
			*moves = append(*moves, Move{To: to})
		}
	}
	if pc.Moved {
		return
	}
	// 先朝 file 0 的车，再朝最远一列的车
	for _, cornerFile := range []int{0, g.Files() - 1} {
		if to, ok := castleTarget(g, pc, cornerFile); ok {
			*moves = append(*moves, Move{To: to, Tag: TagCastle})
		}
	}
}

func castleTarget(g *Grid, king Piece, cornerFile int) (Loc, bool) {
	rank := king.Loc.Rank
	step := 1
	if cornerFile < king.Loc.File {
		step = -1
	}
	if cornerFile == king.Loc.File {
		return Loc{}, false
	}
	for f := king.Loc.File + step; f != cornerFile; f += step {
		if !g.PieceAt(Loc{File: f, Rank: rank}).IsEmpty() {
			return Loc{}, false
		}
	}
	rook := g.PieceAt(Loc{File: cornerFile, Rank: rank})
	if rook.Kind != Rook || rook.Moved || rook.Side != king.Side {
		return Loc{}, false
	}
	to := king.Loc.Add(2*step, 0)
	if !g.InBounds(to) {
		return Loc{}, false
	}
	return to, true
}

// castleRook finds the rook that a castle to kingTo drags along, and where it lands.
func castleRook(g *Grid, kingFrom, kingTo Loc) (Piece, Loc) {
	if kingTo.File > kingFrom.File {
		rook := g.PieceAt(Loc{File: g.Files() - 1, Rank: kingFrom.Rank})
		return rook, kingTo.Add(-1, 0)
	}
	rook := g.PieceAt(Loc{File: 0, Rank: kingFrom.Rank})
	return rook, kingTo.Add(1, 0)
}
