package varchess

// Generate 返回 pc 的候选走法（伪合法：不检查自己的王是否被将军）。
// 只读，不改动 g。
func Generate(g *Grid, pc Piece) []Move {
	var moves []Move
	switch pc.Kind {
	case Pawn:
		genPawnMoves(g, pc, &moves)
	case Knight:
		genKnightMoves(g, pc, &moves)
	case Bishop:
		genBishopMoves(g, pc, &moves)
	case Rook:
		genRookMoves(g, pc, &moves)
	case Queen:
		genQueenMoves(g, pc, &moves)
	case King:
		genKingMoves(g, pc, &moves)
	}
	return moves
}

// GenerateAnywhere offers every square of g. Development aid only.
func GenerateAnywhere(g *Grid) []Move {
	moves := make([]Move, 0, g.Files()*g.Ranks())
	for f := 0; f < g.Files(); f++ {
		for r := 0; r < g.Ranks(); r++ {
			moves = append(moves, Move{To: Loc{File: f, Rank: r}})
		}
	}
	return moves
}
