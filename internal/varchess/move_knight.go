package varchess

var knightOffsets = [8][2]int{
	{+2, +1}, {+1, +2},
	{-2, +1}, {-1, +2},
	{+2, -1}, {+1, -2},
	{-2, -1}, {-1, -2},
}

func genKnightMoves(g *Grid, pc Piece, moves *[]Move) {
	for _, o := range knightOffsets {
		to := pc.Loc.Add(o[0], o[1])
		if !g.InBounds(to) {
			continue
		}
		if g.PieceAt(to).Side != pc.Side {
			*moves = append(*moves, Move{To: to})
		}
	}
}
