package varchess

// 兵的前进方向：白 +1，黑 -1
func pawnDir(side Side) int {
	switch side {
	case White:
		return +1
	case Black:
		return -1
	default:
		return 0
	}
}

// farRank 是兵升变的底线
func farRank(side Side, ranks int) int {
	if side == Black {
		return 0
	}
	return ranks - 1
}

func genPawnMoves(g *Grid, pc Piece, moves *[]Move) {
	dir := pawnDir(pc.Side)
	if dir == 0 {
		return
	}

	// 1. 前进一格，只能落空格；再前一格为双步
	one := pc.Loc.Add(0, dir)
	if g.PieceAt(one).IsEmpty() {
		*moves = append(*moves, Move{To: one})
		two := pc.Loc.Add(0, 2*dir)
		if !pc.Moved && g.PieceAt(two).IsEmpty() {
			*moves = append(*moves, Move{To: two, Tag: TagDoubleStep})
		}
	}

	// 2. 斜前方吃子
	for _, df := range []int{+1, -1} {
		to := pc.Loc.Add(df, dir)
		if pc.IsEnemyOf(g.PieceAt(to)) {
			*moves = append(*moves, Move{To: to})
		}
	}

	// 3. 吃过路兵：旁边是刚双步的敌兵
	for _, df := range []int{+1, -1} {
		beside := g.PieceAt(pc.Loc.Add(df, 0))
		if beside.Kind == Pawn && beside.DoubleMoved && pc.IsEnemyOf(beside) {
			*moves = append(*moves, Move{To: pc.Loc.Add(df, dir), Tag: TagEnPassant})
		}
	}
}
