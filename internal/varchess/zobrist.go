package varchess

import "sync"

const (
	zobristKinds      = 7   // Kind 范围 [1..6]，0 保留空位不用
	zobristMaxSquares = 256 // 超过这个尺寸的棋盘按坐标现算
)

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][zobristMaxSquares]uint64
	zobristSide   uint64
)

func splitmix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			return splitmix(seed)
		}

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < zobristMaxSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		zobristSide = next()
	})
}

func pieceHashKey(pc Piece, sq int) uint64 {
	var sideIdx int
	switch pc.Side {
	case White:
		sideIdx = 0
	case Black:
		sideIdx = 1
	default:
		return 0
	}
	k := int(pc.Kind)
	if k <= 0 || k >= zobristKinds || sq < 0 {
		return 0
	}
	if sq < zobristMaxSquares {
		return zobristPieces[sideIdx][k][sq]
	}
	return splitmix(uint64(sq)<<8 | uint64(sideIdx)<<4 | uint64(k))
}

// Hash 全量计算当前局面的 Zobrist 哈希（棋子 + 轮到谁走）。
func (s *Session) Hash() uint64 {
	initZobrist()

	g := s.grid
	var h uint64
	g.Each(func(l Loc, sq *Square) {
		pc := sq.Piece()
		if pc.IsEmpty() {
			return
		}
		h ^= pieceHashKey(pc, l.Rank*g.Files()+l.File)
	})
	if s.turn == Black {
		h ^= zobristSide
	}
	return h
}
