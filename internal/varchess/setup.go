package varchess

import "errors"

var ErrBadSetup = errors.New("setup does not match grid size")

// Cell 是开局描述里的一格；零值表示空位
type Cell struct {
	Side   Side   `json:"side"`
	Kind   Kind   `json:"kind"`
	Symbol string `json:"symbol"`
}

func (c Cell) IsEmpty() bool { return c.Kind == Empty || c.Kind == OutOfBounds }

// Setup 按 [file][rank] 索引
type Setup [][]Cell

// PlacePieces 遍历每个坐标，放空位或按描述构造的棋子。
// 不校验 Cell 的 side/kind 是否齐全。
func (s *Session) PlacePieces(setup Setup) error {
	g := s.grid
	if len(setup) != g.Files() {
		return ErrBadSetup
	}
	for f := 0; f < g.Files(); f++ {
		if len(setup[f]) != g.Ranks() {
			return ErrBadSetup
		}
		for r := 0; r < g.Ranks(); r++ {
			loc := Loc{File: f, Rank: r}
			c := setup[f][r]
			if c.IsEmpty() {
				g.Place(loc, NewEmpty(loc))
				continue
			}
			g.Place(loc, NewPiece(c.Kind, c.Side, loc, c.Symbol))
		}
	}
	return nil
}

// Init 把所有棋子标记为未动过
func (s *Session) Init() {
	s.grid.Each(func(_ Loc, sq *Square) {
		sq.piece.Moved = false
		sq.piece.DoubleMoved = false
	})
}

var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StandardSetup 是标准国际象棋 8×8 开局
func StandardSetup() Setup {
	setup := make(Setup, 8)
	for f := 0; f < 8; f++ {
		col := make([]Cell, 8)
		k := backRank[f]
		col[0] = Cell{Side: White, Kind: k, Symbol: k.Symbol()}
		col[1] = Cell{Side: White, Kind: Pawn}
		col[6] = Cell{Side: Black, Kind: Pawn}
		col[7] = Cell{Side: Black, Kind: k, Symbol: k.Symbol()}
		setup[f] = col
	}
	return setup
}

func NewStandardSession() *Session {
	s := NewSession(8, 8, White)
	if err := s.PlacePieces(StandardSetup()); err != nil {
		panic(err)
	}
	s.Init()
	return s
}
