package varchess

// Piece 是格子上的占用者：真实棋子、空位标记或盘外哨兵。
// 按值存放在 Grid 里，改变身份时整体替换。
type Piece struct {
	Kind   Kind
	Side   Side
	Loc    Loc
	Symbol string

	Moved       bool
	DoubleMoved bool // 只对兵有意义
}

func NewPiece(kind Kind, side Side, loc Loc, symbol string) Piece {
	return Piece{Kind: kind, Side: side, Loc: loc, Symbol: symbol}
}

// NewEmpty returns the empty marker for loc.
func NewEmpty(loc Loc) Piece {
	return Piece{Kind: Empty, Side: NoSide, Loc: loc}
}

var offBoardPiece = Piece{Kind: OutOfBounds, Side: NoSide, Loc: Loc{File: -1, Rank: -1}}

func (p Piece) IsEmpty() bool { return p.Kind == Empty }

func (p Piece) OnBoard() bool { return p.Kind != OutOfBounds }

// IsEnemyOf reports whether q is a real piece of the other side.
func (p Piece) IsEnemyOf(q Piece) bool {
	return p.Side != NoSide && q.Side != NoSide && p.Side != q.Side
}

// ChangeTo returns p with a new identity; zero arguments keep the current value.
func (p Piece) ChangeTo(kind Kind, side Side, symbol string) Piece {
	if kind != Empty {
		p.Kind = kind
	}
	if side != NoSide {
		p.Side = side
	}
	if symbol != "" {
		p.Symbol = symbol
	}
	return p
}
