package varchess

type Color int8

const (
	Dark Color = iota
	Light
)

func (c Color) String() string {
	if c == Light {
		return "w"
	}
	return "b"
}

// colorOf: (0,0) 是深色，按 file+rank 奇偶交替
func colorOf(file, rank int) Color {
	if (file+rank)%2 == 0 {
		return Dark
	}
	return Light
}

type Square struct {
	color Color
	piece Piece
	oob   bool
}

func (sq *Square) Color() Color  { return sq.color }
func (sq *Square) Piece() Piece  { return sq.piece }
func (sq *Square) IsEmpty() bool { return sq.piece.Kind == Empty }

// OnBoard is false only for the shared out-of-bounds square.
func (sq *Square) OnBoard() bool { return !sq.oob }

var outOfBounds = &Square{piece: offBoardPiece, oob: true}

// OutOfBoundsSquare returns the sentinel square handed out for every off-grid coordinate.
func OutOfBoundsSquare() *Square { return outOfBounds }

// Grid 是 files × ranks 的棋盘，尺寸构造后不变。squares[file][rank]
type Grid struct {
	files, ranks int
	squares      [][]Square
}

func NewGrid(files, ranks int) *Grid {
	if files < 0 {
		files = 0
	}
	if ranks < 0 {
		ranks = 0
	}
	g := &Grid{files: files, ranks: ranks, squares: make([][]Square, files)}
	for f := 0; f < files; f++ {
		col := make([]Square, ranks)
		for r := 0; r < ranks; r++ {
			loc := Loc{File: f, Rank: r}
			col[r] = Square{color: colorOf(f, r), piece: NewEmpty(loc)}
		}
		g.squares[f] = col
	}
	return g
}

func (g *Grid) Files() int { return g.files }
func (g *Grid) Ranks() int { return g.ranks }

func (g *Grid) InBounds(l Loc) bool {
	return l.File >= 0 && l.File < g.files && l.Rank >= 0 && l.Rank < g.ranks
}

// SquareAt never fails: off-grid coordinates get the sentinel square.
func (g *Grid) SquareAt(l Loc) *Square {
	if !g.InBounds(l) {
		return outOfBounds
	}
	return &g.squares[l.File][l.Rank]
}

func (g *Grid) PieceAt(l Loc) Piece {
	return g.SquareAt(l).piece
}

// Place 覆盖 l 上的占用者；盘外坐标直接忽略。
// 不检查 pc.Loc 是否等于 l，由调用方保证。
func (g *Grid) Place(l Loc, pc Piece) {
	if !g.InBounds(l) {
		return
	}
	g.squares[l.File][l.Rank].piece = pc
}

// Each visits every on-grid square, file-major.
func (g *Grid) Each(fn func(l Loc, sq *Square)) {
	for f := 0; f < g.files; f++ {
		for r := 0; r < g.ranks; r++ {
			fn(Loc{File: f, Rank: r}, &g.squares[f][r])
		}
	}
}

// relocate 是走子和易位共用的底层原语：清空原格、落到 to、标记已动。
func (g *Grid) relocate(pc Piece, to Loc) Piece {
	g.Place(pc.Loc, NewEmpty(pc.Loc))
	pc.Loc = to
	pc.Moved = true
	g.Place(to, pc)
	return pc
}
