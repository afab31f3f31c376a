package varchess

type State int8

const (
	AwaitingMove State = iota
	AwaitingPromotionChoice
)

func (s State) String() string {
	if s == AwaitingPromotionChoice {
		return "awaiting_promotion"
	}
	return "awaiting_move"
}

// Pending 记录等待升变选择的兵
type Pending struct {
	Loc  Loc
	Side Side
}

// Session = 棋盘 + 轮到谁走 + 是否卡在升变选择上。
// 单线程使用；并发访问由上层加锁。
type Session struct {
	grid    *Grid
	turn    Side
	pending *Pending

	// AnyDestination 打开后每个棋子都能走到任意格，仅供调试。
	AnyDestination bool
}

func NewSession(files, ranks int, first Side) *Session {
	if first == NoSide {
		first = White
	}
	return &Session{grid: NewGrid(files, ranks), turn: first}
}

func (s *Session) Grid() *Grid { return s.grid }
func (s *Session) Turn() Side  { return s.turn }

func (s *Session) State() State {
	if s.pending != nil {
		return AwaitingPromotionChoice
	}
	return AwaitingMove
}

// Pending returns the pawn awaiting a promotion choice, if any.
func (s *Session) Pending() (Pending, bool) {
	if s.pending == nil {
		return Pending{}, false
	}
	return *s.pending, true
}

// SideToMoveIsWhite 用于前端决定棋盘朝向
func (s *Session) SideToMoveIsWhite() bool { return s.turn == White }

// Moves 是 Generate 的会话版本，尊重 AnyDestination。
func (s *Session) Moves(pc Piece) []Move {
	if s.AnyDestination {
		return GenerateAnywhere(s.grid)
	}
	return Generate(s.grid, pc)
}

// MovesForSide 收集 side 全部棋子的候选走法，key 是棋子所在格。
func (s *Session) MovesForSide(side Side) map[Loc][]Move {
	out := make(map[Loc][]Move)
	s.grid.Each(func(l Loc, sq *Square) {
		pc := sq.Piece()
		if pc.Side != side || pc.IsEmpty() {
			return
		}
		if ms := s.Moves(pc); len(ms) > 0 {
			out[l] = ms
		}
	})
	return out
}

// Apply 执行一步由 Moves/Generate 产生的候选走法。这里默认传进来的就是合法招。
func (s *Session) Apply(p Piece, m Move) Signal {
	g := s.grid
	pc := g.PieceAt(p.Loc)
	if !pc.OnBoard() {
		return Proceed
	}
	from := pc.Loc
	g.Place(from, NewEmpty(from))

	switch m.Tag {
	case TagDoubleStep:
		pc.DoubleMoved = true
	case TagEnPassant:
		behind := m.To.Add(0, -pawnDir(pc.Side))
		g.Place(behind, NewEmpty(behind))
	case TagCastle:
		rook, rookTo := castleRook(g, from, m.To)
		g.relocate(rook, rookTo)
	}

	pc = g.relocate(pc, m.To)

	// 过路兵只在下一手有效：清掉对方所有兵的双步标记
	g.Each(func(_ Loc, sq *Square) {
		if sq.piece.Kind == Pawn && sq.piece.Side != s.turn {
			sq.piece.DoubleMoved = false
		}
	})

	if pc.Kind == Pawn && pc.Loc.Rank == farRank(pc.Side, g.Ranks()) {
		s.pending = &Pending{Loc: pc.Loc, Side: pc.Side}
		return PromotionPending
	}
	return Proceed
}

// AdvanceTurn 换边并清除升变等待
func (s *Session) AdvanceTurn() {
	s.turn = s.turn.Opposite()
	s.pending = nil
}

// Play applies m and advances the turn unless a promotion choice is now pending.
func (s *Session) Play(p Piece, m Move) Signal {
	sig := s.Apply(p, m)
	if sig == Proceed {
		s.AdvanceTurn()
	}
	return sig
}

// Choice is one entry of the promotion menu.
type Choice struct {
	Kind   Kind
	Symbol string
}

var promotionChoices = []Choice{
	{Kind: Knight, Symbol: "N"},
	{Kind: Bishop, Symbol: "B"},
	{Kind: Rook, Symbol: "R"},
	{Kind: Queen, Symbol: "Q"},
}

func PromotionChoices(sig Signal) []Choice {
	if sig != PromotionPending {
		return nil
	}
	return append([]Choice(nil), promotionChoices...)
}

// Promote 把等待中的兵换成 kind 并换边。没有等待中的升变时返回 false。
func (s *Session) Promote(kind Kind, symbol string) bool {
	if s.pending == nil {
		return false
	}
	if symbol == "" {
		symbol = kind.Symbol()
	}
	loc := s.pending.Loc
	s.grid.Place(loc, s.grid.PieceAt(loc).ChangeTo(kind, NoSide, symbol))
	s.AdvanceTurn()
	return true
}
