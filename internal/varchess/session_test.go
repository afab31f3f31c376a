package varchess

import "testing"

func TestApplyLeavesEmptyMarkerAndMarksMoved(t *testing.T) {
	s := NewStandardSession()
	if sig := play(t, s, sq("g1"), sq("f3")); sig != Proceed {
		t.Fatalf("signal=%v want proceed", sig)
	}
	origin := s.Grid().PieceAt(sq("g1"))
	if origin.Kind != Empty || origin.Loc != sq("g1") {
		t.Fatalf("origin holds %+v, want empty marker at g1", origin)
	}
	n := s.Grid().PieceAt(sq("f3"))
	if n.Kind != Knight || n.Loc != sq("f3") || !n.Moved {
		t.Fatalf("knight after move: %+v", n)
	}
	if s.Turn() != Black {
		t.Fatalf("turn=%v want black", s.Turn())
	}
}

func TestCaptureOverwritesTarget(t *testing.T) {
	s := NewStandardSession()
	play(t, s, sq("e2"), sq("e4"))
	play(t, s, sq("d7"), sq("d5"))
	play(t, s, sq("e4"), sq("d5"))
	got := s.Grid().PieceAt(sq("d5"))
	if got.Kind != Pawn || got.Side != White {
		t.Fatalf("d5 holds %+v after capture", got)
	}
}

func TestDoubleMovedClearedAfterOneReply(t *testing.T) {
	s := NewStandardSession()
	play(t, s, sq("e2"), sq("e4"))
	if !s.Grid().PieceAt(sq("e4")).DoubleMoved {
		t.Fatalf("double-step did not set DoubleMoved")
	}
	play(t, s, sq("a7"), sq("a6"))
	if s.Grid().PieceAt(sq("e4")).DoubleMoved {
		t.Fatalf("DoubleMoved survived the opponent's reply")
	}
}

func TestDoubleMovedClearedWhicheverPieceReplies(t *testing.T) {
	s := NewStandardSession()
	play(t, s, sq("d2"), sq("d4"))
	play(t, s, sq("b8"), sq("c6"))
	if s.Grid().PieceAt(sq("d4")).DoubleMoved {
		t.Fatalf("knight reply did not clear DoubleMoved")
	}
	play(t, s, sq("a2"), sq("a4"))
	if !s.Grid().PieceAt(sq("a4")).DoubleMoved {
		t.Fatalf("new double-step not flagged")
	}
}

func TestEnPassantOfferedForOnePlyOnly(t *testing.T) {
	setup := func() *Session {
		s := NewStandardSession()
		vacate(s, at(3, 6))
		pawn := NewPiece(Pawn, Black, at(3, 3), "")
		pawn.Moved = true
		s.Grid().Place(pawn.Loc, pawn)
		play(t, s, at(4, 1), at(4, 3))
		return s
	}

	t.Run("Offered", func(t *testing.T) {
		s := setup()
		m, ok := findMove(s.Moves(s.Grid().PieceAt(at(3, 3))), at(4, 2))
		if !ok || m.Tag != TagEnPassant {
			t.Fatalf("en passant to (4,2) not offered: %+v ok=%v", m, ok)
		}
	})

	t.Run("Applied", func(t *testing.T) {
		s := setup()
		play(t, s, at(3, 3), at(4, 2))
		if got := s.Grid().PieceAt(at(4, 3)); got.Kind != Empty {
			t.Fatalf("captured pawn still on (4,3): %+v", got)
		}
		if got := s.Grid().PieceAt(at(4, 2)); got.Kind != Pawn || got.Side != Black {
			t.Fatalf("capturing pawn not on (4,2): %+v", got)
		}
		if got := s.Grid().PieceAt(at(3, 3)); got.Kind != Empty {
			t.Fatalf("origin not vacated: %+v", got)
		}
	})

	t.Run("ExpiresAfterAnyMove", func(t *testing.T) {
		s := setup()
		play(t, s, sq("h7"), sq("h6"))
		play(t, s, sq("a2"), sq("a3"))
		for _, m := range s.Moves(s.Grid().PieceAt(at(3, 3))) {
			if m.Tag == TagEnPassant {
				t.Fatalf("en passant still offered: %+v", m)
			}
		}
	})

	t.Run("OnlyAgainstTheDoubleSteppedPawn", func(t *testing.T) {
		s := NewStandardSession()
		vacate(s, at(3, 6))
		pawn := NewPiece(Pawn, Black, at(3, 3), "")
		pawn.Moved = true
		s.Grid().Place(pawn.Loc, pawn)
		play(t, s, at(2, 1), at(2, 2))
		play(t, s, sq("h7"), sq("h6"))
		play(t, s, at(2, 2), at(2, 3))
		for _, m := range s.Moves(s.Grid().PieceAt(at(3, 3))) {
			if m.Tag == TagEnPassant {
				t.Fatalf("en passant offered against a single-step pawn: %+v", m)
			}
		}
	})
}

func TestCastleRelocatesKingAndRook(t *testing.T) {
	tests := []struct {
		name           string
		clear          []Loc
		kingTo         Loc
		rookFrom, rook Loc
	}{
		{name: "FarFile", clear: []Loc{at(5, 0), at(6, 0)}, kingTo: at(6, 0), rookFrom: at(7, 0), rook: at(5, 0)},
		{name: "FileZero", clear: []Loc{at(1, 0), at(2, 0), at(3, 0)}, kingTo: at(2, 0), rookFrom: at(0, 0), rook: at(3, 0)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := NewStandardSession()
			vacate(s, tt.clear...)
			m, ok := findMove(s.Moves(s.Grid().PieceAt(at(4, 0))), tt.kingTo)
			if !ok || m.Tag != TagCastle {
				t.Fatalf("castle to %v not offered", tt.kingTo)
			}
			if sig := s.Play(s.Grid().PieceAt(at(4, 0)), m); sig != Proceed {
				t.Fatalf("signal=%v want proceed", sig)
			}
			k := s.Grid().PieceAt(tt.kingTo)
			r := s.Grid().PieceAt(tt.rook)
			if k.Kind != King || !k.Moved || k.Loc != tt.kingTo {
				t.Fatalf("king after castle: %+v", k)
			}
			if r.Kind != Rook || !r.Moved || r.Loc != tt.rook {
				t.Fatalf("rook after castle: %+v", r)
			}
			for _, l := range []Loc{at(4, 0), tt.rookFrom} {
				if !s.Grid().SquareAt(l).IsEmpty() {
					t.Fatalf("%v not vacated", l)
				}
			}
			if s.State() != AwaitingMove || s.Turn() != Black {
				t.Fatalf("state=%v turn=%v after castle", s.State(), s.Turn())
			}
		})
	}
}

func TestPromotionStallsTurnUntilChoice(t *testing.T) {
	s := NewSession(8, 8, White)
	pawn := NewPiece(Pawn, White, at(0, 6), "")
	pawn.Moved = true
	s.Grid().Place(pawn.Loc, pawn)
	put(s, Pawn, Black, at(7, 1))

	sig := play(t, s, at(0, 6), at(0, 7))
	if sig != PromotionPending {
		t.Fatalf("signal=%v want promotion-pending", sig)
	}
	if s.State() != AwaitingPromotionChoice || s.Turn() != White {
		t.Fatalf("state=%v turn=%v, want stalled on white", s.State(), s.Turn())
	}
	p, ok := s.Pending()
	if !ok || p.Loc != at(0, 7) || p.Side != White {
		t.Fatalf("pending=%+v ok=%v", p, ok)
	}

	choices := PromotionChoices(sig)
	wantKinds := []Kind{Knight, Bishop, Rook, Queen}
	if len(choices) != len(wantKinds) {
		t.Fatalf("got %d choices, want %d", len(choices), len(wantKinds))
	}
	for i, k := range wantKinds {
		if choices[i].Kind != k || choices[i].Symbol != k.Symbol() {
			t.Fatalf("choice %d: %+v", i, choices[i])
		}
	}

	if !s.Promote(Queen, "") {
		t.Fatalf("promote refused with a pending pawn")
	}
	q := s.Grid().PieceAt(at(0, 7))
	if q.Kind != Queen || q.Side != White || q.Symbol != "Q" || q.Loc != at(0, 7) {
		t.Fatalf("promoted piece: %+v", q)
	}
	if s.State() != AwaitingMove || s.Turn() != Black {
		t.Fatalf("state=%v turn=%v after promotion", s.State(), s.Turn())
	}

	if sig := play(t, s, at(7, 1), at(7, 0)); sig != PromotionPending {
		t.Fatalf("black pawn on rank 0: signal=%v", sig)
	}
}

func TestPromotionOnlyForPawns(t *testing.T) {
	s := NewSession(8, 8, White)
	put(s, Rook, White, at(0, 6))
	if sig := play(t, s, at(0, 6), at(0, 7)); sig != Proceed {
		t.Fatalf("rook on last rank: signal=%v", sig)
	}
	if PromotionChoices(Proceed) != nil {
		t.Fatalf("choices offered for proceed")
	}
	if s.Promote(Queen, "Q") {
		t.Fatalf("promote accepted without a pending pawn")
	}
}

func TestSideToMoveOrientation(t *testing.T) {
	s := NewStandardSession()
	if !s.SideToMoveIsWhite() {
		t.Fatalf("white should move first")
	}
	s.AdvanceTurn()
	if s.SideToMoveIsWhite() {
		t.Fatalf("turn did not toggle")
	}
	s.AdvanceTurn()
	if s.Turn() != White {
		t.Fatalf("turn=%v after two toggles", s.Turn())
	}
}

func TestPlacePiecesAndInit(t *testing.T) {
	s := NewSession(3, 2, White)
	setup := Setup{
		{{Side: White, Kind: King, Symbol: "K"}, {}},
		{{}, {}},
		{{}, {Side: Black, Kind: Pawn}},
	}
	if err := s.PlacePieces(setup); err != nil {
		t.Fatalf("place pieces: %v", err)
	}
	s.Init()
	k := s.Grid().PieceAt(at(0, 0))
	if k.Kind != King || k.Side != White || k.Loc != at(0, 0) || k.Moved {
		t.Fatalf("king: %+v", k)
	}
	p := s.Grid().PieceAt(at(2, 1))
	if p.Kind != Pawn || p.Side != Black || p.Loc != at(2, 1) || p.DoubleMoved {
		t.Fatalf("pawn: %+v", p)
	}
	if e := s.Grid().PieceAt(at(1, 1)); e.Kind != Empty || e.Loc != at(1, 1) {
		t.Fatalf("empty: %+v", e)
	}

	if err := s.PlacePieces(Setup{{{}}}); err != ErrBadSetup {
		t.Fatalf("err=%v want ErrBadSetup", err)
	}
}
