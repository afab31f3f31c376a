package varchess

import "testing"

func at(f, r int) Loc { return Loc{File: f, Rank: r} }

// sq 把 "e2" 这样的坐标转成 Loc
func sq(name string) Loc {
	return Loc{File: int(name[0] - 'a'), Rank: int(name[1] - '1')}
}

func put(s *Session, kind Kind, side Side, l Loc) {
	s.Grid().Place(l, NewPiece(kind, side, l, kind.Symbol()))
}

func vacate(s *Session, locs ...Loc) {
	for _, l := range locs {
		s.Grid().Place(l, NewEmpty(l))
	}
}

func findMove(moves []Move, to Loc) (Move, bool) {
	for _, m := range moves {
		if m.To == to {
			return m, true
		}
	}
	return Move{}, false
}

func destinations(moves []Move) map[Loc]Tag {
	out := make(map[Loc]Tag, len(moves))
	for _, m := range moves {
		out[m.To] = m.Tag
	}
	return out
}

func play(t *testing.T, s *Session, from, to Loc) Signal {
	t.Helper()
	pc := s.Grid().PieceAt(from)
	m, ok := findMove(s.Moves(pc), to)
	if !ok {
		t.Fatalf("no candidate %v -> %v for %v %v", from, to, pc.Side, pc.Kind)
	}
	return s.Play(pc, m)
}
