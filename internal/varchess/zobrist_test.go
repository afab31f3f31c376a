package varchess

import "testing"

func TestHashMatchesDecodedCopy(t *testing.T) {
	pos := NewStandardSession()
	decoded, err := DecodeSession(pos.Encode())
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if pos.Hash() != decoded.Hash() {
		t.Fatalf("hash mismatch: got=%d want=%d", decoded.Hash(), pos.Hash())
	}
}

func TestHashTracksPositionAndTurn(t *testing.T) {
	pos := NewStandardSession()
	start := pos.Hash()

	pos.AdvanceTurn()
	if pos.Hash() == start {
		t.Fatalf("side to move not hashed")
	}
	pos.AdvanceTurn()

	play(t, pos, sq("g1"), sq("f3"))
	if pos.Hash() == start {
		t.Fatalf("hash unchanged after a move")
	}
	play(t, pos, sq("g8"), sq("f6"))
	play(t, pos, sq("f3"), sq("g1"))
	play(t, pos, sq("f6"), sq("g8"))
	if pos.Hash() != start {
		t.Fatalf("transposed back to start but hash differs: got=%d want=%d", pos.Hash(), start)
	}
}

func TestHashHandlesLargeGrids(t *testing.T) {
	s := NewSession(20, 20, White)
	put(s, Queen, White, at(19, 19))
	a := s.Hash()
	put(s, Queen, White, at(18, 19))
	vacate(s, at(19, 19))
	if s.Hash() == a || a == 0 {
		t.Fatalf("off-table squares not hashed distinctly: %d vs %d", a, s.Hash())
	}
}
