package varchess

import "fmt"

type Side int8

const (
	NoSide Side = iota
	White       // first mover
	Black       // second mover
)

func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoSide
	}
}

func (s Side) String() string {
	switch s {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return ""
	}
}

type Kind int8

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	OutOfBounds // 盘外哨兵
)

var kindNames = [...]string{
	Empty:       "empty",
	Pawn:        "pawn",
	Knight:      "knight",
	Bishop:      "bishop",
	Rook:        "rook",
	Queen:       "queen",
	King:        "king",
	OutOfBounds: "oob",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", k)
	}
	return kindNames[k]
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return Empty, false
}

// Symbol is the default display symbol (pawns have none).
func (k Kind) Symbol() string {
	switch k {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Loc is a (file, rank) coordinate. It may lie off the grid.
type Loc struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (l Loc) Add(df, dr int) Loc { return Loc{File: l.File + df, Rank: l.Rank + dr} }

func (l Loc) String() string { return fmt.Sprintf("(%d,%d)", l.File, l.Rank) }

type Tag int8

const (
	TagNone Tag = iota
	TagDoubleStep
	TagEnPassant
	TagCastle
)

func (t Tag) String() string {
	switch t {
	case TagDoubleStep:
		return "double-step"
	case TagEnPassant:
		return "en-passant"
	case TagCastle:
		return "castle"
	default:
		return ""
	}
}

// Move 只由 Generate 产生，Apply 不会再校验
type Move struct {
	To  Loc
	Tag Tag
}

type Signal int8

const (
	Proceed Signal = iota
	PromotionPending
)

func (s Signal) String() string {
	if s == PromotionPending {
		return "promotion-pending"
	}
	return "proceed"
}
