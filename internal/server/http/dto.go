package httpserver

import (
	"strconv"

	"varchess/internal/render"
	"varchess/internal/server/game"
	"varchess/internal/varchess"
)

type LocDTO struct {
	File int `json:"file"`
	Rank int `json:"rank"`
}

func (l LocDTO) loc() varchess.Loc { return varchess.Loc{File: l.File, Rank: l.Rank} }

func locToDTO(l varchess.Loc) LocDTO { return LocDTO{File: l.File, Rank: l.Rank} }

// 前端用的招法结构
type MoveDTO struct {
	To  LocDTO `json:"to"`
	Tag string `json:"tag,omitempty"` // "double-step" / "en-passant" / "castle"
}

func movesToDTO(ms []varchess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = MoveDTO{To: locToDTO(m.To), Tag: m.Tag.String()}
	}
	return out
}

type PieceDTO struct {
	Loc    LocDTO `json:"loc"`
	Kind   string `json:"kind"`
	Side   string `json:"side"`
	Symbol string `json:"symbol,omitempty"`
	Asset  string `json:"asset"`
	Moved  bool   `json:"moved"`
}

type ChoiceDTO struct {
	Kind   string `json:"kind"`
	Symbol string `json:"symbol"`
	Asset  string `json:"asset"`
}

// StateResponse 是 new_game / state / play / promote 的统一返回
type StateResponse struct {
	GameID   string      `json:"game_id"`
	Files    int         `json:"files"`
	Ranks    int         `json:"ranks"`
	Position string      `json:"position"` // Encode() 的输出
	Hash     string      `json:"hash"`
	ToMove   string      `json:"to_move"`  // "w" / "b"
	Flipped  bool        `json:"flipped"`  // 白方走时为 true
	Status   string      `json:"status"`   // "awaiting_move" / "awaiting_promotion"
	Signal   string      `json:"signal,omitempty"`
	Pending  *LocDTO     `json:"pending,omitempty"`
	Choices  []ChoiceDTO `json:"choices,omitempty"`
	Pieces   []PieceDTO  `json:"pieces"`
	Plies    int         `json:"plies"`
	Movable  []LocDTO    `json:"movable"`  // 轮到的一方有候选走法的棋子
}

func stateFromGame(g *game.GameState) StateResponse {
	s := g.Session
	grid := s.Grid()
	resp := StateResponse{
		GameID:   g.ID,
		Files:    grid.Files(),
		Ranks:    grid.Ranks(),
		Position: s.Encode(),
		Hash:     strconv.FormatUint(s.Hash(), 16),
		ToMove:   s.Turn().String(),
		Flipped:  s.SideToMoveIsWhite(),
		Status:   s.State().String(),
		Plies:    g.Plies,
		Pieces:   []PieceDTO{},
		Movable:  []LocDTO{},
	}
	grid.Each(func(l varchess.Loc, sq *varchess.Square) {
		pc := sq.Piece()
		if pc.IsEmpty() {
			return
		}
		resp.Pieces = append(resp.Pieces, PieceDTO{
			Loc:    locToDTO(l),
			Kind:   pc.Kind.String(),
			Side:   pc.Side.String(),
			Symbol: pc.Symbol,
			Asset:  render.AssetPath(pc),
			Moved:  pc.Moved,
		})
	})
	if p, ok := s.Pending(); ok {
		l := locToDTO(p.Loc)
		resp.Pending = &l
		for _, c := range varchess.PromotionChoices(varchess.PromotionPending) {
			resp.Choices = append(resp.Choices, ChoiceDTO{
				Kind:   c.Kind.String(),
				Symbol: c.Symbol,
				Asset:  render.AssetPath(varchess.NewPiece(c.Kind, p.Side, p.Loc, c.Symbol)),
			})
		}
		return resp
	}
	movable := s.MovesForSide(s.Turn())
	grid.Each(func(l varchess.Loc, _ *varchess.Square) {
		if _, ok := movable[l]; ok {
			resp.Movable = append(resp.Movable, locToDTO(l))
		}
	})
	return resp
}

type GameRequest struct {
	GameID string `json:"game_id"`
}

type MovesRequest struct {
	GameID string `json:"game_id"`
	From   LocDTO `json:"from"`
}

type MovesResponse struct {
	From  LocDTO    `json:"from"`
	Moves []MoveDTO `json:"moves"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	From   LocDTO `json:"from"`
	To     LocDTO `json:"to"`
}

type PromoteRequest struct {
	GameID string `json:"game_id"`
	Kind   string `json:"kind"` // "knight" / "bishop" / "rook" / "queen"
}

type GamesResponse struct {
	Games []string `json:"games"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
