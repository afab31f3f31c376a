package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"varchess/internal/server/game"
	"varchess/internal/varchess"
)

const maxJSONBodyBytes int64 = 1 << 20

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games *game.Manager
}

func NewHandler(m *game.Manager) *Handler {
	return &Handler{games: m}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/games" {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, GamesResponse{Games: h.games.List()})
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/moves":
		h.handleMoves(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/promote":
		h.handlePromote(w, r)
	case "/api/delete_game":
		h.handleDelete(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g := h.games.NewGame()
	log.Printf("new game %s", g.ID)
	h.writeState(w, g.ID, "")
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.writeState(w, req.GameID, "")
}

func (h *Handler) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req MovesRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	moves, err := h.games.Moves(req.GameID, req.From.loc())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, MovesResponse{From: req.From, Moves: movesToDTO(moves)})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	sig, err := h.games.Play(req.GameID, req.From.loc(), req.To.loc())
	if err != nil {
		writeError(w, err)
		return
	}
	if sig == varchess.PromotionPending {
		log.Printf("game %s: %v -> %v waits for promotion", req.GameID, req.From.loc(), req.To.loc())
	}
	h.writeState(w, req.GameID, sig.String())
}

func (h *Handler) handlePromote(w http.ResponseWriter, r *http.Request) {
	var req PromoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	kind, ok := varchess.ParseKind(req.Kind)
	if !ok {
		http.Error(w, "unknown kind", http.StatusBadRequest)
		return
	}
	if err := h.games.Promote(req.GameID, kind); err != nil {
		writeError(w, err)
		return
	}
	h.writeState(w, req.GameID, "")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var req GameRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.games.Delete(req.GameID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeState(w http.ResponseWriter, id, signal string) {
	var resp StateResponse
	err := h.games.View(id, func(g *game.GameState) error {
		resp = stateFromGame(g)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	resp.Signal = signal
	writeJSON(w, resp)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrAwaitingPromotion), errors.Is(err, game.ErrNoPromotionPending):
		return http.StatusConflict
	case errors.Is(err, game.ErrNotYourPiece), errors.Is(err, game.ErrIllegalMove), errors.Is(err, game.ErrInvalidPromotion):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	code := statusFor(err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()}); err != nil {
		log.Println("writeError error:", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
