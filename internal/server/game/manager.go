package game

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"varchess/internal/varchess"
)

// Manager 是内存里的对局表。varchess 本身不做校验，这里是面向不可信调用方的一层。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	newSession func() *varchess.Session
}

// NewManager uses newSession to build every new game; nil means the standard 8×8 setup.
func NewManager(newSession func() *varchess.Session) *Manager {
	if newSession == nil {
		newSession = varchess.NewStandardSession
	}
	return &Manager{games: make(map[string]*GameState), newSession: newSession}
}

func (m *Manager) NewGame() *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	now := time.Now()
	g := &GameState{
		ID:        id,
		Session:   m.newSession(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[id] = g
	return g
}

// List returns all game IDs in sorted order.
func (m *Manager) List() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := maps.Keys(m.games)
	slices.Sort(ids)
	return ids
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

// View 在读锁下调用 fn；fn 不能修改对局。
func (m *Manager) View(id string, fn func(g *GameState) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

// Moves returns the candidates of the side-to-move piece on from.
func (m *Manager) Moves(id string, from varchess.Loc) ([]varchess.Move, error) {
	var out []varchess.Move
	err := m.View(id, func(g *GameState) error {
		if g.Session.State() == varchess.AwaitingPromotionChoice {
			return ErrAwaitingPromotion
		}
		pc, err := ownPiece(g.Session, from)
		if err != nil {
			return err
		}
		out = g.Session.Moves(pc)
		return nil
	})
	return out, err
}

// Play 校验走子方和候选走法后执行；返回 Proceed 时已经换边。
func (m *Manager) Play(id string, from, to varchess.Loc) (varchess.Signal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return varchess.Proceed, ErrNotFound
	}
	s := g.Session
	if s.State() == varchess.AwaitingPromotionChoice {
		return varchess.Proceed, ErrAwaitingPromotion
	}
	pc, err := ownPiece(s, from)
	if err != nil {
		return varchess.Proceed, err
	}

	var found *varchess.Move
	moves := s.Moves(pc)
	for i := range moves {
		if moves[i].To == to {
			found = &moves[i]
			break
		}
	}
	if found == nil {
		return varchess.Proceed, fmt.Errorf("%v -> %v: %w", from, to, ErrIllegalMove)
	}

	sig := s.Play(pc, *found)
	g.Plies++
	g.UpdatedAt = time.Now()
	return sig, nil
}

// Promote 用 kind 替换等待升变的兵并换边；kind 必须在升变菜单里。
func (m *Manager) Promote(id string, kind varchess.Kind) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	s := g.Session
	if s.State() != varchess.AwaitingPromotionChoice {
		return ErrNoPromotionPending
	}
	for _, c := range varchess.PromotionChoices(varchess.PromotionPending) {
		if c.Kind == kind {
			s.Promote(c.Kind, c.Symbol)
			g.UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("%v: %w", kind, ErrInvalidPromotion)
}

func ownPiece(s *varchess.Session, from varchess.Loc) (varchess.Piece, error) {
	pc := s.Grid().PieceAt(from)
	if pc.IsEmpty() || pc.Side != s.Turn() {
		return pc, fmt.Errorf("%v: %w", from, ErrNotYourPiece)
	}
	return pc, nil
}
