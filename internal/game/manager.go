package game

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"xiangqi/internal/xiangqi"
)

type Manager struct {
	mu    sync.RWMutex
	rules Rules
	games map[string]*Game
}

func NewManager(rules Rules) *Manager {
	return &Manager{rules: rules, games: make(map[string]*Game)}
}

func (m *Manager) NewGame() *Game {
	return m.register(xiangqi.NewInitialPosition())
}

// NewGameFrom 从 FEN 局面串开局。
func (m *Manager) NewGameFrom(fen string) (*Game, error) {
	pos, err := xiangqi.DecodePosition(fen)
	if err != nil {
		return nil, err
	}
	return m.register(pos), nil
}

func (m *Manager) register(pos *xiangqi.Position) *Game {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	g := &Game{
		ID:        id,
		Pos:       pos,
		Status:    pos.ClassifyStatus(pos.SideToMove),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		rules:     m.rules,
	}
	m.games[id] = g
	return g
}

func (m *Manager) Get(id string) (*Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// List 按创建时间先后返回所有对局。
func (m *Manager) List() []*Game {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := maps.Values(m.games)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrGameNotFound
	}
	delete(m.games, id)
	return nil
}
