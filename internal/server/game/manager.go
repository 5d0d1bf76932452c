package game

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"shogi/internal/record"
	"shogi/internal/shogi"
)

var (
	// ErrNotFound 表示对局 ID 不存在。
	ErrNotFound = errors.New("game not found")
	// ErrIllegalMove 表示着手能解析但不在当前局面的合法着手里。
	ErrIllegalMove = errors.New("illegal move")
	// ErrGameOver 表示对局已分出胜负，不再接受着手。
	ErrGameOver = errors.New("game already decided")
)

// Manager 管理内存里的全部对局，方法都可以并发调用。
// 返回的 GameState 都是快照，调用方随便读，不会看到后续着手。
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame 从平手初始局面开一盘新对局。
func (m *Manager) NewGame() *GameState {
	return m.NewGameFrom(shogi.NewInitialPosition())
}

// NewGameFrom 从给定局面开一盘对局，用来摆诘将棋或续弈残局。
// 给的局面如果已经分出胜负，状态会直接标好。
func (m *Manager) NewGameFrom(pos *shogi.Position) *GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       pos,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.refreshStatus()
	m.games[g.ID] = g
	return g.snapshot()
}

// Replay 用一份棋谱文本开一盘对局：着手从初始局面全部重放并记入历史。
func (m *Manager) Replay(text string) (*GameState, error) {
	parsed, err := record.Parse(text)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       parsed.Final,
		Moves:     parsed.Moves,
		CreatedAt: now,
		UpdatedAt: now,
	}
	g.refreshStatus()
	m.games[g.ID] = g
	return g.snapshot(), nil
}

func (m *Manager) Get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	return g.snapshot(), nil
}

// Play 在对局里走一手。token 按当前局面解码，必须出现在生成器给出的
// 着手列表里；走完后重新核对胜负状态。
func (m *Manager) Play(id, token string) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	if g.Status != StatusOngoing {
		return nil, ErrGameOver
	}

	mv, err := g.Pos.DecodeMove(token)
	if err != nil {
		return nil, err
	}
	legal := false
	for _, cand := range g.Pos.GenerateMoves() {
		if cand == mv {
			legal = true
			break
		}
	}
	if !legal {
		return nil, ErrIllegalMove
	}

	g.Pos = g.Pos.Apply(mv)
	g.Moves = append(g.Moves, mv)
	g.UpdatedAt = time.Now()
	g.refreshStatus()
	return g.snapshot(), nil
}
