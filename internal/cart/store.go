package cart

import (
	"context"
	"sync"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Persister 負責購物車快照的持久化
// 整份購物車序列化成單一快照  每次異動就整份覆寫 (last-write-wins)
type Persister interface {
	Load(ctx context.Context, sessionID string) ([]model.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []model.CartLine) error
	Drop(ctx context.Context, sessionID string) error
}

// Store 單一session的購物車
// 同一process內single-writer  跨session/分頁同時操作同一快照時後寫的蓋掉先寫的
type Store struct {
	sessionID string
	persister Persister
	logger    *zerolog.Logger

	mu    sync.Mutex
	lines []model.CartLine
	subs  []func(lines []model.CartLine)
}

// NewStore 建立購物車並還原快照
// 快照讀不回來或毀損就直接丟棄從空車開始  不回傳錯誤給caller
func NewStore(ctx context.Context, sessionID string, persister Persister, logger *zerolog.Logger) *Store {
	s := &Store{
		sessionID: sessionID,
		persister: persister,
		logger:    logger,
	}

	lines, err := persister.Load(ctx, sessionID)
	if err != nil {
		if logger != nil {
			logger.Warn().
				Err(err).
				Str("session_id", sessionID).
				Msg("discarding cart snapshot, starting with empty cart")
		}
		lines = nil
	}
	s.lines = lines
	return s
}

func (s *Store) SessionID() string {
	return s.sessionID
}

// Subscribe 註冊異動通知  每次mutation後會收到最新快照
func (s *Store) Subscribe(fn func(lines []model.CartLine)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddItem 加入商品
// identity key相同的line只累加數量  不會產生重複line
func (s *Store) AddItem(ctx context.Context, line model.CartLine) {
	s.mu.Lock()
	merged := false
	for i := range s.lines {
		if s.lines[i].SameKey(line) {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		line.Quantity = 1
		s.lines = append(s.lines, line)
	}
	snapshot := s.snapshotLocked()
	s.saveLocked(ctx, snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
}

// RemoveItem 移除指定line  找不到時視為no-op
func (s *Store) RemoveItem(ctx context.Context, productID uuid.UUID, selectedColor, customName string) {
	s.mu.Lock()
	key := model.CartLine{ProductID: productID, SelectedColor: selectedColor, CustomName: customName}
	removed := false
	for i := range s.lines {
		if s.lines[i].SameKey(key) {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	snapshot := s.snapshotLocked()
	s.saveLocked(ctx, snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
}

// UpdateQuantity 更新數量  quantity <= 0 等同移除
func (s *Store) UpdateQuantity(ctx context.Context, productID uuid.UUID, selectedColor, customName string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID, selectedColor, customName)
		return
	}

	s.mu.Lock()
	key := model.CartLine{ProductID: productID, SelectedColor: selectedColor, CustomName: customName}
	changed := false
	for i := range s.lines {
		if s.lines[i].SameKey(key) {
			s.lines[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		s.mu.Unlock()
		return
	}
	snapshot := s.snapshotLocked()
	s.saveLocked(ctx, snapshot)
	s.mu.Unlock()

	s.notify(snapshot)
}

// Clear 清空購物車  結帳成功後呼叫
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.lines = nil
	if err := s.persister.Drop(ctx, s.sessionID); err != nil && s.logger != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", s.sessionID).
			Msg("failed to drop cart snapshot")
	}
	s.mu.Unlock()

	s.notify(nil)
}

// Lines 取得目前所有line的複本
func (s *Store) Lines() []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// TotalItemCount 所有line數量加總
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// TotalPrice 購物車小計  有特價且低於原價的line以特價計算
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return model.CartSubtotal(s.lines)
}

func (s *Store) snapshotLocked() []model.CartLine {
	if len(s.lines) == 0 {
		return nil
	}
	snapshot := make([]model.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

// saveLocked 持久化失敗只記log  購物車操作本身不會失敗
func (s *Store) saveLocked(ctx context.Context, snapshot []model.CartLine) {
	if err := s.persister.Save(ctx, s.sessionID, snapshot); err != nil && s.logger != nil {
		s.logger.Warn().
			Err(err).
			Str("session_id", s.sessionID).
			Msg("failed to save cart snapshot")
	}
}

func (s *Store) notify(snapshot []model.CartLine) {
	s.mu.Lock()
	subs := make([]func(lines []model.CartLine), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}
