package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// fakePersister 記憶體版的快照儲存  模擬整份覆寫的行為
type fakePersister struct {
	mu        sync.Mutex
	snapshots map[string][]model.CartLine
	loadErr   error
	saveErr   error
	saveCalls int
}

func newFakePersister() *fakePersister {
	return &fakePersister{snapshots: make(map[string][]model.CartLine)}
}

func (p *fakePersister) Load(ctx context.Context, sessionID string) ([]model.CartLine, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.snapshots[sessionID], nil
}

func (p *fakePersister) Save(ctx context.Context, sessionID string, lines []model.CartLine) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saveCalls++
	if p.saveErr != nil {
		return p.saveErr
	}
	snapshot := make([]model.CartLine, len(lines))
	copy(snapshot, lines)
	p.snapshots[sessionID] = snapshot
	return nil
}

func (p *fakePersister) Drop(ctx context.Context, sessionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.snapshots, sessionID)
	return nil
}

func randomLine(t *testing.T) model.CartLine {
	t.Helper()
	return model.CartLine{
		ProductID:     uuid.New(),
		ProductName:   "Dragon Keychain",
		UnitPrice:     decimal.NewFromInt(199),
		SelectedColor: "red",
	}
}

func TestAddItemMergesSameIdentityKey(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	line := randomLine(t)
	store.AddItem(context.Background(), line)
	store.AddItem(context.Background(), line)
	store.AddItem(context.Background(), line)

	lines := store.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 3, lines[0].Quantity)
	require.Equal(t, 3, store.TotalItemCount())
}

func TestAddItemDifferentColorCreatesNewLine(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	line := randomLine(t)
	store.AddItem(context.Background(), line)

	other := line
	other.SelectedColor = "blue"
	store.AddItem(context.Background(), other)

	require.Len(t, store.Lines(), 2)
}

func TestAddItemDifferentCustomNameCreatesNewLine(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	line := randomLine(t)
	store.AddItem(context.Background(), line)

	other := line
	other.CustomName = "Alice"
	store.AddItem(context.Background(), other)

	require.Len(t, store.Lines(), 2)
}

func TestTotalPriceUsesSalePrice(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	sale := decimal.NewFromInt(149)
	line := randomLine(t)
	line.SalePrice = &sale
	store.AddItem(context.Background(), line)
	store.AddItem(context.Background(), line)

	require.True(t, store.TotalPrice().Equal(decimal.NewFromInt(298)))
}

func TestSalePriceAboveRegularIsIgnored(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	sale := decimal.NewFromInt(299)
	line := randomLine(t)
	line.SalePrice = &sale
	store.AddItem(context.Background(), line)

	require.True(t, store.TotalPrice().Equal(decimal.NewFromInt(199)))
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	line := randomLine(t)
	store.AddItem(context.Background(), line)
	store.UpdateQuantity(context.Background(), line.ProductID, line.SelectedColor, line.CustomName, 0)

	require.Empty(t, store.Lines())
}

func TestUpdateQuantitySetsExactCount(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	line := randomLine(t)
	store.AddItem(context.Background(), line)
	store.UpdateQuantity(context.Background(), line.ProductID, line.SelectedColor, line.CustomName, 7)

	require.Equal(t, 7, store.TotalItemCount())
}

func TestRemoveMissingLineIsNoop(t *testing.T) {
	persister := newFakePersister()
	store := NewStore(context.Background(), uuid.New().String(), persister, nil)

	line := randomLine(t)
	store.AddItem(context.Background(), line)
	saveCallsBefore := persister.saveCalls

	store.RemoveItem(context.Background(), uuid.New(), "red", "")

	require.Len(t, store.Lines(), 1)
	require.Equal(t, saveCallsBefore, persister.saveCalls)
}

func TestSnapshotRoundTrip(t *testing.T) {
	persister := newFakePersister()
	sessionID := uuid.New().String()

	first := NewStore(context.Background(), sessionID, persister, nil)
	line := randomLine(t)
	first.AddItem(context.Background(), line)
	first.AddItem(context.Background(), line)

	// 同session開新store  模擬重新整理頁面
	second := NewStore(context.Background(), sessionID, persister, nil)
	lines := second.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, line.ProductID, lines[0].ProductID)
}

func TestLoadFailureStartsEmpty(t *testing.T) {
	persister := newFakePersister()
	persister.loadErr = errors.New("snapshot corrupted")

	store := NewStore(context.Background(), uuid.New().String(), persister, nil)
	require.Empty(t, store.Lines())

	// 壞掉的快照被丟棄後購物車要能繼續用
	persister.loadErr = nil
	store.AddItem(context.Background(), randomLine(t))
	require.Equal(t, 1, store.TotalItemCount())
}

func TestSaveFailureDoesNotBlockMutation(t *testing.T) {
	persister := newFakePersister()
	persister.saveErr = errors.New("redis down")

	store := NewStore(context.Background(), uuid.New().String(), persister, nil)
	store.AddItem(context.Background(), randomLine(t))

	require.Equal(t, 1, store.TotalItemCount())
}

func TestClearDropsSnapshot(t *testing.T) {
	persister := newFakePersister()
	sessionID := uuid.New().String()

	store := NewStore(context.Background(), sessionID, persister, nil)
	store.AddItem(context.Background(), randomLine(t))
	store.Clear(context.Background())

	require.Empty(t, store.Lines())
	require.Empty(t, persister.snapshots[sessionID])
}

func TestSubscribeReceivesSnapshots(t *testing.T) {
	store := NewStore(context.Background(), uuid.New().String(), newFakePersister(), nil)

	var mu sync.Mutex
	var received [][]model.CartLine
	store.Subscribe(func(lines []model.CartLine) {
		mu.Lock()
		received = append(received, lines)
		mu.Unlock()
	})

	line := randomLine(t)
	store.AddItem(context.Background(), line)
	store.AddItem(context.Background(), line)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	require.Equal(t, 2, received[1][0].Quantity)
}

// 兩個session指向同一快照時  後寫的整份蓋掉先寫的
func TestConcurrentStoresLastWriteWins(t *testing.T) {
	persister := newFakePersister()
	sessionID := uuid.New().String()

	first := NewStore(context.Background(), sessionID, persister, nil)
	second := NewStore(context.Background(), sessionID, persister, nil)

	lineA := randomLine(t)
	lineB := randomLine(t)

	first.AddItem(context.Background(), lineA)
	second.AddItem(context.Background(), lineB)

	reloaded := NewStore(context.Background(), sessionID, persister, nil)
	lines := reloaded.Lines()
	require.Len(t, lines, 1)
	require.Equal(t, lineB.ProductID, lines[0].ProductID)
}
