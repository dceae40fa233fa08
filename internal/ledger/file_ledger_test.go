package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
)

func setupLedger(t *testing.T) *FileLedger {
	path := filepath.Join(t.TempDir(), "orders.json")
	l, err := NewFileLedger(path)
	require.NoError(t, err)
	return l
}

func sampleOrder(id string) domain.Order {
	return domain.Order{
		OrderID:   id,
		Timestamp: "2026-08-28T10:00:00Z",
		Items: []domain.CartLine{
			{ProductID: "mug-neural", Name: "Neural Network Mug", Quantity: 2},
			{ProductID: "sticker-pack", Name: "Laptop Sticker Pack", Quantity: 1, Size: ""},
		},
		TotalAmount: 1197,
		Currency:    domain.DefaultCurrency,
		Status:      domain.OrderStatusConfirmed,
	}
}

func TestNewFileLedger_InitializesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	l, err := NewFileLedger(path)
	require.NoError(t, err)

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Empty(t, l.LoadAll())
}

func TestAppend_RoundTripsFieldForField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	l, err := NewFileLedger(path)
	require.NoError(t, err)

	first := sampleOrder("ORD-AAAAAA")
	second := sampleOrder("ORD-BBBBBB")
	require.NoError(t, l.Append(first))
	require.NoError(t, l.Append(second))

	// Reopen to prove the orders survived, not just the in-process state.
	reopened, err := NewFileLedger(path)
	require.NoError(t, err)

	orders := reopened.LoadAll()
	require.Len(t, orders, 2)
	assert.Equal(t, first, orders[0])
	assert.Equal(t, second, orders[1])
}

func TestLast(t *testing.T) {
	l := setupLedger(t)

	_, err := l.Last()
	assert.ErrorIs(t, err, ErrNoOrders)

	require.NoError(t, l.Append(sampleOrder("ORD-AAAAAA")))
	require.NoError(t, l.Append(sampleOrder("ORD-BBBBBB")))

	last, err := l.Last()
	require.NoError(t, err)
	assert.Equal(t, "ORD-BBBBBB", last.OrderID)
}

func TestLoadAll_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	l, err := NewFileLedger(path)
	require.NoError(t, err)
	assert.Empty(t, l.LoadAll())

	_, err = l.Last()
	assert.ErrorIs(t, err, ErrNoOrders)
}

func TestAppend_ConcurrentWritersLoseNothing(t *testing.T) {
	l := setupLedger(t)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(n int) {
			defer wg.Done()
			err := l.Append(sampleOrder(fmt.Sprintf("ORD-%06d", n)))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	orders := l.LoadAll()
	require.Len(t, orders, writers)

	seen := make(map[string]bool, writers)
	for _, o := range orders {
		assert.False(t, seen[o.OrderID], "order %s appended twice", o.OrderID)
		seen[o.OrderID] = true
	}
}

func TestAppend_PropagatesWriteFailure(t *testing.T) {
	dir := t.TempDir()
	l, err := NewFileLedger(filepath.Join(dir, "orders.json"))
	require.NoError(t, err)

	// Replace the ledger file with a directory so the rewrite fails.
	require.NoError(t, os.Remove(filepath.Join(dir, "orders.json")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "orders.json"), 0o755))

	assert.Error(t, l.Append(sampleOrder("ORD-AAAAAA")))
}
