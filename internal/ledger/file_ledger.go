package ledger

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/suraj5-coder/Day-9-E-commerce-Agent/internal/domain"
)

// FileLedger stores the order ledger as a single JSON array on disk.
//
// Append rewrites the whole file, so the read-append-rewrite sequence is one
// critical section guarded by mu; without it, two sessions placing orders at
// the same time could lose one of them.
type FileLedger struct {
	mu   sync.Mutex
	path string
}

// NewFileLedger opens the ledger at path, initializing an empty one if no
// file exists yet.
func NewFileLedger(path string) (*FileLedger, error) {
	l := &FileLedger{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := l.writeLocked([]domain.Order{}); err != nil {
			return nil, fmt.Errorf("initialize ledger: %w", err)
		}
	}
	return l, nil
}

// Append durably records one order at the end of the ledger.
func (l *FileLedger) Append(order domain.Order) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.loadLocked()
	orders = append(orders, order)
	if err := l.writeLocked(orders); err != nil {
		return fmt.Errorf("append order %s: %w", order.OrderID, err)
	}
	return nil
}

// LoadAll returns every order in placement order. A missing or corrupt file
// reads as an empty ledger; the two cases are logged distinctly so data loss
// is not mistaken for a fresh install.
func (l *FileLedger) LoadAll() []domain.Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked()
}

// Last returns the most recently appended order, or ErrNoOrders when the
// ledger is empty.
func (l *FileLedger) Last() (domain.Order, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := l.loadLocked()
	if len(orders) == 0 {
		return domain.Order{}, ErrNoOrders
	}
	return orders[len(orders)-1], nil
}

func (l *FileLedger) loadLocked() []domain.Order {
	data, err := os.ReadFile(l.path)
	if err != nil {
		log.Printf("ledger file %s unreadable, treating as empty: %v", l.path, err)
		return []domain.Order{}
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("ledger file %s corrupt, treating as empty: %v", l.path, err)
		return []domain.Order{}
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders
}

func (l *FileLedger) writeLocked(orders []domain.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("write ledger file: %w", err)
	}
	return nil
}
