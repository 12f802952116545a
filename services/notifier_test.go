package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"quickbite/entity"
)

func notifierOutput(t *testing.T, write func(n *Notifier)) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notifications.log")
	n := NewNotifier(path)
	write(n)
	n.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNotifierOrderCreatedLine(t *testing.T) {
	out := notifierOutput(t, func(n *Notifier) {
		n.OrderCreated(&entity.Order{
			Model:      gorm.Model{ID: 12},
			TotalPrice: 42.97,
			Status:     entity.OrderPending,
		}, "user@example.com")
	})

	assert.Contains(t, out, "ORDER_CREATED | Order #12 confirmed for user@example.com | Total: $42.97 | Status: pending")
	assert.Contains(t, out, "event_id")
}

func TestNotifierStatusChangedUpperCasesStatuses(t *testing.T) {
	out := notifierOutput(t, func(n *Notifier) {
		n.StatusChanged(&entity.Order{Model: gorm.Model{ID: 12}},
			entity.OrderPending, entity.OrderConfirmed)
	})

	assert.Contains(t, out, "ORDER_STATUS_UPDATED | Order #12 | PENDING -> CONFIRMED")
}

func TestNotifierDegradesToNoop(t *testing.T) {
	n := NewNotifier("")
	// best-effort sink: nothing to assert beyond not panicking
	n.OrderCreated(&entity.Order{Model: gorm.Model{ID: 1}}, "user@example.com")
	n.Close()
}
