package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"quickbite/entity"
)

// Notifier is the append-only sink for workflow events. Best-effort: every
// failure is swallowed — a lost notification must never fail an order.
type Notifier struct {
	log *zap.Logger
}

// NewNotifier opens the notification log. On any setup failure it degrades
// to a no-op sink instead of returning an error.
func NewNotifier(path string) *Notifier {
	if path == "" {
		return &Notifier{log: zap.NewNop()}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Notifier{log: zap.NewNop()}
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.MessageKey = "message"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		return &Notifier{log: zap.NewNop()}
	}
	return &Notifier{log: log}
}

func (n *Notifier) OrderCreated(order *entity.Order, email string) {
	n.record("ORDER_CREATED", fmt.Sprintf(
		"Order #%d confirmed for %s | Total: $%.2f | Status: %s",
		order.ID, email, order.TotalPrice, order.Status))
}

func (n *Notifier) StatusChanged(order *entity.Order, oldStatus, newStatus entity.OrderStatus) {
	n.record("ORDER_STATUS_UPDATED", fmt.Sprintf(
		"Order #%d | %s -> %s", order.ID,
		strings.ToUpper(string(oldStatus)), strings.ToUpper(string(newStatus))))
}

func (n *Notifier) Delivered(order *entity.Order, email string) {
	n.record("ORDER_DELIVERED", fmt.Sprintf(
		"Order #%d delivered to %s | Total: $%.2f",
		order.ID, email, order.TotalPrice))
}

func (n *Notifier) record(kind, payload string) {
	n.log.Info(fmt.Sprintf("%s | %s", kind, payload),
		zap.String("event_id", uuid.NewString()),
		zap.String("event", kind),
	)
}

// Close flushes the sink. Sync errors are swallowed like everything else.
func (n *Notifier) Close() {
	_ = n.log.Sync()
}
