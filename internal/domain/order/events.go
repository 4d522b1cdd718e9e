package order

import (
	"context"

	"go.uber.org/zap"
)

// EventSink receives order lifecycle events. The notification/broadcast
// subsystem plugs in here; the core itself never calls notification code.
type EventSink interface {
	OrderCreated(ctx context.Context, o Order)
	ProductionAdvanced(ctx context.Context, o Order, from ProductionStatus)
	PaymentRecorded(ctx context.Context, o Order, amount int64)
}

var _ EventSink = (*LogSink)(nil)

// LogSink is the default EventSink: it only logs. Useful until a real
// notification channel is wired in.
type LogSink struct {
	lg *zap.Logger
}

// NewLogSink returns a LogSink writing to lg.
func NewLogSink(lg *zap.Logger) *LogSink {
	return &LogSink{lg: lg}
}

func (s *LogSink) OrderCreated(_ context.Context, o Order) {
	s.lg.Info("order created",
		zap.String("order_id", o.ID),
		zap.String("customer", o.CustomerName),
		zap.Int64("total", o.TotalPrice),
	)
}

func (s *LogSink) ProductionAdvanced(_ context.Context, o Order, from ProductionStatus) {
	s.lg.Info("production advanced",
		zap.String("order_id", o.ID),
		zap.String("from", string(from)),
		zap.String("to", string(o.ProductionStatus)),
	)
}

func (s *LogSink) PaymentRecorded(_ context.Context, o Order, amount int64) {
	s.lg.Info("payment recorded",
		zap.String("order_id", o.ID),
		zap.Int64("amount", amount),
		zap.Int64("paid", o.PaidAmount),
		zap.String("payment_status", string(o.PaymentStatus)),
	)
}
