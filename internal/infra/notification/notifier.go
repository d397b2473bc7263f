package notification

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// OrderDetails 通知用的訂單資料  全部copy by value
type OrderDetails struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	CouponCode    string
	PlacedAt      time.Time
	Items         []OrderItemDetails
}

type OrderItemDetails struct {
	ProductName   string
	SelectedColor string
	CustomName    string
	Quantity      int
	UnitPrice     decimal.Decimal
}

// Notifier 單一通知管道
// 所有實作都是best-effort  失敗不影響訂單成立
type Notifier interface {
	Name() string
	NotifyOrderPlaced(ctx context.Context, details *OrderDetails) error
}

// Dispatcher 併發送出所有通知管道  個別失敗只記log
type Dispatcher struct {
	notifiers []Notifier
	logger    *zerolog.Logger
}

func NewDispatcher(logger *zerolog.Logger, notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{
		notifiers: notifiers,
		logger:    logger,
	}
}

// DispatchOrderPlaced 送出下單通知  回傳失敗的管道名稱
// at-most-once  沒有重送queue
func (d *Dispatcher) DispatchOrderPlaced(ctx context.Context, details *OrderDetails) []string {
	var (
		mu     sync.Mutex
		failed []string
	)

	g, gCtx := errgroup.WithContext(ctx)
	for _, n := range d.notifiers {
		n := n
		g.Go(func() error {
			if err := n.NotifyOrderPlaced(gCtx, details); err != nil {
				if d.logger != nil {
					d.logger.Warn().
						Err(err).
						Str("notifier", n.Name()).
						Str("order_id", details.OrderID).
						Msg("order notification failed")
				}
				mu.Lock()
				failed = append(failed, n.Name())
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()
	return failed
}
