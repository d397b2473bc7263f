package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// WebhookNotifier 打一通HTTP webhook通知店家有新訂單
// webhook另一端負責組WhatsApp訊息送出
// 外部endpoint不穩定  掛circuit breaker避免每張訂單都等timeout
type WebhookNotifier struct {
	client  *resty.Client
	breaker *gobreaker.CircuitBreaker
	url     string
	token   string
}

func NewWebhookNotifier(url, token string) *WebhookNotifier {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(0)

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "order-webhook",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &WebhookNotifier{
		client:  client,
		breaker: breaker,
		url:     url,
		token:   token,
	}
}

var _ Notifier = (*WebhookNotifier)(nil)

func (w *WebhookNotifier) Name() string {
	return "webhook"
}

type webhookPayload struct {
	OrderID  string `json:"order_id"`
	Message  string `json:"message"`
	Customer string `json:"customer"`
	Phone    string `json:"phone"`
}

func (w *WebhookNotifier) NotifyOrderPlaced(ctx context.Context, details *OrderDetails) error {
	payload := webhookPayload{
		OrderID:  details.OrderID,
		Message:  composeOperatorMessage(details),
		Customer: details.CustomerName,
		Phone:    details.CustomerPhone,
	}

	_, err := w.breaker.Execute(func() (any, error) {
		resp, err := w.client.R().
			SetContext(ctx).
			SetHeader("Authorization", fmt.Sprintf("Bearer %s", w.token)).
			SetBody(payload).
			Post(w.url)
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("webhook returned status %d", resp.StatusCode())
		}
		return nil, nil
	})
	return err
}

// composeOperatorMessage 組店家看的新訂單文字訊息
func composeOperatorMessage(details *OrderDetails) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New order %s\n", details.OrderID)
	fmt.Fprintf(&b, "Customer: %s (%s)\n", details.CustomerName, details.CustomerPhone)
	for _, item := range details.Items {
		fmt.Fprintf(&b, "- %dx %s (%s)", item.Quantity, item.ProductName, item.SelectedColor)
		if item.CustomName != "" {
			fmt.Fprintf(&b, " \"%s\"", item.CustomName)
		}
		b.WriteString("\n")
	}
	if details.CouponCode != "" {
		fmt.Fprintf(&b, "Coupon: %s (-Rs.%s)\n", details.CouponCode, details.Discount.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: Rs.%s (%s)", details.Total.StringFixed(2), details.PaymentMethod)
	return b.String()
}
