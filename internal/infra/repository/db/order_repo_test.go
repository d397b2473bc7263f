package db

import (
	"context"
	"testing"
	"time"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createRandomOrder(t *testing.T) *model.Order {
	t.Helper()
	repo := NewOrderRepo(testDao)

	order := &model.Order{
		OrderID:       uuid.New(),
		CustomerName:  "Jordan",
		CustomerEmail: "jordan@example.com",
		CustomerPhone: "9876543210",
		Subtotal:      decimal.NewFromInt(498),
		Discount:      decimal.Zero,
		Total:         decimal.NewFromInt(498),
		PaymentMethod: model.PaymentMethodCash,
		PaymentStatus: model.PaymentStatusPending,
		OrderStatus:   model.OrderStatusPlaced,
		OrderDate:     time.Now().UTC(),
		OrderItems: []model.OrderItem{
			{
				ProductID:     uuid.New(),
				ProductName:   "Dragon Keychain",
				UnitPrice:     decimal.NewFromInt(199),
				SelectedColor: "red",
				Quantity:      1,
			},
			{
				ProductID:     uuid.New(),
				ProductName:   "Mystery Box",
				UnitPrice:     decimal.NewFromInt(299),
				SelectedColor: "surprise",
				Quantity:      1,
			},
		},
	}

	err := repo.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	return order
}

func TestCreateOrderWithItems(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestCreateOrderWithItems")
	}
	repo := NewOrderRepo(testDao)
	created := createRandomOrder(t)

	got, err := repo.GetOrderByID(context.Background(), created.OrderID)
	require.NoError(t, err)
	require.Equal(t, created.CustomerEmail, got.CustomerEmail)
	require.True(t, created.Total.Equal(got.Total))
	require.Len(t, got.OrderItems, 2)
}

func TestGetOrderByIDNotFound(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestGetOrderByIDNotFound")
	}
	repo := NewOrderRepo(testDao)

	_, err := repo.GetOrderByID(context.Background(), uuid.New())
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestGetOrdersPaginated(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestGetOrdersPaginated")
	}
	repo := NewOrderRepo(testDao)

	for i := 0; i < 3; i++ {
		createRandomOrder(t)
	}

	orders, total, err := repo.GetOrdersPaginated(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	require.GreaterOrEqual(t, total, int64(3))
}

func TestUpdateOrderStatus(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestUpdateOrderStatus")
	}
	repo := NewOrderRepo(testDao)
	created := createRandomOrder(t)

	require.NoError(t, repo.UpdateOrderStatus(context.Background(), created.OrderID, model.OrderStatusConfirmed))

	got, err := repo.GetOrderByID(context.Background(), created.OrderID)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusConfirmed, got.OrderStatus)

	err = repo.UpdateOrderStatus(context.Background(), uuid.New(), model.OrderStatusConfirmed)
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestUpdatePaymentStatus(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestUpdatePaymentStatus")
	}
	repo := NewOrderRepo(testDao)
	created := createRandomOrder(t)

	require.NoError(t, repo.UpdatePaymentStatus(context.Background(), created.OrderID, model.PaymentStatusConfirmed))

	got, err := repo.GetOrderByID(context.Background(), created.OrderID)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusConfirmed, got.PaymentStatus)
}
