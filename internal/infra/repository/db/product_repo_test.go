package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/JordanRodrigues021/Trinkets-and-Things-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func createRandomProduct(t *testing.T) *model.Product {
	t.Helper()
	repo := NewProductRepo(testDao)

	product := &model.Product{
		ProductID:   uuid.New(),
		Name:        fmt.Sprintf("Dragon Keychain %s", uuid.New().String()[:8]),
		Description: "articulated print-in-place dragon",
		Price:       decimal.NewFromInt(199),
		Category:    "keychains",
		Colors: []model.ProductColor{
			{Color: "red", Available: true},
			{Color: "blue", Available: true},
		},
	}
	for i := range product.Colors {
		product.Colors[i].ProductID = product.ProductID
	}

	err := repo.CreateProduct(context.Background(), product)
	require.NoError(t, err)

	t.Cleanup(func() {
		repo.DeleteProduct(context.Background(), product.ProductID)
	})
	return product
}

func TestCreateProduct(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestCreateProduct")
	}
	createRandomProduct(t)
}

func TestGetProductByIDLoadsColors(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestGetProductByIDLoadsColors")
	}
	repo := NewProductRepo(testDao)
	created := createRandomProduct(t)

	got, err := repo.GetProductByID(context.Background(), created.ProductID)
	require.NoError(t, err)
	require.Equal(t, created.Name, got.Name)
	require.True(t, created.Price.Equal(got.Price))
	require.Len(t, got.Colors, 2)
}

func TestGetProductByIDNotFound(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestGetProductByIDNotFound")
	}
	repo := NewProductRepo(testDao)

	_, err := repo.GetProductByID(context.Background(), uuid.New())
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}

func TestListProductsFilters(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestListProductsFilters")
	}
	repo := NewProductRepo(testDao)

	created := createRandomProduct(t)

	category := created.Category
	products, err := repo.ListProducts(context.Background(), ProductFilter{Category: &category})
	require.NoError(t, err)
	require.NotEmpty(t, products)
	for _, p := range products {
		require.Equal(t, category, p.Category)
	}

	mysteryBox := true
	products, err = repo.ListProducts(context.Background(), ProductFilter{MysteryBox: &mysteryBox})
	require.NoError(t, err)
	for _, p := range products {
		require.True(t, p.IsMysteryBox)
	}
}

func TestUpdateProductRebuildsColors(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestUpdateProductRebuildsColors")
	}
	repo := NewProductRepo(testDao)
	created := createRandomProduct(t)

	created.Name = "Flexi Rex"
	created.Colors = []model.ProductColor{
		{ProductID: created.ProductID, Color: "green", Available: true},
	}
	require.NoError(t, repo.UpdateProduct(context.Background(), created))

	got, err := repo.GetProductByID(context.Background(), created.ProductID)
	require.NoError(t, err)
	require.Equal(t, "Flexi Rex", got.Name)
	require.Len(t, got.Colors, 1)
	require.Equal(t, "green", got.Colors[0].Color)
}

func TestSetColorAvailability(t *testing.T) {
	if testDao == nil {
		t.Skip("Database not configured, skipping TestSetColorAvailability")
	}
	repo := NewProductRepo(testDao)
	created := createRandomProduct(t)

	require.NoError(t, repo.SetColorAvailability(context.Background(), created.ProductID, "red", false))

	got, err := repo.GetProductByID(context.Background(), created.ProductID)
	require.NoError(t, err)
	for _, c := range got.Colors {
		if c.Color == "red" {
			require.False(t, c.Available)
		}
	}

	err = repo.SetColorAvailability(context.Background(), created.ProductID, "chartreuse", false)
	require.Error(t, err)
	require.True(t, IsNotFound(err))
}
