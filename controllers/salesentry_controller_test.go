package controllers

import (
	"testing"

	"github.com/aswin-roy/jjjj/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComputeItemsAndTotals(t *testing.T) {
	productA := primitive.NewObjectID().Hex()
	productB := primitive.NewObjectID().Hex()

	t.Run("applies 5 percent tax on the subtotal", func(t *testing.T) {
		items, total, err := computeItemsAndTotals([]models.SalesEntryItemInput{
			{Product: productA, Quantity: 2, Rate: 100},
		})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, 200.0, items[0].Amount)
		assert.InDelta(t, 210.0, total, 1e-9)
	})

	t.Run("sums multiple lines before taxing", func(t *testing.T) {
		items, total, err := computeItemsAndTotals([]models.SalesEntryItemInput{
			{Product: productA, Quantity: 1, Rate: 100},
			{Product: productB, Quantity: 3, Rate: 50},
		})
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, 100.0, items[0].Amount)
		assert.Equal(t, 150.0, items[1].Amount)
		assert.InDelta(t, 262.5, total, 1e-9)
	})

	t.Run("zero rate is allowed", func(t *testing.T) {
		_, total, err := computeItemsAndTotals([]models.SalesEntryItemInput{
			{Product: productA, Quantity: 5, Rate: 0},
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, total)
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, _, err := computeItemsAndTotals(nil)
		assert.Error(t, err)
	})

	t.Run("rejects missing product", func(t *testing.T) {
		_, _, err := computeItemsAndTotals([]models.SalesEntryItemInput{
			{Quantity: 1, Rate: 10},
		})
		assert.Error(t, err)
	})

	t.Run("rejects malformed product id", func(t *testing.T) {
		_, _, err := computeItemsAndTotals([]models.SalesEntryItemInput{
			{Product: "not-an-id", Quantity: 1, Rate: 10},
		})
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, _, err := computeItemsAndTotals([]models.SalesEntryItemInput{
			{Product: productA, Quantity: 0, Rate: 10},
		})
		assert.Error(t, err)

		_, _, err = computeItemsAndTotals([]models.SalesEntryItemInput{
			{Product: productA, Quantity: -2, Rate: 10},
		})
		assert.Error(t, err)
	})

	t.Run("rejects negative rate", func(t *testing.T) {
		_, _, err := computeItemsAndTotals([]models.SalesEntryItemInput{
			{Product: productA, Quantity: 1, Rate: -1},
		})
		assert.Error(t, err)
	})
}

func TestBalanceTolerance(t *testing.T) {
	product := primitive.NewObjectID().Hex()

	// Overpayment past the tolerance is rejected by the create handler; the
	// cutoff itself is exercised here against the computed totals.
	tests := []struct {
		name       string
		quantity   int
		rate       float64
		paid       float64
		acceptable bool
	}{
		{"partial payment leaves positive balance", 2, 100, 150, true},
		{"exact payment settles to zero", 2, 100, 210, true},
		{"rounding slack within tolerance", 2, 100, 210.05, true},
		{"overpayment outside tolerance", 1, 50, 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := computeItemsAndTotals([]models.SalesEntryItemInput{
				{Product: product, Quantity: tt.quantity, Rate: tt.rate},
			})
			require.NoError(t, err)

			balance := total - tt.paid
			if tt.acceptable {
				assert.GreaterOrEqual(t, balance, balanceTolerance)
			} else {
				assert.Less(t, balance, balanceTolerance)
			}
		})
	}
}
