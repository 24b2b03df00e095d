package repository

import (
	"testing"

	"github.com/aswin-roy/jjjj/models"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestInventoryUpdateSet(t *testing.T) {
	t.Run("explicit zero price and stock are applied", func(t *testing.T) {
		set := inventoryUpdateSet(models.InventoryInput{
			Price: floatPtr(0),
			Stock: intPtr(0),
		})
		assert.Equal(t, 0.0, set["price"])
		assert.Equal(t, 0, set["stock"])
	})

	t.Run("omitted fields stay untouched", func(t *testing.T) {
		set := inventoryUpdateSet(models.InventoryInput{ProductName: "silk thread"})
		assert.Equal(t, "silk thread", set["productname"])
		assert.NotContains(t, set, "price")
		assert.NotContains(t, set, "stock")
		assert.NotContains(t, set, "skucode")
		assert.NotContains(t, set, "category")
	})

	t.Run("non-zero values pass through", func(t *testing.T) {
		set := inventoryUpdateSet(models.InventoryInput{
			SKUCode:  "THR-204",
			Category: "thread",
			Price:    floatPtr(45.5),
			Stock:    intPtr(12),
		})
		assert.Equal(t, 45.5, set["price"])
		assert.Equal(t, 12, set["stock"])
		assert.Equal(t, "THR-204", set["skucode"])
	})
}
