package cartControllers_test

import (
	"testing"

	cartControllers "github.com/Dhanasriganesh/powder/controllers/cart"
	"github.com/Dhanasriganesh/powder/models"
	"github.com/stretchr/testify/assert"
)

func TestTotals(t *testing.T) {
	items := []models.CartItem{
		{SalePrice: 200, RegularPrice: 250, Quantity: 2},
		{SalePrice: 150, RegularPrice: 150, Quantity: 1},
	}

	subtotal, savings := cartControllers.Totals(items)
	assert.Equal(t, 550.0, subtotal)
	assert.Equal(t, 100.0, savings)
}

func TestTotalsEmptyCart(t *testing.T) {
	subtotal, savings := cartControllers.Totals(nil)
	assert.Zero(t, subtotal)
	assert.Zero(t, savings)
}

func TestTotalsSavingsNeverNegative(t *testing.T) {
	// A sale price above the regular price must not reduce savings
	items := []models.CartItem{
		{SalePrice: 300, RegularPrice: 250, Quantity: 1},
		{SalePrice: 100, RegularPrice: 120, Quantity: 2},
	}

	subtotal, savings := cartControllers.Totals(items)
	assert.Equal(t, 500.0, subtotal)
	assert.Equal(t, 40.0, savings)
}
