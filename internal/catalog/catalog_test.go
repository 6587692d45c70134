package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLookups(t *testing.T) {
	cat := Default()

	v, ok := cat.Vehicle("lambo")
	assert.True(t, ok)
	assert.Equal(t, int64(80000), v.Price)

	_, ok = cat.Vehicle("tractor")
	assert.False(t, ok)

	c, ok := cat.City("monaco")
	assert.True(t, ok)
	assert.Equal(t, int64(60000), c.Cost)

	a, ok := cat.Avatar("crypto_trader")
	assert.True(t, ok)
	assert.Equal(t, int64(50000), a.Price)

	it, ok := cat.ShopItem("cash_starter")
	assert.True(t, ok)
	assert.Equal(t, CategoryCash, it.Category)
	assert.Equal(t, int64(50000), it.Amount)
}

func TestDefaultStartingItemsAreFree(t *testing.T) {
	cat := Default()

	v, _ := cat.Vehicle("basic")
	assert.Zero(t, v.Price)

	c, _ := cat.City("dubai")
	assert.Zero(t, c.Cost)

	for _, id := range []string{"businessman", "entrepreneur", "luxury_woman"} {
		a, ok := cat.Avatar(id)
		assert.True(t, ok)
		assert.Zero(t, a.Price)
	}
}

func TestDefaultShopCategories(t *testing.T) {
	cat := Default()

	for _, it := range cat.ShopItems {
		switch it.Category {
		case CategoryCash:
			assert.Positive(t, it.Amount, it.ID)
		case CategoryPremium, CategoryBoost:
			assert.Zero(t, it.Amount, it.ID)
		default:
			t.Fatalf("unexpected category %q for %s", it.Category, it.ID)
		}
		assert.Positive(t, it.RealPrice, it.ID)
	}
}
