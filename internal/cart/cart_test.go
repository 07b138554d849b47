package cart

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cheertaboi/minimal-shop/internal/models"
)

var (
	watch = models.Product{ID: 1, Name: "Минималистичные часы", Price: 8900, Category: "Аксессуары", Image: "/placeholder.svg"}
	vase  = models.Product{ID: 2, Name: "Керамическая ваза", Price: 3200, Category: "Декор", Image: "/placeholder.svg"}
	lamp  = models.Product{ID: 4, Name: "Настольная лампа", Price: 6700, Category: "Декор", Image: "/placeholder.svg"}
)

func TestNewCartIsEmpty(t *testing.T) {
	c := New()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Subtotal())
	assert.Equal(t, 0, c.DeliveryFee())
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, 0, c.ItemCount())
	assert.Equal(t, Standard, c.DeliveryMethod())
	assert.Empty(t, c.Lines())
}

func TestZeroValueCartDefaultsToStandard(t *testing.T) {
	var c Cart
	c.AddItem(vase)
	assert.Equal(t, Standard, c.DeliveryMethod())
	assert.Equal(t, 300, c.DeliveryFee())
}

func TestAddItemTwiceMergesLine(t *testing.T) {
	c := New()
	c.AddItem(watch)
	c.AddItem(watch)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAddItemThreeTimes(t *testing.T) {
	c := New()
	for i := 0; i < 3; i++ {
		c.AddItem(watch)
	}
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 26700, c.Subtotal())
}

func TestTwoProductsExpress(t *testing.T) {
	c := New()
	c.AddItem(watch)
	c.AddItem(vase)
	c.SetDeliveryMethod(Express)

	assert.Equal(t, 12100, c.Subtotal())
	assert.Equal(t, 500, c.DeliveryFee())
	assert.Equal(t, 12600, c.Total())
	assert.Equal(t, 2, c.ItemCount())
}

func TestEmptyCartPickupTotalIsZero(t *testing.T) {
	c := New()
	c.SetDeliveryMethod(Pickup)
	assert.Equal(t, 0, c.Total())
}

func TestDeliveryFeePerMethod(t *testing.T) {
	cases := []struct {
		method DeliveryMethod
		fee    int
	}{
		{Standard, 300},
		{Express, 500},
		{Pickup, 0},
	}
	for _, tc := range cases {
		t.Run(tc.method.String(), func(t *testing.T) {
			c := New()
			c.SetDeliveryMethod(tc.method)
			assert.Equal(t, 0, c.DeliveryFee(), "empty cart is never charged")

			c.AddItem(lamp)
			assert.Equal(t, tc.fee, c.DeliveryFee())
			assert.Equal(t, 6700+tc.fee, c.Total())
		})
	}
}

func TestLinesKeepInsertionOrder(t *testing.T) {
	c := New()
	c.AddItem(lamp)
	c.AddItem(watch)
	c.AddItem(vase)
	c.AddItem(lamp)

	ids := []int{}
	for _, l := range c.Lines() {
		ids = append(ids, l.ProductID)
	}
	assert.Equal(t, []int{4, 1, 2}, ids)
}

func TestRemoveItem(t *testing.T) {
	c := New()
	c.AddItem(watch)
	c.AddItem(vase)

	c.RemoveItem(watch.ID)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, vase.ID, lines[0].ProductID)

	c.RemoveItem(99)
	assert.Len(t, c.Lines(), 1)
}

func TestChangeQuantity(t *testing.T) {
	c := New()
	c.AddItem(watch)

	c.ChangeQuantity(watch.ID, 4)
	assert.Equal(t, 5, c.Lines()[0].Quantity)

	c.ChangeQuantity(watch.ID, -2)
	assert.Equal(t, 3, c.Lines()[0].Quantity)

	c.ChangeQuantity(42, 1)
	assert.Len(t, c.Lines(), 1)
}

func TestChangeQuantityToZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(watch)
	c.AddItem(watch)

	c.ChangeQuantity(watch.ID, -5)
	assert.True(t, c.IsEmpty())

	c.ChangeQuantity(watch.ID, -1)
	assert.True(t, c.IsEmpty())
	c.ChangeQuantity(watch.ID, 3)
	assert.True(t, c.IsEmpty(), "changing a missing line must not recreate it")
}

func TestChangeQuantityExtremeDeltas(t *testing.T) {
	c := New()
	c.AddItem(watch)

	c.ChangeQuantity(watch.ID, 2000000000000000000)
	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, MaxQuantity, lines[0].Quantity)
	assert.Equal(t, 8900*MaxQuantity, c.Subtotal())
	assert.Positive(t, c.Total())

	c.ChangeQuantity(watch.ID, math.MaxInt)
	lines = c.Lines()
	require.Len(t, lines, 1, "a positive delta must never remove the line")
	assert.Equal(t, MaxQuantity, lines[0].Quantity)

	c.ChangeQuantity(watch.ID, math.MinInt)
	assert.True(t, c.IsEmpty())
}

func TestQuantityCapsAtMax(t *testing.T) {
	c := New()
	c.AddItem(vase)
	c.ChangeQuantity(vase.ID, MaxQuantity-1)
	assert.Equal(t, MaxQuantity, c.Lines()[0].Quantity)

	c.AddItem(vase)
	assert.Equal(t, MaxQuantity, c.Lines()[0].Quantity)

	c.ChangeQuantity(vase.ID, -1)
	assert.Equal(t, MaxQuantity-1, c.Lines()[0].Quantity)
}

func TestPriceIsSnapshotAtAdd(t *testing.T) {
	c := New()
	p := watch
	c.AddItem(p)

	p.Price = 100
	p.Name = "renamed"
	c.AddItem(p)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 8900, lines[0].Price)
	assert.Equal(t, "Минималистичные часы", lines[0].Name)
	assert.Equal(t, 17800, c.Subtotal())
}

func TestLinesReturnsCopy(t *testing.T) {
	c := New()
	c.AddItem(watch)
	lines := c.Lines()
	lines[0].Quantity = 0
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestRequiresAddress(t *testing.T) {
	c := New()
	assert.True(t, c.RequiresAddress())
	c.SetDeliveryMethod(Pickup)
	assert.False(t, c.RequiresAddress())
	c.SetDeliveryMethod(Express)
	assert.True(t, c.RequiresAddress())
}

func TestSetDeliveryAddressIsFreeText(t *testing.T) {
	c := New()
	c.SetDeliveryAddress("")
	assert.Equal(t, "", c.DeliveryAddress())
	c.SetDeliveryAddress("  ул. Ленина, 1  ")
	assert.Equal(t, "  ул. Ленина, 1  ", c.DeliveryAddress())
}

func TestSnapshot(t *testing.T) {
	c := New()
	c.AddItem(watch)
	c.AddItem(vase)
	c.AddItem(vase)
	c.SetDeliveryMethod(Express)
	c.SetDeliveryAddress("Москва")

	s := c.Snapshot()
	assert.Len(t, s.Lines, 2)
	assert.Equal(t, Express, s.DeliveryMethod)
	assert.Equal(t, "Москва", s.DeliveryAddress)
	assert.True(t, s.RequiresAddress)
	assert.Equal(t, 15300, s.Subtotal)
	assert.Equal(t, 500, s.DeliveryFee)
	assert.Equal(t, 15800, s.Total)
	assert.Equal(t, 3, s.ItemCount)
}

func TestRandomOperationSequencesKeepInvariants(t *testing.T) {
	catalog := []models.Product{watch, vase, lamp,
		{ID: 3, Name: "Кожаный кошелек", Price: 4500},
		{ID: 5, Name: "Текстильная сумка", Price: 2800},
		{ID: 6, Name: "Набор свечей", Price: 1900},
	}
	methods := Methods()

	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		c := New()
		for step := 0; step < 60; step++ {
			p := catalog[rng.Intn(len(catalog))]
			switch rng.Intn(5) {
			case 0, 1:
				c.AddItem(p)
			case 2:
				c.RemoveItem(p.ID)
			case 3:
				c.ChangeQuantity(p.ID, rng.Intn(9)-5)
			case 4:
				c.SetDeliveryMethod(methods[rng.Intn(len(methods))])
			}

			seen := map[int]bool{}
			count := 0
			for _, l := range c.Lines() {
				require.GreaterOrEqual(t, l.Quantity, 1, "seed %d step %d", seed, step)
				require.False(t, seen[l.ProductID], "duplicate line for %d (seed %d)", l.ProductID, seed)
				seen[l.ProductID] = true
				count += l.Quantity
			}
			require.Equal(t, c.Subtotal()+c.DeliveryFee(), c.Total())
			require.Equal(t, count, c.ItemCount())
			if c.IsEmpty() {
				require.Equal(t, 0, c.DeliveryFee())
			}
		}
	}
}
