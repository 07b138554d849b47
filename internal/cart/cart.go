// Package cart holds the session shopping cart and its pricing rules.
//
// A Cart is plain state: it does no I/O and no locking. Callers that share a
// Cart between goroutines must serialise access themselves.
package cart

import "github.com/Cheertaboi/minimal-shop/internal/models"

// Line is one product in the cart. Name, Price and Image are copied from the
// catalog when the product is first added and never refreshed.
type Line struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
}

func (l Line) Total() int { return l.Price * l.Quantity }

// MaxQuantity caps a single line. Larger requests saturate at the cap.
const MaxQuantity = 999

type Cart struct {
	lines   []Line
	method  DeliveryMethod
	address string
}

// New returns an empty cart with Standard delivery.
func New() *Cart {
	return &Cart{method: Standard}
}

func (c *Cart) indexOf(productID int) int {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem bumps the quantity of an existing line or appends a new one.
func (c *Cart) AddItem(p models.Product) {
	if i := c.indexOf(p.ID); i >= 0 {
		if c.lines[i].Quantity < MaxQuantity {
			c.lines[i].Quantity++
		}
		return
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// RemoveItem drops the line for productID. Missing ids are ignored.
func (c *Cart) RemoveItem(productID int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// ChangeQuantity adds delta to the line's quantity and removes the line once
// the result is zero or less. The result never exceeds MaxQuantity. Missing
// ids are ignored.
func (c *Cart) ChangeQuantity(productID, delta int) {
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	cur := c.lines[i].Quantity
	// compare before adding so extreme deltas cannot wrap around
	switch {
	case delta <= -cur:
		c.RemoveItem(productID)
	case delta >= MaxQuantity-cur:
		c.lines[i].Quantity = MaxQuantity
	default:
		c.lines[i].Quantity = cur + delta
	}
}

func (c *Cart) SetDeliveryMethod(m DeliveryMethod) { c.method = m }

func (c *Cart) SetDeliveryAddress(text string) { c.address = text }

func (c *Cart) DeliveryMethod() DeliveryMethod { return c.method }

func (c *Cart) DeliveryAddress() string { return c.address }

// RequiresAddress reports whether the address field applies to the current
// delivery method.
func (c *Cart) RequiresAddress() bool { return c.method != Pickup }

func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Lines returns a copy of the lines in the order they were first added.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Subtotal() int {
	sum := 0
	for _, l := range c.lines {
		sum += l.Total()
	}
	return sum
}

// DeliveryFee is zero for an empty cart whatever method is selected.
func (c *Cart) DeliveryFee() int {
	if c.IsEmpty() {
		return 0
	}
	return c.method.Fee()
}

func (c *Cart) Total() int { return c.Subtotal() + c.DeliveryFee() }

func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Summary is a detached view of a cart with its derived prices.
type Summary struct {
	Lines           []Line         `json:"lines"`
	DeliveryMethod  DeliveryMethod `json:"delivery_method"`
	DeliveryAddress string         `json:"delivery_address"`
	RequiresAddress bool           `json:"requires_address"`
	Subtotal        int            `json:"subtotal"`
	DeliveryFee     int            `json:"delivery_fee"`
	Total           int            `json:"total"`
	ItemCount       int            `json:"item_count"`
}

func (c *Cart) Snapshot() Summary {
	return Summary{
		Lines:           c.Lines(),
		DeliveryMethod:  c.method,
		DeliveryAddress: c.address,
		RequiresAddress: c.RequiresAddress(),
		Subtotal:        c.Subtotal(),
		DeliveryFee:     c.DeliveryFee(),
		Total:           c.Total(),
		ItemCount:       c.ItemCount(),
	}
}
