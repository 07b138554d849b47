package cart

import (
	"errors"
	"fmt"
)

var ErrUnknownDeliveryMethod = errors.New("unknown delivery method")

// DeliveryMethod is one of Standard, Express or Pickup. The zero value is
// Standard, and no other value can be built outside this package.
type DeliveryMethod struct {
	idx uint8
}

var (
	Standard = DeliveryMethod{idx: 0}
	Express  = DeliveryMethod{idx: 1}
	Pickup   = DeliveryMethod{idx: 2}
)

type methodInfo struct {
	slug  string
	label string
	fee   int
}

var methodTable = [...]methodInfo{
	{slug: "standard", label: "Стандартная (3-5 дней)", fee: 300},
	{slug: "express", label: "Экспресс (1-2 дня)", fee: 500},
	{slug: "pickup", label: "Самовывоз", fee: 0},
}

// Methods returns the delivery methods in display order.
func Methods() []DeliveryMethod {
	return []DeliveryMethod{Standard, Express, Pickup}
}

// ParseDeliveryMethod maps a wire value ("standard", "express", "pickup")
// to a DeliveryMethod.
func ParseDeliveryMethod(s string) (DeliveryMethod, error) {
	for i, info := range methodTable {
		if info.slug == s {
			return DeliveryMethod{idx: uint8(i)}, nil
		}
	}
	return Standard, fmt.Errorf("%w: %q", ErrUnknownDeliveryMethod, s)
}

func (m DeliveryMethod) String() string { return methodTable[m.idx].slug }

// Label is the human readable name shown next to the radio button.
func (m DeliveryMethod) Label() string { return methodTable[m.idx].label }

// Fee is the flat charge for a non-empty cart.
func (m DeliveryMethod) Fee() int { return methodTable[m.idx].fee }

func (m DeliveryMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *DeliveryMethod) UnmarshalText(b []byte) error {
	parsed, err := ParseDeliveryMethod(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
