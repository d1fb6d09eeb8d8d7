package domain

// ShippingFlatFee is the flat shipping charge applied to any non-empty cart.
const ShippingFlatFee = 10.0

type CartItem struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	Items []CartItem `json:"items"`
}

func (c Cart) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

func (c Cart) Shipping() float64 {
	if c.Subtotal() > 0 {
		return ShippingFlatFee
	}
	return 0
}

func (c Cart) Total() float64 {
	return c.Subtotal() + c.Shipping()
}

// TotalQuantity sums the quantities across all line items.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}
