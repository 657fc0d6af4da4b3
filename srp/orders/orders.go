// Package orders shows an order entity that manages its items and totals,
// while persistence and presentation live behind their own roles.
//
// The problem subpackage has an Order with eleven methods across three concerns:
// item management, persistence and presentation.
// Here the Order keeps the first concern, because that one is genuinely its own,
// Storage takes the second and View the third.
package orders

// Item is a single order line.
type Item struct {
	Name  string
	Price float64
}

// Order manages its items and its total. That is its single responsibility.
type Order struct {
	ID    string
	items []Item
}

// AddItem appends a line to the order.
func (o *Order) AddItem(item Item) {
	o.items = append(o.items, item)
}

// DeleteItem removes the first line with the given name
// and reports whether anything was removed.
func (o *Order) DeleteItem(name string) bool {
	for i, item := range o.items {
		if item.Name == name {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return true
		}
	}
	return false
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of lines on the order.
func (o *Order) ItemCount() int { return len(o.items) }

// TotalSum returns the sum of the line prices.
func (o *Order) TotalSum() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Price
	}
	return total
}
