// Package problem holds the God object this example refactors away from.
//
// Order manages its items, computes totals, persists itself and presents itself.
// Eleven methods, three unrelated concerns,
// and every schema, layout or pricing change has this single type as its blast radius.
package problem

import "fmt"

type Item struct {
	Name  string
	Price float64
}

type Order struct {
	items []Item
}

func (o *Order) AddItem(item Item) { o.items = append(o.items, item) }
func (o *Order) GetItems() []Item  { return o.items }
func (o *Order) GetItemCount() int { return len(o.items) }

func (o *Order) DeleteItem(item Item) {
	for i, candidate := range o.items {
		if candidate == item {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return
		}
	}
}

func (o *Order) CalculateTotalSum() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Price
	}
	return total
}

// persistence concerns, wedged into the same type

func (o *Order) LoadOrder()   { fmt.Println(`order loaded`) }
func (o *Order) SaveOrder()   { fmt.Println(`order saved`) }
func (o *Order) UpdateOrder() { fmt.Println(`order updated`) }
func (o *Order) DeleteOrder() { fmt.Println(`order deleted`) }

// presentation concerns, also wedged into the same type

func (o *Order) PrintOrder() { fmt.Printf("order with %d item(s)\n", len(o.items)) }
func (o *Order) ShowOrder()  { fmt.Printf("total: %.2f\n", o.CalculateTotalSum()) }
