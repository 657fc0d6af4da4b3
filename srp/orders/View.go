package orders

import (
	"fmt"
	"io"
)

// View is the presentation role of the order entity.
type View struct {
	Out io.Writer
}

// Show returns the one line summary of the order.
func (View) Show(o *Order) string {
	return fmt.Sprintf(`order with %d item(s), total %.2f`, o.ItemCount(), o.TotalSum())
}

// Print writes every line of the order followed by the summary onto the output.
func (v View) Print(o *Order) error {
	for _, item := range o.Items() {
		if _, err := fmt.Fprintf(v.Out, "%s\t%.2f\n", item.Name, item.Price); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(v.Out, v.Show(o))
	return err
}
