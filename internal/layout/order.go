package layout

import "fmt"

// Order selects how consecutive images fill the grid within a page.
type Order int

const (
	// OrderFilmStrip fills each column bottom-to-top with columns advancing
	// left to right, like frames on a 35mm strip. The default.
	OrderFilmStrip Order = iota
	// OrderReading fills rows left-to-right, top-to-bottom.
	OrderReading
)

// ParseOrder maps a CLI order name to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "film-bottom-up":
		return OrderFilmStrip, nil
	case "row-left-right":
		return OrderReading, nil
	}
	return OrderFilmStrip, fmt.Errorf("unknown order %q (valid: film-bottom-up, row-left-right)", s)
}

func (o Order) String() string {
	switch o {
	case OrderFilmStrip:
		return "film-bottom-up"
	case OrderReading:
		return "row-left-right"
	}
	return fmt.Sprintf("order(%d)", int(o))
}

// Cell maps an index within a page to its (row, col) slot. Row 0 is the
// topmost row, column 0 the leftmost column. Unrecognized order values fall
// back to reading order.
func (o Order) Cell(index, rows, cols int) (row, col int) {
	if o == OrderFilmStrip {
		return (rows - 1) - (index % rows), index / rows
	}
	return index / cols, index % cols
}
