package layout

import "testing"

func TestOrderCell_FilmStripThreeByTwo(t *testing.T) {
	// Two strips of three frames, each filling bottom-to-top.
	tests := []struct {
		index int
		row   int
		col   int
	}{
		{0, 2, 0},
		{1, 1, 0},
		{2, 0, 0},
		{3, 2, 1},
		{4, 1, 1},
		{5, 0, 1},
	}
	for _, tt := range tests {
		row, col := OrderFilmStrip.Cell(tt.index, 3, 2)
		if row != tt.row || col != tt.col {
			t.Errorf("index %d: expected (%d,%d), got (%d,%d)", tt.index, tt.row, tt.col, row, col)
		}
	}
}

func TestOrderCell_ReadingRowMajor(t *testing.T) {
	tests := []struct {
		index int
		row   int
		col   int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 0, 2},
		{3, 1, 0},
		{5, 1, 2},
	}
	for _, tt := range tests {
		row, col := OrderReading.Cell(tt.index, 2, 3)
		if row != tt.row || col != tt.col {
			t.Errorf("index %d: expected (%d,%d), got (%d,%d)", tt.index, tt.row, tt.col, row, col)
		}
	}
}

func TestOrderCell_Bijection(t *testing.T) {
	grids := []Grid{{1, 1}, {3, 2}, {2, 3}, {4, 7}, {5, 5}}
	for _, order := range []Order{OrderFilmStrip, OrderReading} {
		for _, grid := range grids {
			seen := make(map[[2]int]bool)
			for index := 0; index < grid.PerPage(); index++ {
				row, col := order.Cell(index, grid.Rows, grid.Cols)
				if row < 0 || row >= grid.Rows || col < 0 || col >= grid.Cols {
					t.Fatalf("%s %dx%d index %d: cell (%d,%d) out of range",
						order, grid.Rows, grid.Cols, index, row, col)
				}
				if seen[[2]int{row, col}] {
					t.Fatalf("%s %dx%d index %d: cell (%d,%d) used twice",
						order, grid.Rows, grid.Cols, index, row, col)
				}
				seen[[2]int{row, col}] = true
			}
			if len(seen) != grid.PerPage() {
				t.Errorf("%s %dx%d: %d cells filled, expected %d",
					order, grid.Rows, grid.Cols, len(seen), grid.PerPage())
			}
		}
	}
}

func TestOrderCell_UnknownFallsBackToReading(t *testing.T) {
	for index := 0; index < 6; index++ {
		wantRow, wantCol := OrderReading.Cell(index, 2, 3)
		row, col := Order(42).Cell(index, 2, 3)
		if row != wantRow || col != wantCol {
			t.Errorf("index %d: expected reading-order cell (%d,%d), got (%d,%d)",
				index, wantRow, wantCol, row, col)
		}
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		input string
		want  Order
	}{
		{"film-bottom-up", OrderFilmStrip},
		{"row-left-right", OrderReading},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.input)
		if err != nil {
			t.Errorf("ParseOrder(%q): unexpected error: %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("ParseOrder(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}

	if _, err := ParseOrder("spiral"); err == nil {
		t.Error("expected an error for an unknown order name")
	}
}

func TestOrderString(t *testing.T) {
	if got := OrderFilmStrip.String(); got != "film-bottom-up" {
		t.Errorf("expected film-bottom-up, got %q", got)
	}
	if got := OrderReading.String(); got != "row-left-right" {
		t.Errorf("expected row-left-right, got %q", got)
	}
}
