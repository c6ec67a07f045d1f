package vmath

import "testing"

func TestTraverseEndpoints(t *testing.T) {
	var cells [][2]int
	Traverse(0.5, 0.5, 5.5, 2.5, func(x, y int) bool {
		cells = append(cells, [2]int{x, y})
		return true
	})

	if len(cells) == 0 {
		t.Fatal("no cells visited")
	}
	if cells[0] != [2]int{0, 0} {
		t.Errorf("first cell = %v, want [0 0]", cells[0])
	}
	if last := cells[len(cells)-1]; last != [2]int{5, 2} {
		t.Errorf("last cell = %v, want [5 2]", last)
	}

	// Supercover: consecutive cells are 4- or 8-connected
	for i := 1; i < len(cells); i++ {
		dx := cells[i][0] - cells[i-1][0]
		dy := cells[i][1] - cells[i-1][1]
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("gap between %v and %v", cells[i-1], cells[i])
		}
	}
}

func TestTraverseSingleCellAndEarlyStop(t *testing.T) {
	n := 0
	Traverse(3.2, 4.7, 3.9, 4.1, func(x, y int) bool {
		n++
		if x != 3 || y != 4 {
			t.Errorf("unexpected cell (%d,%d)", x, y)
		}
		return true
	})
	if n != 1 {
		t.Errorf("visited %d cells, want 1", n)
	}

	n = 0
	Traverse(0, 0, 20, 0, func(x, y int) bool {
		n++
		return n < 3
	})
	if n != 3 {
		t.Errorf("early stop visited %d cells, want 3", n)
	}
}

func TestTraverseNegativeDirection(t *testing.T) {
	var last [2]int
	Traverse(4.5, 4.5, -1.5, 0.5, func(x, y int) bool {
		last = [2]int{x, y}
		return true
	})
	if last != [2]int{-2, 0} {
		t.Errorf("last cell = %v, want [-2 0]", last)
	}
}
