package eval

import "github.com/coldcore/coldcore/board"

// BoardFeatures is the engineered feature set extracted from a static
// board, before being combined with Weights.
type BoardFeatures struct {
	Height     int
	TopHalf    int
	TopQuarter int

	Bumpiness      int
	RowTransitions int

	CavityCells   int
	OverhangCells int
	CoveredCells  int

	WellDepth  int
	WellColumn [10]int
	Tslot      [4]int
}

// Extract computes every static feature of b.
func Extract(b *board.Board) BoardFeatures {
	heights := b.ColumnHeights()

	var f BoardFeatures
	for _, h := range heights {
		f.Height += h
	}
	f.TopHalf = cellsAtOrAbove(b, board.VisibleHeight/2)
	f.TopQuarter = cellsAtOrAbove(b, board.VisibleHeight*3/4)
	f.Bumpiness = bumpiness(heights)
	f.RowTransitions = rowTransitions(b)
	f.CavityCells = cavityCells(b)
	f.OverhangCells = overhangCells(b)
	f.CoveredCells = coveredCells(b)
	f.WellDepth, f.WellColumn = wells(heights)
	f.Tslot = tslots(heights)
	return f
}

func cellsAtOrAbove(b *board.Board, fromRow int) int {
	n := 0
	for y := fromRow; y < board.VisibleHeight; y++ {
		for x := 0; x < board.Width; x++ {
			if b.Filled(x, y) {
				n++
			}
		}
	}
	return n
}

func bumpiness(heights [board.Width]int) int {
	sum := 0
	for i := 0; i < len(heights)-1; i++ {
		d := heights[i] - heights[i+1]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// rowTransitions counts, for every row up to the stack's surface,
// filled<->empty transitions scanning left to right with the board's
// side walls counted as filled, the classic Dellacherie-style metric.
func rowTransitions(b *board.Board) int {
	top := 0
	for x := 0; x < board.Width; x++ {
		if h := columnHeight(b, x); h > top {
			top = h
		}
	}

	transitions := 0
	for y := 0; y < top; y++ {
		prev := true // left wall
		for x := 0; x < board.Width; x++ {
			cur := b.Filled(x, y)
			if cur != prev {
				transitions++
			}
			prev = cur
		}
		if !prev { // right wall
			transitions++
		}
	}
	return transitions
}

func columnHeight(b *board.Board, x int) int {
	for y := board.TotalHeight - 1; y >= 0; y-- {
		if b.Filled(x, y) {
			return y + 1
		}
	}
	return 0
}

// cavityCells counts empty cells with a filled cell immediately above
// in the same column: pockets that cannot be reached by a piece
// falling straight down because the very next cell up is already
// capped. This is a stricter, shallower notion than coveredCells
// (which counts any filled cell above, however far).
func cavityCells(b *board.Board) int {
	n := 0
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.TotalHeight-1; y++ {
			if !b.Filled(x, y) && b.Filled(x, y+1) {
				n++
			}
		}
	}
	return n
}

// overhangCells counts filled cells with empty space directly below
// them: the cells actually responsible for covering a hole.
func overhangCells(b *board.Board) int {
	n := 0
	for x := 0; x < board.Width; x++ {
		for y := 1; y < board.TotalHeight; y++ {
			if b.Filled(x, y) && !b.Filled(x, y-1) {
				n++
			}
		}
	}
	return n
}

// coveredCells counts empty cells with any filled cell above them
// anywhere in the column (the classic "hole" count), truncated to
// the column's own height so an empty column never contributes.
func coveredCells(b *board.Board) int {
	n := 0
	for x := 0; x < board.Width; x++ {
		h := columnHeight(b, x)
		filledAbove := false
		for y := h - 1; y >= 0; y-- {
			if b.Filled(x, y) {
				filledAbove = true
				continue
			}
			if filledAbove {
				n++
			}
		}
	}
	return n
}

// wells returns the deepest well (a column at least one cell lower
// than both neighbours) and, per column, how deep that column's own
// well is relative to its neighbours. The side walls count as
// neighbours taller than any column, so an edge column's well depth
// is measured against its one inner neighbour.
func wells(heights [board.Width]int) (depth int, perColumn [10]int) {
	for x := 0; x < board.Width; x++ {
		left, right := board.TotalHeight, board.TotalHeight
		if x > 0 {
			left = heights[x-1]
		}
		if x < board.Width-1 {
			right = heights[x+1]
		}
		neighbour := left
		if right < neighbour {
			neighbour = right
		}
		d := neighbour - heights[x]
		if d < 0 {
			d = 0
		}
		perColumn[x] = d
		if d > depth {
			depth = d
		}
	}
	return depth, perColumn
}

// tslots approximates the number of T-spin-capable notches whose
// overhang is k rows deep, for k in [0,3]. A notch is a column at
// least two cells lower than both neighbours; k is how many of the
// rows immediately above the notch are capped on both sides, up to 3.
func tslots(heights [board.Width]int) (out [4]int) {
	for x := 1; x < board.Width-1; x++ {
		left, right, h := heights[x-1], heights[x+1], heights[x]
		if left < h+2 || right < h+2 {
			continue
		}
		k := left - h - 2
		if right-h-2 < k {
			k = right - h - 2
		}
		if k > 3 {
			k = 3
		}
		if k < 0 {
			k = 0
		}
		out[k]++
	}
	return out
}
