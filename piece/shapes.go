package piece

// shapes holds the four-cell footprint of every (kind, rotation) pair,
// relative to the bottom-left corner of the kind's bounding box. These
// are the standard guideline ("SRS") piece shapes; every guideline
// Tetris implementation agrees on them, independent of language.
var shapes = map[Kind][numRotations][4]Cell{
	T: {
		North: {{1, 2}, {0, 1}, {1, 1}, {2, 1}},
		East:  {{1, 2}, {1, 1}, {2, 1}, {1, 0}},
		South: {{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		West:  {{1, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
	J: {
		North: {{0, 2}, {0, 1}, {1, 1}, {2, 1}},
		East:  {{1, 2}, {2, 2}, {1, 1}, {1, 0}},
		South: {{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		West:  {{1, 2}, {1, 1}, {0, 0}, {1, 0}},
	},
	L: {
		North: {{2, 2}, {0, 1}, {1, 1}, {2, 1}},
		East:  {{1, 2}, {1, 1}, {1, 0}, {2, 0}},
		South: {{0, 1}, {1, 1}, {2, 1}, {0, 0}},
		West:  {{0, 2}, {1, 2}, {1, 1}, {1, 0}},
	},
	S: {
		North: {{1, 2}, {2, 2}, {0, 1}, {1, 1}},
		East:  {{1, 2}, {1, 1}, {2, 1}, {2, 0}},
		South: {{1, 1}, {2, 1}, {0, 0}, {1, 0}},
		West:  {{0, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
	Z: {
		North: {{0, 2}, {1, 2}, {1, 1}, {2, 1}},
		East:  {{2, 2}, {1, 1}, {2, 1}, {1, 0}},
		South: {{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		West:  {{1, 2}, {0, 1}, {1, 1}, {0, 0}},
	},
	I: {
		North: {{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		East:  {{2, 3}, {2, 2}, {2, 1}, {2, 0}},
		South: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		West:  {{1, 3}, {1, 2}, {1, 1}, {1, 0}},
	},
	O: {
		North: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		East:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		South: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		West:  {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
}

// kickOffset is one (dx, dy) candidate tried, in order, during a rotation.
type kickOffset struct{ DX, DY int8 }

// jlstzKicks holds the five SRS kick candidates for every
// (from, to) rotation pair, shared by J, L, S, T and Z.
var jlstzKicks = map[[2]Rotation][5]kickOffset{
	{North, East}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{East, North}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{East, South}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{South, East}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{South, West}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{West, South}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{West, North}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{North, West}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

// iKicks holds the I piece's own, wider kick table.
var iKicks = map[[2]Rotation][5]kickOffset{
	{North, East}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{East, North}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{East, South}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{South, East}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{South, West}: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{West, South}: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
	{West, North}: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{North, West}: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
}

// Kicks returns the ordered kick offsets to try rotating k from r to
// the rotation "to". O never rotates and returns a single identity
// offset (rotation has no visible effect and never fails).
func Kicks(k Kind, from, to Rotation) [5]kickOffset {
	if k == O {
		return [5]kickOffset{{0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}}
	}
	if k == I {
		return iKicks[[2]Rotation{from, to}]
	}
	return jlstzKicks[[2]Rotation{from, to}]
}
