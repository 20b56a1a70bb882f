// Package movegen enumerates every unique final placement reachable
// for a piece dropped onto a board, each tagged with a canonical,
// bounded-length input path. The search here mirrors the teacher's
// move ordering/search stack shape (a breadth-first frontier over
// states, expanded by a small, fixed move alphabet) generalized from
// chess moves to the five-token Tetris movement alphabet.
package movegen

import (
	"github.com/coldcore/coldcore/board"
	"github.com/coldcore/coldcore/piece"
)

// Token is one movement primitive applied to a falling piece.
type Token uint8

const (
	Left Token = iota
	Right
	CW
	CCW
	Drop
)

func (t Token) String() string {
	switch t {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case CW:
		return "CW"
	case CCW:
		return "CCW"
	case Drop:
		return "Drop"
	default:
		return "?"
	}
}

// MaxPathLength is the longest canonical input path the generator
// will ever emit; longer paths are discarded rather than truncated.
const MaxPathLength = 32

// Mode selects the movement alphabet and falling rule used while
// exploring reachable states.
type Mode int

const (
	// Mode0G allows unrestricted Left/Right/CW/CCW and a one-cell
	// Drop tick, enabling tucks and spins under overhangs.
	Mode0G Mode = iota
	// Mode20G is Mode0G with every horizontal move immediately
	// followed by a virtual maximal fall, as if under 20G gravity.
	Mode20G
	// ModeHardDropOnly allows rotation at spawn only, followed by
	// exactly one Drop token that means "fall to the floor".
	ModeHardDropOnly
)

// Placement is one unique final locked position for a piece, tagged
// with the canonical path that reaches it.
type Placement struct {
	board.Placement
	Path          []Token
	MovementCount int
	// Result is the board left behind after this placement locked and
	// any clears collapsed; callers that need to keep exploring past
	// this placement (the search tree) continue from Result rather
	// than re-deriving it from Path.
	Result *board.Board
}

// frontierState is a node in the movement BFS: a piece state plus how
// it was reached, used only to classify T-spins at emission time.
type frontierState struct {
	state      board.State
	path       []Token
	rotated    bool
	lastKick   int
}

type visitKey struct {
	x, y int8
	rot  piece.Rotation
}

// Generate returns every unique placement reachable for kind on b,
// under mode and rule, each carrying a canonical input path. b is
// never mutated.
func Generate(b *board.Board, kind piece.Kind, mode Mode, rule board.SpawnRule) ([]Placement, error) {
	spawn := board.Spawn(kind, rule)
	if b.Collides(spawn) {
		return nil, nil // blocked at spawn: no placements (lockout for this piece)
	}

	switch mode {
	case ModeHardDropOnly:
		return generateHardDropOnly(b, spawn)
	case Mode20G:
		return generateBFS(b, spawn, true)
	default:
		return generateBFS(b, spawn, false)
	}
}

func generateHardDropOnly(b *board.Board, spawn board.State) ([]Placement, error) {
	type candidate struct {
		state    board.State
		path     []Token
		rotated  bool
		lastKick int
	}
	seen := map[visitKey]bool{}
	cands := []candidate{{state: spawn, path: nil}}
	seen[key(spawn)] = true

	cur := spawn
	var path []Token
	rotated, lastKick := false, -1
	for i := 0; i < 4; i++ {
		if i > 0 {
			next, kick, ok := b.Rotate(cur, true)
			if !ok {
				break
			}
			cur = next
			rotated, lastKick = true, kick
			path = append(path, CW)
		}
		k := key(cur)
		if !seen[k] {
			seen[k] = true
			p := append([]Token(nil), path...)
			cands = append(cands, candidate{state: cur, path: p, rotated: rotated, lastKick: lastKick})
		}
	}

	results := map[cellsKey]Placement{}
	for _, c := range cands {
		landing := b.GhostDrop(c.state)
		finalPath := append(append([]Token(nil), c.path...), Drop)
		if len(finalPath) > MaxPathLength {
			continue
		}
		rotated := c.rotated && landing == c.state
		emit(results, b, landing, finalPath, rotated, c.lastKick)
	}
	return flatten(results), nil
}

func generateBFS(b *board.Board, spawn board.State, gravity20 bool) ([]Placement, error) {
	start := frontierState{state: spawn}
	visited := map[visitKey]bool{key(spawn): true}
	queue := []frontierState{start}

	results := map[cellsKey]Placement{}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if b.IsSupported(cur.state) {
			emit(results, b, cur.state, cur.path, cur.rotated, cur.lastKick)
		}

		for _, next := range children(b, cur, gravity20) {
			k := key(next.state)
			if visited[k] {
				continue
			}
			visited[k] = true
			queue = append(queue, next)
		}
	}
	return flatten(results), nil
}

// children returns every frontierState reachable from cur by applying
// exactly one token of the movement alphabet.
func children(b *board.Board, cur frontierState, gravity20 bool) []frontierState {
	var out []frontierState

	tryShift := func(dx int8, tok Token) {
		cand := cur.state
		cand.X += dx
		if b.Collides(cand) {
			return
		}
		if gravity20 {
			cand = b.GhostDrop(cand)
		}
		out = append(out, frontierState{
			state: cand, path: appendTok(cur.path, tok), rotated: false, lastKick: -1,
		})
	}
	tryShift(-1, Left)
	tryShift(1, Right)

	tryRotate := func(cw bool, tok Token) {
		cand, kickIdx, ok := b.Rotate(cur.state, cw)
		if !ok {
			return
		}
		out = append(out, frontierState{
			state: cand, path: appendTok(cur.path, tok), rotated: true, lastKick: kickIdx,
		})
	}
	tryRotate(true, CW)
	tryRotate(false, CCW)

	down := cur.state
	down.Y--
	if !b.Collides(down) {
		out = append(out, frontierState{
			state: down, path: appendTok(cur.path, Drop), rotated: false, lastKick: -1,
		})
	}

	return out
}

func appendTok(path []Token, t Token) []Token {
	p := make([]Token, len(path)+1)
	copy(p, path)
	p[len(path)] = t
	return p
}

func key(s board.State) visitKey {
	return visitKey{x: s.X, y: s.Y, rot: s.Rot}
}

// cellsKey identifies a placement for dedup purposes by its final
// occupied cells plus its spin status (spec.md §4.2: "Uniqueness is
// by (final cell set, spin status)").
type cellsKey struct {
	cells [4][2]int8
	spin  board.SpinStatus
}

// collapseDrops merges every run of consecutive Drop tokens into a
// single one. The BFS above walks Drop one board row at a time so it
// can discover tucks and spins reached only by a partial fall, but a
// run of N downward ticks with no shift or rotation between them is,
// to the player (and to the client), a single soft-drop: spec.md §4.2
// only promises a path "describing how to reach [the placement]", not
// a blow-by-blow replay of the search.
func collapseDrops(path []Token) []Token {
	out := make([]Token, 0, len(path))
	for i, t := range path {
		if t == Drop && i > 0 && path[i-1] == Drop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func emit(results map[cellsKey]Placement, b *board.Board, s board.State, path []Token, rotated bool, lastKick int) {
	path = collapseDrops(path)
	if len(path) > MaxPathLength {
		return
	}
	clone := b.Clone()
	placement, err := clone.Lock(s, rotated, lastKick)
	if err != nil {
		return
	}
	ck := cellsKey{cells: sortedCells(s), spin: placement.Spin}
	if existing, ok := results[ck]; ok && existing.MovementCount <= len(path) {
		return // an equal-or-shorter path already claimed this placement
	}
	results[ck] = Placement{
		Placement:     placement,
		Path:          path,
		MovementCount: len(path),
		Result:        clone,
	}
}

func sortedCells(s board.State) [4][2]int8 {
	cells := s.Cells()
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && less(cells[j], cells[j-1]); j-- {
			cells[j], cells[j-1] = cells[j-1], cells[j]
		}
	}
	return cells
}

func less(a, b [2]int8) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}

func flatten(results map[cellsKey]Placement) []Placement {
	out := make([]Placement, 0, len(results))
	for _, p := range results {
		out = append(out, p)
	}
	return out
}
