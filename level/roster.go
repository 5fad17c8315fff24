package level

import "github.com/katalvlaran/tacgrid/grid"

// Roster indexes units by the cell they stand on.
type Roster struct {
	byCell map[grid.Coordinate]Unit
}

// Roster returns the document's units indexed by cell.
func (d *Document) Roster() *Roster {
	r := &Roster{byCell: make(map[grid.Coordinate]Unit, len(d.Units))}
	for _, u := range d.Units {
		r.byCell[u.Cell()] = u
	}
	return r
}

// Occupied reports whether a unit stands on c.
func (r *Roster) Occupied(c grid.Coordinate) bool {
	_, ok := r.byCell[c]
	return ok
}

// At returns the unit standing on c.
func (r *Roster) At(c grid.Coordinate) (Unit, bool) {
	u, ok := r.byCell[c]
	return u, ok
}

// HostileTo returns a predicate matching cells that hold a unit on the other
// side from u.
func (r *Roster) HostileTo(u Unit) func(c grid.Coordinate) bool {
	return func(c grid.Coordinate) bool {
		other, ok := r.byCell[c]
		return ok && other.Enemy != u.Enemy
	}
}

// Move relocates the unit on from to to. It reports false if from is empty
// or to is taken.
func (r *Roster) Move(from, to grid.Coordinate) bool {
	u, ok := r.byCell[from]
	if !ok {
		return false
	}
	if _, taken := r.byCell[to]; taken {
		return false
	}
	delete(r.byCell, from)
	u.At = [2]int{to.X, to.Z}
	r.byCell[to] = u
	return true
}

// Len returns the number of units.
func (r *Roster) Len() int { return len(r.byCell) }
