package physics

import (
	"fmt"

	"github.com/katalvlaran/tacgrid/pathfinding"
)

// MaxLayers is the number of distinct layers a World can hold.
const MaxLayers = 32

// Layers assigns one bit to each layer name, in registration order.
type Layers struct {
	names []string
	bits  map[string]pathfinding.LayerMask
}

// NewLayers registers names in order; duplicates are ignored.
// Returns ErrTooManyLayers beyond MaxLayers distinct names.
func NewLayers(names ...string) (*Layers, error) {
	l := &Layers{bits: make(map[string]pathfinding.LayerMask, len(names))}
	for _, n := range names {
		if _, err := l.Add(n); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Add registers name if needed and returns its bit.
func (l *Layers) Add(name string) (pathfinding.LayerMask, error) {
	if bit, ok := l.bits[name]; ok {
		return bit, nil
	}
	if len(l.names) >= MaxLayers {
		return 0, fmt.Errorf("%w: %q would be layer %d", ErrTooManyLayers, name, len(l.names)+1)
	}
	bit := pathfinding.LayerMask(1) << uint(len(l.names))
	l.names = append(l.names, name)
	l.bits[name] = bit
	return bit, nil
}

// Bit returns the bit of a registered layer.
func (l *Layers) Bit(name string) (pathfinding.LayerMask, error) {
	bit, ok := l.bits[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, name)
	}
	return bit, nil
}

// Mask ORs the bits of the named layers. With no names it returns 0, which
// matches nothing.
func (l *Layers) Mask(names ...string) (pathfinding.LayerMask, error) {
	var m pathfinding.LayerMask
	for _, n := range names {
		bit, err := l.Bit(n)
		if err != nil {
			return 0, err
		}
		m |= bit
	}
	return m, nil
}

// Names returns the registered layer names in bit order.
func (l *Layers) Names() []string {
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Len returns the number of registered layers.
func (l *Layers) Len() int { return len(l.names) }
