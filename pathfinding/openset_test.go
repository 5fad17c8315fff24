package pathfinding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOpenSets_TieBreakAndDecreaseKey drives both strategies through the same
// pushes and cost changes and expects the same pop order.
func TestOpenSets_TieBreakAndDecreaseKey(t *testing.T) {
	for _, kind := range []OpenSetKind{OpenSetLinear, OpenSetHeap} {
		t.Run(kind.String(), func(t *testing.T) {
			f := make([]int, 6)
			s := newOpenSet(kind, len(f), func(i int) int { return f[i] })

			for _, idx := range []int{3, 1, 4, 0} {
				f[idx] = 50
				s.push(idx)
			}
			f[5] = 40
			s.push(5)
			require.Equal(t, 5, s.len())
			assert.True(t, s.contains(4))
			assert.False(t, s.contains(2))

			// decrease-key keeps the original insertion rank
			f[0] = 40
			s.fix(0)

			var got []int
			for s.len() > 0 {
				got = append(got, s.popLowest())
			}
			assert.Equal(t, []int{0, 5, 3, 1, 4}, got)
			assert.False(t, s.contains(0))
		})
	}
}

func TestOpenSets_Reset(t *testing.T) {
	for _, kind := range []OpenSetKind{OpenSetLinear, OpenSetHeap} {
		t.Run(kind.String(), func(t *testing.T) {
			s := newOpenSet(kind, 3, func(int) int { return 0 })
			s.push(0)
			s.push(2)
			s.reset()
			assert.Zero(t, s.len())
			assert.False(t, s.contains(2))
			s.push(2)
			assert.Equal(t, 2, s.popLowest())
		})
	}
}
