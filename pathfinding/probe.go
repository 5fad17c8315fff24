package pathfinding

import "github.com/go-gl/mathgl/mgl64"

// LayerMask selects obstacle categories by bit. Bit i set means layer i is
// reported by a probe.
type LayerMask uint

// AllLayers matches every obstacle layer.
const AllLayers = ^LayerMask(0)

// Has reports whether every bit of other is set in m.
func (m LayerMask) Has(other LayerMask) bool {
	return m&other == other
}

// ObstacleProber answers "is there static geometry at this world position on
// one of these layers?". The probe covers the vertical span
// [pos.Y - verticalProbeDistance, pos.Y + verticalProbeDistance].
type ObstacleProber interface {
	ProbeObstacle(worldPosition mgl64.Vec3, verticalProbeDistance float64, layers LayerMask) bool
}

// ProbeFunc adapts a plain function to ObstacleProber.
type ProbeFunc func(worldPosition mgl64.Vec3, verticalProbeDistance float64, layers LayerMask) bool

// ProbeObstacle calls f.
func (f ProbeFunc) ProbeObstacle(worldPosition mgl64.Vec3, verticalProbeDistance float64, layers LayerMask) bool {
	return f(worldPosition, verticalProbeDistance, layers)
}
