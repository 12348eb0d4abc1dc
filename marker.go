// Package restrict provides small convenience helpers on top of byke:
// marker components, spawn and despawn facades over byke.Commands,
// resource handles and plugins that bind a resources lifecycle to a state.
package restrict

import "github.com/oliverbestmann/byke"

var _ = byke.ValidateComponent[Marker[struct{}]]()

// Marker is a zero sized component used to tag entities for query
// filtering. Every Tag type produces a distinct component type, so a
// marker is declared by naming its tag and aliasing the instantiation:
//
//	type enemyTag struct{}
//	type Enemy = restrict.Marker[enemyTag]
//
// Markers carry no data. They are comparable and can be used as map keys.
// For larger sets of markers, cmd/markergen generates standalone
// declarations instead.
type Marker[Tag any] struct {
	byke.ImmutableComponent[Marker[Tag]]
}
