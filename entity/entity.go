// Package entity defines the capability surface a home-automation host sees:
// the minimal Entity contract every platform member implements, plus small
// optional interfaces for units, icons, and extra state attributes.
//
// Hosts feature-detect capabilities with type assertions. There is no shared
// base type; an entity implements exactly the interfaces it has behavior for.
package entity

// Entity is the minimal contract for anything registered with the host.
type Entity interface {
	// UniqueID returns the stable identifier for this entity. It is
	// deterministic for a given config entry and never changes across
	// restarts.
	UniqueID() string

	// Name returns the display name.
	Name() string

	// State returns the current display value, already converted for the
	// unit system the entity was constructed with. Nil means the value is
	// unknown or unavailable.
	State() any
}

// UnitProvider is implemented by entities whose state carries a unit of
// measurement. An empty string means the state is unitless.
type UnitProvider interface {
	UnitOfMeasurement() string
}

// IconProvider is implemented by entities that suggest a frontend icon.
// An empty string lets the host fall back to its default icon.
type IconProvider interface {
	Icon() string
}

// AttributeProvider is implemented by entities that expose extra state
// attributes alongside the state value.
type AttributeProvider interface {
	Attributes() map[string]any
}

// AddEntitiesFunc registers freshly constructed entities with the host.
// Platform setup calls it at most once per config entry.
type AddEntitiesFunc func(entities []Entity)

// MDI returns the Material Design icon reference for a bare icon name.
func MDI(name string) string {
	return "mdi:" + name
}
