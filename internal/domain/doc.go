// Package domain contains the core entities and value objects for wallcycle.
//
// This package has no dependencies on infrastructure concerns (process
// execution, file system access, logging) and contains only the rules of
// the rotation domain.
//
// # Entities
//
//   - [ImagePath]: A candidate image file; the zero value means "unknown"
//   - [Catalog]: The immutable set of images discovered at startup
//   - [Transition]: How the display tool animates a wallpaper change
//   - [RotationConfig]: Interval and transition, fixed for the process lifetime
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
