// Package domain defines the core business entities for nearby.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Degrees: A decimal angle as read from input
//   - Coordinate: A latitude/longitude pair, validated on demand
//   - Customer: A named entity with a location
//   - CustomerRecord: The flat wire shape of a customer
//   - NearbyQuery: The configuration of one pipeline run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
