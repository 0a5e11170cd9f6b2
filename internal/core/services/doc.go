// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - CoordinateService: great-circle math
//   - CustomerService: validation and range filtering
//   - NearbyService: the input file to customers pipeline
//   - SettingsService: persisted CLI defaults
package services
