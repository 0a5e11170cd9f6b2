// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LineReader: Reads the input file into lines
//   - RecordDecoder: Parses one line into a CustomerRecord
//   - DecoderRegistry: Selects a RecordDecoder by format name
//   - CustomerConverter: Maps records to customers and back
//   - ConfigStore: Persisted defaults (TOML)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, decoder, or converter package
package driven
