// Package decoders provides implementations of the RecordDecoder interface
// for each supported input format, and the registry that selects between them.
//
// Decoders are registered with the Registry at startup:
//
//   - jsonline: one JSON object per line (default)
//   - yamlline: one YAML flow mapping per line
//
// Both share the wire package, which turns the raw field text into a
// domain.CustomerRecord.
package decoders
