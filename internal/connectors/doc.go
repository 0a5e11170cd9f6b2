// Package connectors provides implementations of the LineReader interface
// for input sources. Each connector knows how to load the lines of a
// specific source type.
//
// Only the local filesystem is supported.
package connectors
