// Package converters maps between wire records and domain entities.
//
// Converters are pure and total: they copy fields across without
// validating them, so an invalid record becomes an invalid entity that
// entity validation can report in full.
package converters
