// Package wire holds the line format shared by every record decoder:
// the field names and the rules for turning field text into a
// domain.CustomerRecord.
package wire
