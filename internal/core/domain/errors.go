package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	// Every *ValidationError matches it with errors.Is.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotANumber indicates a decimal value could not be parsed,
	// or parsed to NaN or an infinity.
	ErrNotANumber = errors.New("not a number")

	// ErrNoContent indicates an empty or blank input line.
	ErrNoContent = errors.New("no content to parse")

	// ErrNegativeRadius indicates a radius below zero was supplied.
	ErrNegativeRadius = errors.New("radius must be greater than or equal to 0")

	// ErrUnsupportedType indicates an unknown record format.
	ErrUnsupportedType = errors.New("unsupported type")

	// Input File Errors.

	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = errors.New("specified input file does not exist")

	// ErrNotRegularFile indicates the input path is a directory or device.
	ErrNotRegularFile = errors.New("specified input file is not a valid file")
)
