package filmperc

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// DateParseError reports a query date that is not a valid DD-MM-YYYY date.
type DateParseError struct {
	Input string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid date %q (want DD-MM-YYYY): %v", e.Input, e.Err)
}

func (e *DateParseError) Unwrap() error {
	return e.Err
}

// NewDateParseError creates a new DateParseError.
func NewDateParseError(input string, err error) *DateParseError {
	return &DateParseError{Input: input, Err: err}
}

// WeekNotFoundError reports that no play week carries the requested label.
type WeekNotFoundError struct {
	Label string
}

func (e *WeekNotFoundError) Error() string {
	return fmt.Sprintf("no data found for play week %q", e.Label)
}

// MissingColumnError reports a required header absent from a sheet.
type MissingColumnError struct {
	Sheet  string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q is missing from sheet %q", e.Column, e.Sheet)
}

// LoadError represents an error while loading a workbook.
type LoadError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *LoadError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("load %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("load %q (sheet %q): %v", e.Path, e.Sheet, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(path, sheet string, err error) *LoadError {
	return &LoadError{
		Path:  path,
		Sheet: sheet,
		Err:   err,
	}
}
