package storage

import (
	"errors"
	"fmt"
)

// NotFoundError means no record exists for the requested id.
type NotFoundError struct {
	Kind string
	Id   string
}

func (it *NotFoundError) Error() string {
	return fmt.Sprintf("no %s record for id %q", it.Kind, it.Id)
}

// ParseError means stored bytes were not a well-formed record of the
// expected shape.
type ParseError struct {
	Kind string
	Id   string
	Err  error
}

func (it *ParseError) Error() string {
	return fmt.Sprintf("malformed %s record %q: %v", it.Kind, it.Id, it.Err)
}

func (it *ParseError) Unwrap() error {
	return it.Err
}

// IoError wraps an underlying read/write/rename failure.
type IoError struct {
	Op  string
	Err error
}

func (it *IoError) Error() string {
	return fmt.Sprintf("storage failure in %s: %v", it.Op, it.Err)
}

func (it *IoError) Unwrap() error {
	return it.Err
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}

func IsIoError(err error) bool {
	var target *IoError
	return errors.As(err, &target)
}
