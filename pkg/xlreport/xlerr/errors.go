// Package xlerr defines the error kinds shared by every xlreport stage.
package xlerr

import "errors"

// ErrInvalidArgument indicates an unsupported format, direction, column or cell reference.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrParse indicates a value that does not match its declared input format.
var ErrParse = errors.New("parse error")

// ErrConfiguration indicates a missing or unusable configuration resource such as a locale.
var ErrConfiguration = errors.New("configuration error")

// ErrPrecondition indicates inputs that disagree with each other, e.g. tables vs sheet names.
var ErrPrecondition = errors.New("precondition violation")

// ErrIO indicates the workbook could not be read from or written to disk.
var ErrIO = errors.New("i/o error")
