package frx

import (
	"errors"

	"vb6parse/internal/diag"
)

var (
	ErrOffsetOutOfBounds = errors.New("offset out of bounds")
	ErrHeaderTruncated   = errors.New("header truncated")
	ErrSizeMismatch      = errors.New("header sizes disagree")
	ErrBadSignature      = errors.New("bad signature")
	ErrCorruptList       = errors.New("corrupt list items")
)

// Code maps a resource error to its diagnostic code.
func Code(err error) diag.Code {
	switch {
	case errors.Is(err, ErrOffsetOutOfBounds):
		return diag.ResOffsetOutOfBounds
	case errors.Is(err, ErrHeaderTruncated):
		return diag.ResHeaderTruncated
	case errors.Is(err, ErrSizeMismatch):
		return diag.ResSizeMismatch
	case errors.Is(err, ErrBadSignature):
		return diag.ResBadSignature
	case errors.Is(err, ErrCorruptList):
		return diag.ResCorruptList
	}
	return diag.ResMissingFile
}
