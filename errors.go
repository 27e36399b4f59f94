package xorcrack

import "github.com/pkg/errors"

var (
	// ErrInvalidEncoding is returned when hex or base64 input has a character
	// outside its alphabet.
	ErrInvalidEncoding = errors.New("invalid encoding")
	// ErrInvalidKey is returned for an empty XOR key.
	ErrInvalidKey = errors.New("invalid key")
	// ErrInvalidArgument is returned for out of range widths and key lengths.
	ErrInvalidArgument = errors.New("invalid argument")
)
