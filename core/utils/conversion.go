package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOverflow is returned when a value does not fit the requested integer width.
	ErrOverflow = errors.New("value out of range")
	// ErrInvalid is returned when a value cannot be parsed at all.
	ErrInvalid = errors.New("invalid value")
)

// ParseUint parses an unsigned decimal integer that must fit in bits.
// Surrounding whitespace is ignored.
func ParseUint(s string, bits int) (uint64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, numError(s, bits, err)
	}
	return v, nil
}

// ParseInt parses a signed decimal integer that must fit in bits.
func ParseInt(s string, bits int) (int64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, numError(s, bits, err)
	}
	return v, nil
}

// ToUint16 parses s as a uint16.
func ToUint16(s string) (uint16, error) {
	v, err := ParseUint(s, 16)
	return uint16(v), err
}

// ToUint32 parses s as a uint32.
func ToUint32(s string) (uint32, error) {
	v, err := ParseUint(s, 32)
	return uint32(v), err
}

// ToInt32 parses s as an int32.
func ToInt32(s string) (int32, error) {
	v, err := ParseInt(s, 32)
	return int32(v), err
}

// ToOptionalUint16 parses s as a uint16, mapping an empty string to nil.
func ToOptionalUint16(s string) (*uint16, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := ToUint16(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ToOptionalUint32 parses s as a uint32, mapping an empty string to nil.
func ToOptionalUint32(s string) (*uint32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	v, err := ToUint32(s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ToBool parses the boolean spellings found in catalog exports:
// "True"/"False", "t"/"f" and "1"/"0", case-insensitive.
func ToBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1":
		return true, nil
	case "false", "f", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", ErrInvalid, s)
	}
}

func numError(s string, bits int, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit in %d bits", ErrOverflow, s, bits)
	}
	return fmt.Errorf("%w: %q is not an integer", ErrInvalid, s)
}
