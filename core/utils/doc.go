// Package utils provides the checked conversions used when reading catalog tables.
// Every conversion reports overflow separately from malformed input so callers can
// abort a run instead of truncating a value.
package utils
