package normalize

import (
	"errors"
	"fmt"
	"strings"
)

// Default asset URL prefixes.
const (
	DefaultSourcePrefix = "https://cdn.rebrickable.com/media"
	DefaultTargetPrefix = "https://briq-assets.spe.quebec"
)

// ErrUnknownURLPrefix is returned in strict mode for URLs outside the source prefix.
var ErrUnknownURLPrefix = errors.New("url does not start with the source prefix")

// RewriteURL maps a source asset URL onto the target host. An empty URL maps to nil.
// The part of url after sourcePrefix is kept byte for byte. A URL outside
// sourcePrefix is returned unchanged.
func RewriteURL(url, sourcePrefix, targetPrefix string) *string {
	if url == "" {
		return nil
	}
	if rest, ok := strings.CutPrefix(url, sourcePrefix); ok {
		out := targetPrefix + rest
		return &out
	}
	return &url
}

// RewriteURLStrict is RewriteURL but fails on URLs outside sourcePrefix.
func RewriteURLStrict(url, sourcePrefix, targetPrefix string) (*string, error) {
	if url != "" && !strings.HasPrefix(url, sourcePrefix) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownURLPrefix, url)
	}
	return RewriteURL(url, sourcePrefix, targetPrefix), nil
}
