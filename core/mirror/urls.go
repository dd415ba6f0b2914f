package mirror

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"briq-utils/core/table"
)

// ErrInvalidURL is returned for URLs without a "//" authority separator.
var ErrInvalidURL = errors.New("invalid URL")

// CollectURLs returns the distinct non-empty image URLs of inventory parts,
// sets and minifigs, sorted.
func CollectURLs(s *table.Store) []string {
	urls := make([]string, 0, len(s.InventoryParts)+len(s.Sets)+len(s.Minifigs))
	for _, p := range s.InventoryParts {
		if p.ImgURL != "" {
			urls = append(urls, p.ImgURL)
		}
	}
	for _, set := range s.Sets {
		if set.ImgURL != "" {
			urls = append(urls, set.ImgURL)
		}
	}
	for _, m := range s.Minifigs {
		if m.ImgURL != "" {
			urls = append(urls, m.ImgURL)
		}
	}
	slices.Sort(urls)
	return slices.Compact(urls)
}

// RelativePath returns the authority and path of url, the part after "//".
// It rejects URLs that would escape the cache root.
func RelativePath(url string) (string, error) {
	_, rest, ok := strings.Cut(url, "//")
	if !ok || rest == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}
	clean := path.Clean("/" + rest)[1:]
	if clean == "" || clean != rest {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, url)
	}
	return rest, nil
}

// CachePath returns the local file path of url under cacheDir.
func CachePath(cacheDir, url string) (string, error) {
	rel, err := RelativePath(url)
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, filepath.FromSlash(rel)), nil
}

// ObjectKey returns the bucket key of a cache-relative path.
func ObjectKey(prefix, rel string) string {
	if prefix == "" {
		return rel
	}
	return path.Join(prefix, rel)
}
