package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *string
	}{
		{"Empty", "", nil},
		{"UnderPrefix", cdn + "/parts/elements/300126.jpg", strPtr(DefaultTargetPrefix + "/parts/elements/300126.jpg")},
		{"PathKeptByteForByte", cdn + "/sets/a%20b/ü?x=1", strPtr(DefaultTargetPrefix + "/sets/a%20b/ü?x=1")},
		{"PrefixOnly", cdn, strPtr(DefaultTargetPrefix)},
		{"OtherHost", "https://example.com/x.jpg", strPtr("https://example.com/x.jpg")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RewriteURL(tt.in, DefaultSourcePrefix, DefaultTargetPrefix)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tt.want, *got)
		})
	}
}

func TestRewriteURLStrict(t *testing.T) {
	got, err := RewriteURLStrict("", DefaultSourcePrefix, DefaultTargetPrefix)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = RewriteURLStrict("https://example.com/x.jpg", DefaultSourcePrefix, DefaultTargetPrefix)
	assert.ErrorIs(t, err, ErrUnknownURLPrefix)
}

func strPtr(s string) *string { return &s }
