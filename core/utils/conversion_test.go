package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUint16(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    uint16
		wantErr error
	}{
		{"Zero", "0", 0, nil},
		{"Max", "65535", 65535, nil},
		{"Whitespace", " 42 ", 42, nil},
		{"Overflow", "65536", 0, ErrOverflow},
		{"Negative", "-1", 0, ErrInvalid},
		{"Garbage", "abc", 0, ErrInvalid},
		{"Empty", "", 0, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToUint16(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToInt32(t *testing.T) {
	v, err := ToInt32("-1")
	require.NoError(t, err)
	assert.Equal(t, int32(-1), v)

	_, err = ToInt32("2147483648")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestToOptional(t *testing.T) {
	v, err := ToOptionalUint16("")
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = ToOptionalUint16("1999")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, uint16(1999), *v)

	p, err := ToOptionalUint32("  ")
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = ToOptionalUint32("99999999999")
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestToBool(t *testing.T) {
	for _, s := range []string{"True", "true", "t", "1", "T"} {
		v, err := ToBool(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"False", "f", "0"} {
		v, err := ToBool(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}
	_, err := ToBool("yes")
	assert.ErrorIs(t, err, ErrInvalid)
}
