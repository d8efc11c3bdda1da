package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID_Format(t *testing.T) {
	id := NewID(" User ")
	require.True(t, strings.HasPrefix(id, "user_"), id)

	_, err := ulid.Parse(strings.TrimPrefix(id, "user_"))
	assert.NoError(t, err)
}

func TestNewID_UniqueAndOrdered(t *testing.T) {
	prev := NewID("user")
	for i := 0; i < 1000; i++ {
		next := NewID("user")
		require.Less(t, prev, next)
		prev = next
	}
}

func TestNewID_EmptyPrefixPanics(t *testing.T) {
	assert.Panics(t, func() { NewID("  ") })
}

func TestParseDurationEnv(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "10", want: 10 * time.Second},
		{in: "10s", want: 10 * time.Second},
		{in: "5m", want: 5 * time.Minute},
		{in: `"15s"`, want: 15 * time.Second},
		{in: " '2' ", want: 2 * time.Second},
		{in: "", wantErr: true},
		{in: "soon", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDurationEnv(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
