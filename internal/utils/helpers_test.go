package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   float64
	}{
		{"no rounding needed", 660.00, 660.00},
		{"rounds up above half", 1.006, 1.01},
		{"rounds down below half", 1.004, 1.0},
		{"negative rounds away from zero", -2.675, -2.67},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundCurrency(tt.amount), 0.0001)
		})
	}
}

func TestImagePathRoundTrip(t *testing.T) {
	paths := []string{
		"claims/abc_front.jpg",
		"claims/def_side.jpg",
	}

	joined := JoinImagePaths(paths)
	assert.Equal(t, "claims/abc_front.jpg,claims/def_side.jpg", joined)
	assert.Equal(t, paths, SplitImagePaths(joined))

	assert.Nil(t, SplitImagePaths(""))
	assert.Nil(t, SplitImagePaths("   "))
	assert.Empty(t, JoinImagePaths(nil))
}

func TestTrimAndLower(t *testing.T) {
	assert.Equal(t, "user@example.com", TrimAndLower("  USER@Example.COM "))
	assert.Equal(t, "", TrimAndLower("   "))
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank("  \t "))
	assert.False(t, IsBlank(" x "))
}
