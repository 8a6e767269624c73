package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBAScale(t *testing.T) {
	tests := []struct {
		name   string
		in     RGBA
		factor float64
		want   RGBA
	}{
		{"full", White, 1, White},
		{"over", White, 2, White},
		{"zero", White, 0, Transparent},
		{"negative", Yellow, -1, Transparent},
		{"half", RGBA{200, 100, 50, 255}, 0.5, RGBA{100, 50, 25, 127}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Scale(tt.factor))
		})
	}
}

func TestRGBAPremultiply(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want RGBA
	}{
		{"opaque", Orange, Orange},
		{"half", RGBA{200, 100, 50, 128}, RGBA{100, 50, 25, 128}},
		{"clear", RGBA{200, 100, 50, 0}, Transparent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Premultiply())
		})
	}
}

func TestRGBBlend(t *testing.T) {
	dst := RGB{0, 0, 0}
	src := RGB{200, 100, 50}

	assert.Equal(t, dst, dst.Blend(src, 0))
	assert.Equal(t, src, dst.Blend(src, 1))
	assert.Equal(t, RGB{100, 50, 25}, dst.Blend(src, 0.5))
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ffff00")
	require.NoError(t, err)
	assert.Equal(t, Yellow, c)
	assert.Equal(t, "#ffff00", c.Hex())

	_, err = ParseHex("yellow")
	assert.Error(t, err)
}

func TestBlendLabEndpoints(t *testing.T) {
	a := RGB{10, 20, 30}
	b := RGB{200, 180, 160}

	assert.Equal(t, a, BlendLab(a, b, 0))
	assert.Equal(t, b, BlendLab(a, b, 1))
}
