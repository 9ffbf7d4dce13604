package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuma(t *testing.T) {
	t.Run("opaque green", func(t *testing.T) {
		assert.Equal(t, uint32(149), Luma(0xFF00FF00))
	})

	t.Run("premultiplies non-opaque alpha", func(t *testing.T) {
		// Green 255 at alpha 128 premultiplies to 128.
		assert.Equal(t, uint32(75), Luma(0x8000FF00))
	})

	t.Run("opaque white saturates", func(t *testing.T) {
		assert.Equal(t, uint32(255), Luma(0xFFFFFFFF))
	})

	t.Run("black is dark regardless of alpha", func(t *testing.T) {
		assert.Equal(t, uint32(0), Luma(0xFF000000))
		assert.Equal(t, uint32(0), Luma(0x00000000))
	})
}

func TestScale(t *testing.T) {
	t.Run("identity at max 255", func(t *testing.T) {
		assert.Equal(t, 149, Scale(149, 255))
	})

	t.Run("truncates toward zero", func(t *testing.T) {
		assert.Equal(t, 74, Scale(149, 128))
	})

	t.Run("zero stays zero", func(t *testing.T) {
		assert.Equal(t, 0, Scale(0, 255))
	})
}

func TestScaled(t *testing.T) {
	assert.Equal(t, 149, Scaled(State{Color: 0xFF00FF00}, 255))
}

func TestIsLit(t *testing.T) {
	assert.True(t, State{Color: 0xFFFF0000}.IsLit())
	assert.True(t, State{Color: 0x00000001}.IsLit(), "alpha is ignored")
	assert.False(t, State{Color: 0xFF000000}.IsLit())
	assert.False(t, StateOff.IsLit())
}
