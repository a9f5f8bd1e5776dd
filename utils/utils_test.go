package utils

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "cat.jpg", "cat.jpg"},
		{"spaces", "my cat.jpg", "my_cat.jpg"},
		{"leading dot", ".hidden", "_hidden"},
		{"unicode", "кот.png", "___.png"},
		{"path", "../../etc/passwd", "_._.._etc_passwd"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, SanitizeFileName(tt.in))
		})
	}
}

func TestCreateThumb(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 400, 100))
	for x := 0; x < 400; x++ {
		for y := 0; y < 100; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), A: 255})
		}
	}
	var in, out bytes.Buffer
	require.NoError(t, png.Encode(&in, img))

	result, err := CreateThumb(100, 50, &in, &out)
	require.NoError(t, err)
	require.Equal(t, uint16(400), result.OldX)
	require.Equal(t, uint16(100), result.OldY)
	require.Equal(t, uint16(100), result.NewX)
	require.Equal(t, uint16(50), result.NewY)
	require.Equal(t, int64(out.Len()), result.ThumbSize)
}

func TestSha512String(t *testing.T) {
	require.Len(t, Sha512String("password"), 128)
	require.Equal(t, Sha512String("a"), Sha512String("a"))
	require.NotEqual(t, Sha512String("a"), Sha512String("b"))
}
