package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	mandel "github.com/marben/mandelbench"
	"github.com/marben/mandelbench/render"
	"github.com/stretchr/testify/require"
)

func TestColor(t *testing.T) {
	require.Equal(t, color.RGBA{A: 255}, render.Color(100, 100))
	require.Equal(t, color.RGBA{R: 255, A: 255}, render.Color(0, 100))

	c := render.Color(10, 100)
	require.Equal(t, uint8(255), c.A)
	require.NotEqual(t, color.RGBA{A: 255}, c)
}

func TestImage(t *testing.T) {
	g, err := mandel.GridFromRows([][]int{
		{0, 50},
		{50, 50},
		{50, 0},
	}, 50)
	require.NoError(t, err)

	img := render.Image(g)
	require.Equal(t, image.Rect(0, 0, 2, 3), img.Bounds())

	black := color.RGBA{A: 255}
	// grid row 0 ends up at the bottom
	require.Equal(t, render.Color(0, 50), img.RGBAAt(0, 2))
	require.Equal(t, black, img.RGBAAt(1, 2))
	require.Equal(t, black, img.RGBAAt(0, 0))
	require.Equal(t, render.Color(0, 50), img.RGBAAt(1, 0))
}

func TestThumbnailAndPNG(t *testing.T) {
	g, err := mandel.Compute(mandel.Params{Width: 80, Height: 60, MaxIter: 40, Region: mandel.DefaultRegion})
	require.NoError(t, err)

	thumb := render.Thumbnail(render.Image(g), 20, 15)
	require.Equal(t, image.Rect(0, 0, 20, 15), thumb.Bounds())

	var buf bytes.Buffer
	require.NoError(t, render.EncodePNG(&buf, thumb))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, thumb.Bounds(), decoded.Bounds())
}
