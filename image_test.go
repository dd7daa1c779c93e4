package plotpy

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageDraw(t *testing.T) {
	im := NewImage()
	im.ColormapIndex = 4
	data := [][]float64{
		{0, 1, 2},
		{3, 4, 5},
	}
	assert.NoError(t, im.Draw(data))
	assert.Equal(t,
		"data=np.array([[0,1,2,],[3,4,5,],],dtype=float)\n"+
			"plt.imshow(data,cmap=get_colormap(4))\n",
		im.Buffer())
}

func TestImageDrawNamedColormap(t *testing.T) {
	im := NewImage()
	im.ColormapIndex = 2
	im.ColormapName = "terrain"
	im.Extra = "origin='lower'"
	assert.NoError(t, im.Draw([][]float64{{1}}))
	assert.Contains(t, im.Buffer(), "plt.imshow(data,cmap=plt.get_cmap('terrain'),origin='lower')\n")
}

func TestImageDrawErrors(t *testing.T) {
	im := NewImage()
	assert.True(t, errors.Is(im.Draw(nil), ErrInvalidParameter))
	assert.True(t, errors.Is(im.Draw([][]float64{{1, 2}, {3}}), ErrInvalidParameter))
	assert.Equal(t, "", im.Buffer())
}

func TestImageDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	src.SetRGBA(1, 0, color.RGBA{G: 128, B: 64, A: 255})
	im := NewImage()
	assert.NoError(t, im.DrawImage(src))
	assert.Equal(t,
		"img=np.array([[[255,0,0],[0,128,64],],],dtype=np.uint8)\n"+
			"plt.imshow(img)\n",
		im.Buffer())
}

func TestImageDrawImageDownscale(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 64, 32))
	im := NewImage()
	im.MaxDim = 8
	assert.NoError(t, im.DrawImage(src))
	// 64x32 scaled to fit 8 pixels on the longer side gives 8x4
	rows := strings.Count(im.Buffer(), "],")
	// 4 rows, each with 8 pixel triplets plus the row terminator
	assert.Equal(t, 4*8+4+1, rows)
}

func TestImageDrawImageEmpty(t *testing.T) {
	im := NewImage()
	err := im.DrawImage(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}
