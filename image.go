// image.go

package plotpy

import (
	"fmt"
	"image"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Image generates an image plot (Matplotlib's imshow) from a matrix of
// scalar values or from a Go image.
type Image struct {
	ColormapIndex int    // colormap index for scalar data (see get_colormap table)
	ColormapName  string // colormap name; overrides ColormapIndex
	Extra         string // extra imshow arguments, comma separated

	// MaxDim, when positive, downscales images handed to DrawImage so
	// that the longer side has at most MaxDim pixels, keeping the
	// generated script small.
	MaxDim int

	buffer strings.Builder
}

// NewImage creates a new Image object.
func NewImage() *Image {
	return &Image{}
}

// Buffer returns the accumulated python commands.
func (im *Image) Buffer() string {
	return im.buffer.String()
}

// Draw displays a matrix of scalar values as an image.
func (im *Image) Draw(data [][]float64) error {
	if len(data) == 0 || len(data[0]) == 0 {
		return invalidParamf("image data must not be empty")
	}
	ncol := len(data[0])
	for i := range data {
		if len(data[i]) != ncol {
			return invalidParamf("image data must be rectangular (row %d)", i)
		}
	}
	writeMatrix(&im.buffer, "data", data)
	fmt.Fprintf(&im.buffer, "plt.imshow(data%s)\n", im.options())
	return nil
}

// DrawImage displays a Go image as an RGB image plot. The pixels are
// embedded in the generated script; set MaxDim to downscale large
// inputs first.
func (im *Image) DrawImage(m image.Image) error {
	b := m.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return invalidParamf("image must not be empty")
	}
	if im.MaxDim > 0 && (w > im.MaxDim || h > im.MaxDim) {
		scale := float64(im.MaxDim) / float64(max(w, h))
		w = max(1, int(float64(w)*scale))
		h = max(1, int(float64(h)*scale))
	}
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), m, b, xdraw.Src, nil)

	im.buffer.WriteString("img=np.array([")
	for y := 0; y < h; y++ {
		im.buffer.WriteByte('[')
		for x := 0; x < w; x++ {
			i := rgba.PixOffset(x, y)
			fmt.Fprintf(&im.buffer, "[%d,%d,%d],", rgba.Pix[i], rgba.Pix[i+1], rgba.Pix[i+2])
		}
		im.buffer.WriteString("],")
	}
	im.buffer.WriteString("],dtype=np.uint8)\n")
	fmt.Fprintf(&im.buffer, "plt.imshow(img%s)\n", im.optionsExtra())
	return nil
}

func (im *Image) options() string {
	var opt strings.Builder
	if im.ColormapName != "" {
		fmt.Fprintf(&opt, ",cmap=plt.get_cmap('%s')", im.ColormapName)
	} else if im.ColormapIndex > 0 {
		fmt.Fprintf(&opt, ",cmap=get_colormap(%d)", im.ColormapIndex)
	}
	opt.WriteString(im.optionsExtra())
	return opt.String()
}

func (im *Image) optionsExtra() string {
	if im.Extra != "" {
		return "," + im.Extra
	}
	return ""
}
