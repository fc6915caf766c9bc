package cabac

import "image"

const (
	// numChannels is the stored channel count per pixel (RGBA).
	numChannels = 4
	// codedChannels is the number of channels the coder consumes; the
	// alpha channel is carried in the buffer but never compressed.
	codedChannels = 3
)

// Image is a raw frame: a flat row-major RGBA buffer of 8-bit samples.
type Image struct {
	Width  int
	Height int
	Pix    []byte // length Width*Height*4
}

// Validate checks the declared dimensions against the buffer shape.
func (im *Image) Validate() error {
	if im.Width <= 0 || im.Height <= 0 {
		return ErrInvalidDimensions
	}
	if len(im.Pix) != im.Width*im.Height*numChannels {
		return ErrBufferShape
	}
	return nil
}

// FromImage extracts an 8-bit RGBA frame from any stdlib image.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	im := &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*numChannels),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, a := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			i := (y*width + x) * numChannels
			im.Pix[i] = byte(r >> 8)
			im.Pix[i+1] = byte(g >> 8)
			im.Pix[i+2] = byte(b >> 8)
			im.Pix[i+3] = byte(a >> 8)
		}
	}
	return im
}

// volume widens the color channels into a float64 height*width*3 volume,
// dropping alpha.
func (im *Image) volume() []float64 {
	vol := make([]float64, im.Width*im.Height*codedChannels)
	for p := 0; p < im.Width*im.Height; p++ {
		for c := 0; c < codedChannels; c++ {
			vol[p*codedChannels+c] = float64(im.Pix[p*numChannels+c])
		}
	}
	return vol
}
