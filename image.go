package imapp

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io/fs"
	"os"

	xdraw "golang.org/x/image/draw"

	// Decoders for the common raster formats accepted by Decode.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

// Image errors.
var (
	// ErrNotFound is returned by Decode when the path does not resolve to
	// an existing file. It is reported before any codec work happens.
	ErrNotFound = errors.New("imapp: image file not found")

	// ErrDecode is returned by Decode when the codec rejects the byte
	// stream. The codec's diagnostic is attached via wrapping.
	ErrDecode = errors.New("imapp: image decode failed")

	// ErrOutOfRange is returned by the bounds-checked pixel accessors when
	// the row or column is outside the current dimensions.
	ErrOutOfRange = errors.New("imapp: pixel index out of range")
)

// jpgQuality is the fixed quality used by SaveJPG. JPEG output is always
// lossy; top quality keeps the loss minimal.
const jpgQuality = 100

// Image is a rectangular buffer of Pixel values stored in row-major order,
// with an optional GPU-resident texture copy.
//
// The buffer length always equals height*width. The texture association is
// managed explicitly: Upload creates or refreshes it, Release (or Close)
// tears it down. Image is not safe for concurrent use, and texture
// operations must run on the thread that owns the graphics context.
type Image struct {
	height int
	width  int
	pix    []Pixel
	tex    *boundTexture
}

// NewImage creates an image of the given dimensions with every pixel set to
// opaque white. Negative dimensions are treated as zero.
func NewImage(height, width int) *Image {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	pix := make([]Pixel, height*width)
	for i := range pix {
		pix[i] = White
	}
	return &Image{height: height, width: width, pix: pix}
}

// FromImage creates an Image from any image.Image, forcing the pixels to
// 8-bit RGBA regardless of the source color model.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	im := &Image{
		height: bounds.Dy(),
		width:  bounds.Dx(),
	}
	im.pix = make([]Pixel, im.height*im.width)
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			im.pix[i] = PixelFromColor(src.At(x, y))
			i++
		}
	}
	return im
}

// Decode loads an image from a file. Almost any common raster format is
// accepted (PNG, JPEG, GIF, BMP, TIFF, WebP); the result is always forced
// to 4-channel RGBA.
//
// Decode returns ErrNotFound if the path does not exist, and ErrDecode
// (wrapping the codec's diagnostic) if the bytes cannot be interpreted.
func Decode(path string) (*Image, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
		}
		return nil, fmt.Errorf("imapp: could not stat %q: %w", path, err)
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("imapp: could not open %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDecode, path, err)
	}

	Logger().Debug("decoded image", "path", path, "format", format)
	return FromImage(src), nil
}

// Height returns the image height in pixels.
func (im *Image) Height() int {
	return im.height
}

// Width returns the image width in pixels.
func (im *Image) Width() int {
	return im.width
}

// Len returns the linear size of the pixel buffer (height * width).
func (im *Image) Len() int {
	return len(im.pix)
}

// Pixels returns the backing pixel buffer in row-major order.
// Mutations through the returned slice are visible to the Image.
func (im *Image) Pixels() []Pixel {
	return im.pix
}

// AtIndex returns the pixel at the given linear index.
// No bounds check is performed; an invalid index panics.
func (im *Image) AtIndex(i int) Pixel {
	return im.pix[i]
}

// SetAtIndex sets the pixel at the given linear index.
// No bounds check is performed; an invalid index panics.
func (im *Image) SetAtIndex(i int, p Pixel) {
	im.pix[i] = p
}

// GetPixel returns the pixel at row h, column w without bounds checking.
// The caller is responsible for h < Height and w < Width.
func (im *Image) GetPixel(h, w int) Pixel {
	return im.pix[w+h*im.width]
}

// SetPixel sets the pixel at row h, column w without bounds checking.
// The caller is responsible for h < Height and w < Width.
func (im *Image) SetPixel(h, w int, p Pixel) {
	im.pix[w+h*im.width] = p
}

// PixelAt returns the pixel at row h, column w. It returns ErrOutOfRange
// when h is not in [0, Height) or w is not in [0, Width).
func (im *Image) PixelAt(h, w int) (Pixel, error) {
	if h < 0 || h >= im.height {
		return Pixel{}, fmt.Errorf("%w: row %d, height %d", ErrOutOfRange, h, im.height)
	}
	if w < 0 || w >= im.width {
		return Pixel{}, fmt.Errorf("%w: column %d, width %d", ErrOutOfRange, w, im.width)
	}
	return im.pix[w+h*im.width], nil
}

// SetPixelAt sets the pixel at row h, column w. It returns ErrOutOfRange
// when h is not in [0, Height) or w is not in [0, Width).
func (im *Image) SetPixelAt(h, w int, p Pixel) error {
	if h < 0 || h >= im.height {
		return fmt.Errorf("%w: row %d, height %d", ErrOutOfRange, h, im.height)
	}
	if w < 0 || w >= im.width {
		return fmt.Errorf("%w: column %d, width %d", ErrOutOfRange, w, im.width)
	}
	im.pix[w+h*im.width] = p
	return nil
}

// Clear fills the entire image with a single pixel value.
func (im *Image) Clear(p Pixel) {
	for i := range im.pix {
		im.pix[i] = p
	}
}

// Resize replaces the image dimensions and resizes the backing buffer.
// This is not a resample: existing pixels keep their linear position in
// the buffer, not their visual row/column coordinates, so content is not
// preserved under resize. Pixels added by growing the buffer are opaque
// white. Use Rescale to change dimensions while keeping the content.
func (im *Image) Resize(height, width int) {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	n := height * width
	switch {
	case n <= len(im.pix):
		im.pix = im.pix[:n]
	case n <= cap(im.pix):
		old := len(im.pix)
		im.pix = im.pix[:n]
		for i := old; i < n; i++ {
			im.pix[i] = White
		}
	default:
		pix := make([]Pixel, n)
		copy(pix, im.pix)
		for i := len(im.pix); i < n; i++ {
			pix[i] = White
		}
		im.pix = pix
	}
	im.height = height
	im.width = width
}

// Rescale resamples the image content to the new dimensions using
// bilinear interpolation. Unlike Resize, the visual content is preserved.
func (im *Image) Rescale(height, width int) {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	// The scalers need a source with fast pixel access; hand them the
	// NRGBA view rather than the Image itself.
	src := im.toNRGBA()
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	scaled := FromImage(dst)
	im.height = scaled.height
	im.width = scaled.width
	im.pix = scaled.pix
}

// SavePNG writes the image to a PNG file. PNG output is lossless; the
// encoder is configured for best compression at the cost of encode time.
func (im *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("imapp: could not create %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, im.toNRGBA()); err != nil {
		return fmt.Errorf("imapp: png encode of %q failed: %w", path, err)
	}
	return f.Sync()
}

// SaveJPG writes the image to a JPEG file at top quality.
// JPEG is lossy; pixel values are not preserved exactly.
func (im *Image) SaveJPG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("imapp: could not create %q: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := jpeg.Encode(f, im.toNRGBA(), &jpeg.Options{Quality: jpgQuality}); err != nil {
		return fmt.Errorf("imapp: jpeg encode of %q failed: %w", path, err)
	}
	return f.Sync()
}

// rgba returns the pixel buffer as flat RGBA bytes, 4 bytes per pixel in
// row-major order. This is the layout texture backends consume.
func (im *Image) rgba() []byte {
	data := make([]byte, 4*len(im.pix))
	for i, p := range im.pix {
		data[4*i+0] = p.R
		data[4*i+1] = p.G
		data[4*i+2] = p.B
		data[4*i+3] = p.A
	}
	return data
}

// toNRGBA converts the buffer to an *image.NRGBA for the encoders.
func (im *Image) toNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, im.width, im.height))
	copy(dst.Pix, im.rgba())
	return dst
}

// At implements the image.Image interface.
func (im *Image) At(x, y int) color.Color {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return color.NRGBA{}
	}
	return im.pix[x+y*im.width].Color()
}

// Bounds implements the image.Image interface.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// ColorModel implements the image.Image interface.
func (im *Image) ColorModel() color.Model {
	return color.NRGBAModel
}
