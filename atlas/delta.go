package atlas

import (
	"image"
	"math"

	"github.com/gogpu/gputypes"
)

// ImageDelta is a set of atlas pixels to upload to the GPU texture.
type ImageDelta struct {
	// Pos is where Image goes in the texture. Zero when Full is set.
	Pos image.Point

	// Image holds coverage values; its bounds start at (0, 0).
	Image *image.Alpha

	// Full reports that the atlas was resized and the texture must be
	// recreated at Image's size rather than patched.
	Full bool
}

// Extent returns the size of the region described by the delta.
func (d ImageDelta) Extent() gputypes.Extent3D {
	b := d.Image.Bounds()
	return gputypes.Extent3D{
		Width:              uint32(b.Dx()), //nolint:gosec // image sizes are non-negative
		Height:             uint32(b.Dy()), //nolint:gosec // image sizes are non-negative
		DepthOrArrayLayers: 1,
	}
}

// Format returns the texel format of the bytes produced by RGBA.
func (d ImageDelta) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Usage returns the texture usage flags a font texture needs.
func (d ImageDelta) Usage() gputypes.TextureUsage {
	return gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
}

// RGBA expands coverage to premultiplied white texels, row-major, four bytes
// per texel. Coverage is gamma-adjusted so thin strokes keep their weight
// after linear blending.
func (d ImageDelta) RGBA() []byte {
	b := d.Image.Bounds()
	out := make([]byte, 0, b.Dx()*b.Dy()*4)
	for y := 0; y < b.Dy(); y++ {
		row := d.Image.Pix[d.Image.PixOffset(0, y):]
		for x := 0; x < b.Dx(); x++ {
			a := coverageLUT[row[x]]
			out = append(out, a, a, a, a)
		}
	}
	return out
}

// coverageLUT maps linear coverage to the alpha written to the texture.
var coverageLUT = func() (lut [256]byte) {
	const gamma = 1.0 / 2.2
	for i := range lut {
		lut[i] = byte(math.Round(math.Pow(float64(i)/255, gamma) * 255))
	}
	return lut
}()
