package img
import (
	"image"

	sutil "covert/stegano/util"
	"covert/util"
)

/*
 * the shared lsb walk over rgba pixels. containers (png, bmp) only
 * decode to an image and re-encode the result losslessly, the hiding
 * itself is identical for all of them.
 *
 * traversal order is row major, channels r, g, b per pixel. the alpha
 * channel is never modified.
 *
 * everything runs on straight (non-premultiplied) channels: image.RGBA
 * is alpha-premultiplied, and the un-premultiply on re-encode would
 * grind the lsb plane whenever alpha < 255.
 */

func toNRGBA( src image.Image ) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	bounds := src.Bounds()
	nrgba := image.NewNRGBA( bounds )
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			nrgba.Set( x, y, src.At( x, y ) )
		}
	}
	return nrgba
}

// overwrite pixel channel lsbs with the length-prefixed bit stream.
// pixels past the end of the stream are left as they are.
func embedPixels( src image.Image, data []byte ) (*image.NRGBA, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if len(data) > sutil.RawCapacity( width * height * 3 ) {
		return nil, util.ErrMessageTooLarge
	}

	nrgba := toNRGBA( src )
	bits := sutil.ToBits( data )

	bitIndex := 0
	for y := 0; y < height && bitIndex < len(bits); y++ {
		for x := 0; x < width && bitIndex < len(bits); x++ {

			px := nrgba.NRGBAAt( bounds.Min.X + x, bounds.Min.Y + y )

			px.R = (px.R & 0xfe) | bits[ bitIndex ]
			bitIndex++

			if bitIndex < len(bits) {
				px.G = (px.G & 0xfe) | bits[ bitIndex ]
				bitIndex++
			}
			if bitIndex < len(bits) {
				px.B = (px.B & 0xfe) | bits[ bitIndex ]
				bitIndex++
			}
			nrgba.SetNRGBA( bounds.Min.X + x, bounds.Min.Y + y, px )
		}
	}
	return nrgba, nil
}

// walk the same order collecting channel lsbs until limit bits are read
func collectBits( nrgba *image.NRGBA, limit int ) []uint8 {
	bounds := nrgba.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	bits := make( []uint8, 0, limit )
	for y := 0; y < height && len(bits) < limit; y++ {
		for x := 0; x < width && len(bits) < limit; x++ {

			px := nrgba.NRGBAAt( bounds.Min.X + x, bounds.Min.Y + y )
			bits = append( bits, px.R & 0x1 )
			if len(bits) < limit {
				bits = append( bits, px.G & 0x1 )
			}
			if len(bits) < limit {
				bits = append( bits, px.B & 0x1 )
			}
		}
	}
	return bits
}

// read back the hidden payload. a missing or implausible header means
// there is nothing hidden in this image, not that it is corrupted.
func extractPixels( src image.Image ) ([]byte, error) {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	nrgba := toNRGBA( src )

	header := collectBits( nrgba, sutil.LengthBits )
	if len(header) < sutil.LengthBits {
		return nil, util.ErrNoMessageFound
	}

	length := int( sutil.ParseLength( header ) )
	if length <= 0 || length > sutil.RawCapacity( width * height * 3 ) {
		return nil, util.ErrNoMessageFound
	}
	totalBits := sutil.LengthBits + 8 * length
	if totalBits > width * height * 3 {
		return nil, util.ErrNoMessageFound
	}

	bits := collectBits( nrgba, totalBits )
	return sutil.FromBits( bits[ sutil.LengthBits: ] ), nil
}
