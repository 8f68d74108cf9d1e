package img
import (
	"fmt"
	"bytes"
	"image/png"
	"golang.org/x/image/bmp"

	sutil "covert/stegano/util"
)

var (
	pngMagic = []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}
	bmpMagic = []byte{0x42, 0x4d}
)

func isPNG( decoy []byte ) bool {
	return len(decoy) >= len(pngMagic) && bytes.Equal( decoy[:len(pngMagic)], pngMagic )
}

func isBMP( decoy []byte ) bool {
	return len(decoy) >= len(bmpMagic) && bytes.Equal( decoy[:len(bmpMagic)], bmpMagic )
}

// embed data into a lossless raster image, keeping its container format.
// jpeg is rejected on purpose: recompression would destroy the lsb plane.
func Hide( decoy, data []byte ) ([]byte, error) {
	if isPNG( decoy ) {
		return HideInPNG( decoy, data )
	}
	if isBMP( decoy ) {
		return HideInBMP( decoy, data )
	}
	return nil, fmt.Errorf("image: unsupported image format")
}

func Reveal( decoy []byte ) ([]byte, error) {
	if isPNG( decoy ) {
		return RevealFromPNG( decoy )
	}
	if isBMP( decoy ) {
		return RevealFromBMP( decoy )
	}
	return nil, fmt.Errorf("image: unsupported image format")
}

// raw byte capacity of the carrier before crypto overhead, 3 bits per pixel
func Capacity( decoy []byte ) (int, error) {
	var width, height int
	if isPNG( decoy ) {
		cfg, err := png.DecodeConfig( bytes.NewReader( decoy ) )
		if err != nil {
			return 0, fmt.Errorf("image: %w", err)
		}
		width, height = cfg.Width, cfg.Height
	} else if isBMP( decoy ) {
		cfg, err := bmp.DecodeConfig( bytes.NewReader( decoy ) )
		if err != nil {
			return 0, fmt.Errorf("image: %w", err)
		}
		width, height = cfg.Width, cfg.Height
	} else {
		return 0, fmt.Errorf("image: unsupported image format")
	}
	return sutil.RawCapacity( width * height * 3 ), nil
}
