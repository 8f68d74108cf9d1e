package img
import (
	"fmt"
	"bytes"
	"image/png"
)

func HideInPNG( decoy, data []byte ) ([]byte, error) {
	src, err := png.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	nrgba, err := embedPixels( src, data )
	if err != nil {
		return nil, err
	}
	// png is lossless, the lsb plane survives the re-encode
	buf := new(bytes.Buffer)
	if err = png.Encode( buf, nrgba ); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return buf.Bytes(), nil
}

func RevealFromPNG( decoy []byte ) ([]byte, error) {
	src, err := png.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return extractPixels( src )
}
