package img
import (
	"fmt"
	"bytes"
	"golang.org/x/image/bmp"
)

func HideInBMP( decoy, data []byte ) ([]byte, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	nrgba, err := embedPixels( src, data )
	if err != nil {
		return nil, err
	}
	buf := new(bytes.Buffer)
	if err = bmp.Encode( buf, nrgba ); err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return buf.Bytes(), nil
}

func RevealFromBMP( decoy []byte ) ([]byte, error) {
	src, err := bmp.Decode( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	return extractPixels( src )
}
