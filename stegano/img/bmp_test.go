package img
import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
	"golang.org/x/image/bmp"

	"covert/util"
)

// bmp carriers stay opaque, 24 bit is the interoperable path
func testBMP( t *testing.T, width, height int ) []byte {
	nrgba := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nrgba.SetNRGBA( x, y, color.NRGBA{
				uint8( x * 3 ),
				uint8( y * 11 ),
				uint8( x ^ y ),
				255,
			})
		}
	}
	buf := new(bytes.Buffer)
	if err := bmp.Encode( buf, nrgba ); err != nil {
		t.Fatalf("Failed to encode test bmp: %v", err)
	}
	return buf.Bytes()
}

func TestBMPRoundtrip( t *testing.T ) {
	decoy := testBMP( t, 64, 32 )

	tests := [][]byte{
		[]byte("Hello world!"),
		bytes.Repeat( []byte{0x5a}, 128 ),
	}

	for _, data := range tests {
		enc, err := Hide( decoy, data )
		if err != nil {
			t.Errorf("Failed to hide data: %v", err)
			continue
		}
		if bytes.Equal( enc[:2], bmpMagic ) == false {
			t.Errorf("Output must stay in the bmp container")
		}
		dec, err := Reveal( enc )
		if err != nil {
			t.Errorf("Failed to reveal data: %v", err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
		}
	}
}

func TestBMPTooLarge( t *testing.T ) {
	decoy := testBMP( t, 16, 16 )
	capacity, err := Capacity( decoy )
	if err != nil {
		t.Fatalf("Failed to query capacity: %v", err)
	}
	_, err = Hide( decoy, bytes.Repeat( []byte{1}, capacity + 1 ) )
	if errors.Is( err, util.ErrMessageTooLarge ) == false {
		t.Errorf("Expected message too large, got %v", err)
	}
}

func TestBMPNoMessage( t *testing.T ) {
	// an untouched carrier must never produce output
	decoy := testBMP( t, 16, 16 )
	_, err := Reveal( decoy )
	if err == nil {
		t.Fatalf("Untouched carrier revealed something")
	}
	if errors.Is( err, util.ErrNoMessageFound ) == false {
		t.Errorf("Expected no message, got %v", err)
	}
}
