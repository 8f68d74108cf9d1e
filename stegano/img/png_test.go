package img
import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"covert/util"
)

// deterministic carrier with texture in every channel, including
// translucent pixels
func testImage( width, height int ) *image.NRGBA {
	nrgba := image.NewNRGBA( image.Rect( 0, 0, width, height ) )
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nrgba.SetNRGBA( x, y, color.NRGBA{
				uint8( x * 7 ),
				uint8( y * 5 ),
				uint8( x + y ),
				uint8( 255 - 100 * ((x+y) % 2) ),
			})
		}
	}
	return nrgba
}

func encodePNG( t *testing.T, nrgba *image.NRGBA ) []byte {
	buf := new(bytes.Buffer)
	if err := png.Encode( buf, nrgba ); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestPNGRoundtrip( t *testing.T ) {
	decoy := encodePNG( t, testImage( 64, 48 ) )

	tests := [][]byte{
		[]byte{0x00},
		[]byte("Hello world!"),
		bytes.Repeat( []byte{0xa5}, 256 ),
		{0x00, 0xff, 0x80, 0x01, 0x7f},
	}

	for _, data := range tests {
		enc, err := Hide( decoy, data )
		if err != nil {
			t.Errorf("Failed to hide data: %v", err)
			continue
		}
		dec, err := Reveal( enc )
		if err != nil {
			t.Errorf("Failed to reveal data: %v", err)
		} else if bytes.Equal( data, dec ) == false {
			t.Errorf("Steganography spoiled the data. %v != %v", data, dec)
		}
	}
}

func TestPNGLeavesAlphaAndHighBits( t *testing.T ) {
	original := testImage( 32, 32 )
	decoy := encodePNG( t, original )

	enc, err := Hide( decoy, bytes.Repeat( []byte{0xff}, 100 ) )
	if err != nil {
		t.Fatalf("Failed to hide data: %v", err)
	}
	stego, err := png.Decode( bytes.NewReader( enc ) )
	if err != nil {
		t.Fatalf("Failed to decode stego image: %v", err)
	}

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			p0 := original.NRGBAAt( x, y )
			p1 := color.NRGBAModel.Convert( stego.At( x, y ) ).(color.NRGBA)
			if p0.A != p1.A {
				t.Fatalf("Alpha changed at (%d,%d)", x, y)
			}
			// only the least significant bit of each color may move
			if (p0.R &^ 1) != (p1.R &^ 1) ||
				(p0.G &^ 1) != (p1.G &^ 1) ||
				(p0.B &^ 1) != (p1.B &^ 1) {
				t.Fatalf("More than the lsb changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestPNGCapacityBoundary( t *testing.T ) {
	// 40x10 pixels = 1200 bit slots = 146 raw bytes
	decoy := encodePNG( t, testImage( 40, 10 ) )

	capacity, err := Capacity( decoy )
	if err != nil {
		t.Fatalf("Failed to query capacity: %v", err)
	}
	if capacity != 146 {
		t.Fatalf("Unexpected raw capacity: %d", capacity)
	}

	atLimit := bytes.Repeat( []byte{0x33}, capacity )
	enc, err := Hide( decoy, atLimit )
	if err != nil {
		t.Fatalf("Payload at exactly the capacity must fit: %v", err)
	}
	dec, err := Reveal( enc )
	if err != nil || bytes.Equal( dec, atLimit ) == false {
		t.Errorf("Failed to reveal a full carrier: %v", err)
	}

	_, err = Hide( decoy, append( atLimit, 0x33 ) )
	if errors.Is( err, util.ErrMessageTooLarge ) == false {
		t.Errorf("Expected message too large, got %v", err)
	}
}

func TestPNGNoMessage( t *testing.T ) {
	// an untouched carrier must be reported as empty, not decoded into garbage
	decoy := encodePNG( t, image.NewNRGBA( image.Rect( 0, 0, 16, 16 ) ) )
	_, err := Reveal( decoy )
	if errors.Is( err, util.ErrNoMessageFound ) == false {
		t.Errorf("Expected no message, got %v", err)
	}

	// too few pixels to even hold the length header
	tiny := encodePNG( t, testImage( 2, 2 ) )
	_, err = Reveal( tiny )
	if errors.Is( err, util.ErrNoMessageFound ) == false {
		t.Errorf("Expected no message for a tiny image, got %v", err)
	}
}

func TestUnsupportedImage( t *testing.T ) {
	_, err := Hide( []byte{0xff, 0xd8, 0xff, 0xe0}, []byte("data") )
	if err == nil {
		t.Errorf("jpeg must be rejected, lsb data does not survive recompression")
	}
	if errors.Is( err, util.ErrMessageTooLarge ) || errors.Is( err, util.ErrNoMessageFound ) {
		t.Errorf("Carrier codec errors must stay outside the codec taxonomy: %v", err)
	}
}
