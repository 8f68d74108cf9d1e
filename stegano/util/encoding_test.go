package util
import (
	"bytes"
	"testing"
)

func TestBitsRoundtrip( t *testing.T ) {
	tests := [][]byte{
		[]byte{},
		[]byte{0x00},
		[]byte{0xff},
		[]byte("Hello world!"),
		bytes.Repeat( []byte{0xa5}, 1024 ),
	}

	for _, data := range tests {
		bits := ToBits( data )
		if len(bits) != LengthBits + 8 * len(data) {
			t.Errorf("Invalid stream size: %d != %d", len(bits), LengthBits + 8 * len(data) )
		}
		for _, b := range bits {
			if b > 1 {
				t.Fatalf("Stream contains a non-bit value: %d", b)
			}
		}
		length := ParseLength( bits )
		if int(length) != len(data) {
			t.Errorf("Invalid recovered length: %d != %d", length, len(data) )
		}
		decoded := FromBits( bits[LengthBits:] )
		if bytes.Equal( decoded, data ) == false {
			t.Errorf("Bit encoding spoiled the data. %v != %v", data, decoded)
		}
	}
}

func TestBitOrder( t *testing.T ) {
	// 0x80 must lead with its most significant bit
	bits := ToBits( []byte{0x80} )
	payload := bits[ LengthBits: ]
	if payload[0] != 1 {
		t.Errorf("Expected msb first, got leading bit %d", payload[0])
	}
	for i := 1; i < 8; i++ {
		if payload[i] != 0 {
			t.Errorf("Bit %d of 0x80 should be zero", i)
		}
	}
	// single byte payload means a length prefix of ...0001
	if bits[ LengthBits - 1 ] != 1 {
		t.Errorf("Length prefix must end with bit 1 for a 1 byte payload")
	}
}

func TestRawCapacity( t *testing.T ) {
	tests := []struct{
		slots	int
		want	int
	}{
		{ 300, 33 },	// 10x10 rgb image
		{ 303, 33 },	// remainder bits do not count
		{ 8, -3 },	// may go negative, callers clamp
		{ 80000, 9996 },
	}
	for _, tc := range tests {
		if got := RawCapacity( tc.slots ); got != tc.want {
			t.Errorf("RawCapacity(%d) = %d, want %d", tc.slots, got, tc.want)
		}
	}
}
