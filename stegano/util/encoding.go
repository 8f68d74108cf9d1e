package util
import (
	"encoding/binary"
)

/*
 * transform payloads to/from the embedded bit form.
 *
 * the wire layout inside a carrier is a 32 bit big endian length prefix
 * followed by the payload bytes, every byte expanded to 8 bits with the
 * most significant bit first. a stream therefore always holds exactly
 * 32 + 8*len(payload) bits, in the same order the carrier walks its
 * samples.
 */
const (
	LengthBits = 32
	LengthBytes = 4
)

func appendBits( stream []uint8, b byte ) []uint8 {
	for i := 7; i >= 0; i-- {
		stream = append( stream, (b >> uint(i)) & 1 )
	}
	return stream
}

// expand the length-prefixed payload into single bits
func ToBits( data []byte ) []uint8 {
	stream := make( []uint8, 0, LengthBits + 8 * len(data) )

	prefix := make( []byte, LengthBytes )
	binary.BigEndian.PutUint32( prefix, uint32(len(data)) )
	for _, b := range prefix {
		stream = appendBits( stream, b )
	}
	for _, b := range data {
		stream = appendBits( stream, b )
	}
	return stream
}

// reassemble bytes by or-ing shifted bits back together, 8 bits per byte.
// trailing bits that do not fill a byte are dropped.
func FromBits( bits []uint8 ) []byte {
	result := make( []byte, len(bits) / 8 )
	for i := range result {
		b := byte(0)
		for j := 0; j < 8; j++ {
			b |= bits[ i * 8 + j ] << uint(7 - j)
		}
		result[i] = b
	}
	return result
}

// recover the payload length from the first 32 bits of a stream
func ParseLength( bits []uint8 ) uint32 {
	if len(bits) < LengthBits {
		return 0
	}
	return binary.BigEndian.Uint32( FromBits( bits[:LengthBits] ) )
}

// how many payload bytes fit into the given amount of single-bit slots.
// the prefix is charged as 4 whole bytes against the byte capacity, not
// as 32 bits against the bit budget. keep it that way, the extractor's
// plausibility check uses the same arithmetic.
func RawCapacity( bitSlots int ) int {
	return bitSlots / 8 - LengthBytes
}
