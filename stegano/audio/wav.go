package audio
import (
	"fmt"
	"bytes"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	sutil "covert/stegano/util"
	"covert/util"
)

/*
 * wav carrier: one hidden bit per decoded pcm sample, across all
 * channels in interleaved order. the output keeps the original sample
 * rate, channel count and bit depth.
 */

func supportedDepth( depth int ) bool {
	switch depth {
	case 8, 16, 24, 32:
		return true
	}
	return false
}

func decodeWav( decoy []byte ) (*wav.Decoder, *audio.IntBuffer, error) {
	dec := wav.NewDecoder( bytes.NewReader( decoy ) )
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("audio: %w", err)
	}
	return dec, buf, nil
}

func HideInWav( decoy, data []byte ) ([]byte, error) {
	dec := wav.NewDecoder( bytes.NewReader( decoy ) )
	dec.ReadInfo()
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	depth := int(dec.BitDepth)
	if supportedDepth( depth ) == false {
		// we would not know how to write the samples back
		return nil, util.ErrUnsupportedAudioFormat
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	samples := buf.Data
	if len(data) > sutil.RawCapacity( len(samples) ) {
		return nil, util.ErrMessageTooLarge
	}

	bits := sutil.ToBits( data )
	for i, bit := range bits {
		// samples past the stream stay untouched
		samples[i] = ( samples[i] &^ 1 ) | int(bit)
	}

	// the encoder patches riff chunk sizes on close, hence the seekable buffer
	out := &writeSeeker{}
	enc := wav.NewEncoder( out, buf.Format.SampleRate, depth,
		buf.Format.NumChannels, int(dec.WavAudioFormat) )
	buf.SourceBitDepth = depth
	if err = enc.Write( buf ); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	if err = enc.Close(); err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	return out.buf, nil
}

func RevealFromWav( decoy []byte ) ([]byte, error) {
	_, buf, err := decodeWav( decoy )
	if err != nil {
		return nil, err
	}
	samples := buf.Data

	if len(samples) < sutil.LengthBits {
		return nil, util.ErrNoMessageFound
	}
	header := make( []uint8, sutil.LengthBits )
	for i := range header {
		header[i] = uint8( samples[i] & 0x1 )
	}

	length := int( sutil.ParseLength( header ) )
	if length <= 0 || length > sutil.RawCapacity( len(samples) ) {
		return nil, util.ErrNoMessageFound
	}
	totalBits := sutil.LengthBits + 8 * length
	if totalBits > len(samples) {
		return nil, util.ErrNoMessageFound
	}

	bits := make( []uint8, totalBits )
	for i := 0; i < totalBits; i++ {
		bits[i] = uint8( samples[i] & 0x1 )
	}
	return sutil.FromBits( bits[ sutil.LengthBits: ] ), nil
}

func wavCapacity( decoy []byte ) (int, error) {
	_, buf, err := decodeWav( decoy )
	if err != nil {
		return 0, err
	}
	return sutil.RawCapacity( len(buf.Data) ), nil
}
