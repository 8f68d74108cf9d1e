package audio
import (
	"io"
	"fmt"
	"bytes"
	"github.com/mewkiz/flac"

	sutil "covert/stegano/util"
	"covert/util"
)

/*
 * flac carrier. flac is lossless, so the sample lsb plane survives the
 * re-encode just like with wav, one hidden bit per decoded sample.
 */

func HideInFlac( decoy, data []byte ) ([]byte, error) {
	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer stream.Close()

	totalSamples := int(stream.Info.NSamples) * int(stream.Info.NChannels)
	if totalSamples > 0 && len(data) > sutil.RawCapacity( totalSamples ) {
		return nil, util.ErrMessageTooLarge
	}

	bits := sutil.ToBits( data )

	idx := 0
	output := bytes.NewBuffer( []byte{} )
	encoder, err := flac.NewEncoder( output, stream.Info, stream.Blocks... )
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer encoder.Close()

	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
		if err = frame.Parse(); err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}

		for _, subframe := range frame.Subframes {
			for i, sample := range subframe.Samples {
				if idx >= len(bits) {
					break
				}
				subframe.Samples[i] = ( (sample >> 1) << 1 ) | int32( bits[idx] )
				idx++
			}
		}
		if err = encoder.WriteFrame( frame ); err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
	}
	if idx < len(bits) {
		// streaminfo may carry a zero sample count, so the capacity
		// check above is not always enough
		return nil, util.ErrMessageTooLarge
	}
	return output.Bytes(), nil
}

func RevealFromFlac( decoy []byte ) ([]byte, error) {
	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}
	defer stream.Close()

	bits := []uint8{}
	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
		if err = frame.Parse(); err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
		for _, subframe := range frame.Subframes {
			for _, sample := range subframe.Samples {
				bits = append( bits, uint8( sample & 0x1 ) )
			}
		}
	}

	if len(bits) < sutil.LengthBits {
		return nil, util.ErrNoMessageFound
	}
	length := int( sutil.ParseLength( bits ) )
	if length <= 0 || length > sutil.RawCapacity( len(bits) ) {
		return nil, util.ErrNoMessageFound
	}
	totalBits := sutil.LengthBits + 8 * length
	if totalBits > len(bits) {
		return nil, util.ErrNoMessageFound
	}
	return sutil.FromBits( bits[ sutil.LengthBits : totalBits ] ), nil
}

func flacCapacity( decoy []byte ) (int, error) {
	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return 0, fmt.Errorf("audio: %w", err)
	}
	defer stream.Close()
	return sutil.RawCapacity( int(stream.Info.NSamples) * int(stream.Info.NChannels) ), nil
}
