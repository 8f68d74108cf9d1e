package audio
import (
	"fmt"
	"bytes"
)

var (
	riffMagic = []byte("RIFF")
	flacMagic = []byte("fLaC")
)

func isWav( decoy []byte ) bool {
	return len(decoy) >= 4 && bytes.Equal( decoy[:4], riffMagic )
}

func isFlac( decoy []byte ) bool {
	return len(decoy) >= 4 && bytes.Equal( decoy[:4], flacMagic )
}

// embed data into an uncompressed or losslessly compressed waveform.
// lossy codecs (mp3 and friends) are rejected, they cannot carry lsb data.
func Hide( decoy, data []byte ) ([]byte, error) {
	if isFlac( decoy ) {
		return HideInFlac( decoy, data )
	}
	if isWav( decoy ) {
		// for now, assume every RIFF file is wav
		return HideInWav( decoy, data )
	}
	return nil, fmt.Errorf("audio: unsupported audio format")
}

func Reveal( decoy []byte ) ([]byte, error) {
	if isFlac( decoy ) {
		return RevealFromFlac( decoy )
	}
	if isWav( decoy ) {
		return RevealFromWav( decoy )
	}
	return nil, fmt.Errorf("audio: unsupported audio format")
}

// raw byte capacity of the carrier before crypto overhead, 1 bit per sample
func Capacity( decoy []byte ) (int, error) {
	if isFlac( decoy ) {
		return flacCapacity( decoy )
	}
	if isWav( decoy ) {
		return wavCapacity( decoy )
	}
	return 0, fmt.Errorf("audio: unsupported audio format")
}
