package util
import (
	"strings"
	"path/filepath"
	"golang.org/x/text/unicode/norm"
)

// terminal input may arrive decomposed, normalize it so the embedded
// text round-trips byte for byte
func FixUnicode( in string ) string {
	return norm.NFC.String( in )
}

// derive an output name next to the carrier: cover.png -> cover-steg.png
func StegFilename( filename string ) string {
	ext := filepath.Ext( filename )
	base := strings.TrimSuffix( filename, ext )
	return base + "-steg" + ext
}
