package main
import (
	"os"
	"fmt"
	"bytes"
	"strings"
	"path/filepath"

	"covert/config"
	"covert/stegano"
	"covert/util"
)

const (
	ConfigFilename = ".covert.yaml"
)

var (
	imageExtensions = []string{ ".png", ".bmp" }
	audioExtensions = []string{ ".wav", ".flac" }
)

func main() {

	if len( os.Args ) < 3 || os.Args[1] == "-h" || os.Args[1] == "--help" {
		help()
		return
	}

	conf := loadConfig()
	logger := util.NewLogger( &conf.Logger )

	command := os.Args[1]
	carrierFile := os.Args[2]

	decoy, err := os.ReadFile( carrierFile )
	if err != nil {
		logger.LogError( err )
		os.Exit(1)
	}

	switch command {
	case "hide":
		err = cmdHide( logger, conf, carrierFile, decoy, os.Args[3:] )
	case "reveal":
		err = cmdReveal( carrierFile, decoy )
	case "capacity":
		err = cmdCapacity( carrierFile, decoy )
	default:
		help()
		return
	}
	if err != nil {
		logger.LogError( err )
		os.Exit(1)
	}
}

func help() {
	fmt.Println("usage: covert <command> <carrier> [message]")
	fmt.Println("commands:")
	fmt.Println("    hide <carrier> [message]    encrypt the message and hide it in the carrier")
	fmt.Println("                                (message is read from stdin when omitted)")
	fmt.Println("    reveal <carrier>            extract and decrypt the hidden message")
	fmt.Println("    capacity <carrier>          print the maximum message size in bytes")
	fmt.Println("carriers: png, bmp images and wav, flac waveforms")
}

func loadConfig() *config.Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return config.DefaultConfig()
	}
	conf, err := config.LoadConfig( filepath.Join( home, ConfigFilename ) )
	if err != nil {
		// no config file is fine, run with defaults
		return config.DefaultConfig()
	}
	return conf
}

func hasExtension( filename string, extensions []string ) bool {
	ext := strings.ToLower( filepath.Ext( filename ) )
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func readMessage( args []string ) (string, error) {
	if len(args) > 0 {
		return strings.Join( args, " " ), nil
	}
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom( os.Stdin ); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func cmdHide( logger *util.Logger, conf *config.Config, carrierFile string, decoy []byte, args []string ) error {

	message, err := readMessage( args )
	if err != nil {
		return err
	}
	message = util.FixUnicode( message )

	passphrase, err := util.GetPasswd("Passphrase: ")
	if err != nil {
		return err
	}
	confirm, err := util.GetPasswd("Confirm passphrase: ")
	if err != nil {
		return err
	}
	if bytes.Equal( passphrase, confirm ) == false {
		return fmt.Errorf("Passphrases do not match.")
	}

	var output []byte
	if hasExtension( carrierFile, imageExtensions ) {
		output, err = stegano.EmbedImage( decoy, message, string(passphrase) )
	} else if hasExtension( carrierFile, audioExtensions ) {
		output, err = stegano.EmbedAudio( decoy, message, string(passphrase) )
	} else {
		err = fmt.Errorf("Unsupported carrier type: %s", carrierFile)
	}
	if err != nil {
		return err
	}

	outFile := util.StegFilename( carrierFile )
	if conf.OutputDir != "" {
		outFile = filepath.Join( conf.OutputDir, filepath.Base( outFile ) )
	}
	if _, err = os.Stat( outFile ); err == nil {
		// never clobber the result of a previous run
		ext := strings.TrimPrefix( filepath.Ext( outFile ), "." )
		base := strings.TrimSuffix( filepath.Base( outFile ), filepath.Ext( outFile ) )
		outFile = filepath.Join( filepath.Dir( outFile ), util.GenFilename( base, ext ) )
	}
	if err = os.WriteFile( outFile, output, 0660 ); err != nil {
		return err
	}
	logger.LogInfo( "Written " + outFile )
	return nil
}

func cmdReveal( carrierFile string, decoy []byte ) error {

	passphrase, err := util.GetPasswd("Passphrase: ")
	if err != nil {
		return err
	}

	var message string
	if hasExtension( carrierFile, imageExtensions ) {
		message, err = stegano.ExtractImage( decoy, string(passphrase) )
	} else if hasExtension( carrierFile, audioExtensions ) {
		message, err = stegano.ExtractAudio( decoy, string(passphrase) )
	} else {
		err = fmt.Errorf("Unsupported carrier type: %s", carrierFile)
	}
	if err != nil {
		return err
	}
	fmt.Println( message )
	return nil
}

func cmdCapacity( carrierFile string, decoy []byte ) error {

	var capacity int
	var err error
	if hasExtension( carrierFile, imageExtensions ) {
		capacity, err = stegano.ImageCapacity( decoy )
	} else if hasExtension( carrierFile, audioExtensions ) {
		capacity, err = stegano.AudioCapacity( decoy )
	} else {
		err = fmt.Errorf("Unsupported carrier type: %s", carrierFile)
	}
	if err != nil {
		return err
	}
	fmt.Println( capacity )
	return nil
}
