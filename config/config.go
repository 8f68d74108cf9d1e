package config
import (
	"os"
	"gopkg.in/yaml.v3"

	"covert/util"
)

// settings for the command line shell. the codec itself takes no
// configuration, all cryptographic parameters are fixed.
type Config struct {
	Logger		util.LoggerInfo	`yaml:"logger"`
	OutputDir	string		`yaml:"output_dir"`	// empty = next to the carrier
}

func DefaultConfig() *Config {
	return &Config{
		Logger: util.LoggerInfo{
			IsColored: true,
			Mode: util.Error | util.Warning,
		},
	}
}

func LoadConfig( filename string ) (*Config, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}
	conf := DefaultConfig()
	if err = yaml.Unmarshal( data, conf ); err != nil {
		return nil, err
	}
	return conf, nil
}

func SaveConfig( filename string, conf *Config ) error {
	data, err := yaml.Marshal( conf )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}
