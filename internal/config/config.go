// Package config holds app-wide tunables unmarshalled from Viper
// (defaults, optional YAML file, flag overrides bound in /internal/cmd).
package config

import (
	"github.com/go-faster/errors"
	"github.com/spf13/viper"

	"plasmid-core/assembly"
	"plasmid-core/fasta"
	"plasmid-core/ori"
)

// Config is the root-level settings struct.
type Config struct {
	// ORI detection scan parameters and score weights.
	Ori ori.Config `mapstructure:"ori"`

	// StripPasses bounds the unwanted-site removal re-scan loop.
	StripPasses int `mapstructure:"strip-passes"`

	// LineWidth is the FASTA output wrap column.
	LineWidth int `mapstructure:"line-width"`
}

func setDefaults(v *viper.Viper) {
	def := ori.DefaultConfig()
	v.SetDefault("ori.window", def.Window)
	v.SetDefault("ori.step", def.Step)
	v.SetDefault("ori.box-mismatch", def.BoxMismatch)
	v.SetDefault("ori.at-threshold", def.ATThreshold)
	v.SetDefault("ori.weights.gc-skew", def.Weights.GCSkew)
	v.SetDefault("ori.weights.dnaa-box", def.Weights.DnaABox)
	v.SetDefault("ori.weights.at-content", def.Weights.ATContent)
	v.SetDefault("strip-passes", assembly.DefaultStripPasses)
	v.SetDefault("line-width", fasta.DefaultLineWidth)
}

// Load returns the effective Config: built-in defaults overlaid with the
// optional YAML file at path (path == "" skips the file).
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "read config")
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	switch {
	case c.Ori.Window <= 0:
		return errors.New("ori.window must be > 0")
	case c.Ori.Step <= 0:
		return errors.New("ori.step must be > 0")
	case c.Ori.BoxMismatch < 0:
		return errors.New("ori.box-mismatch must be >= 0")
	case c.Ori.ATThreshold <= 0 || c.Ori.ATThreshold >= 1:
		return errors.New("ori.at-threshold must be in (0,1)")
	case c.StripPasses < 0:
		return errors.New("strip-passes must be >= 0")
	case c.LineWidth <= 0:
		return errors.New("line-width must be > 0")
	}
	return nil
}
