package heading

import (
	"math"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config controls how raw sensor yaw readings become a continuous heading.
// All values are in radians.
type Config struct {
	// InitialHeading is the heading before the first sample arrives.  It may
	// be any real number, e.g. a heading restored from a previous run.
	InitialHeading float64 `yaml:"initial_heading"`
	// ZeroOffset is the raw reading that counts as heading 0.
	ZeroOffset float64 `yaml:"zero_offset"`
}

func (c Config) Validate() error {
	if math.IsNaN(c.InitialHeading) || math.IsInf(c.InitialHeading, 0) {
		return errors.Errorf("initial_heading must be finite, not %v", c.InitialHeading)
	}
	if math.IsNaN(c.ZeroOffset) || math.IsInf(c.ZeroOffset, 0) {
		return errors.Errorf("zero_offset must be finite, not %v", c.ZeroOffset)
	}
	return nil
}

func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse heading config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read heading config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "bad heading config %s", path)
	}
	return cfg, nil
}
