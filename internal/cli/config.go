package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Datums accepted for latitude and longitude arguments.
const (
	DatumOSGB36 = "osgb36"
	DatumWGS84  = "wgs84"
)

// Config holds configuration information.
type Config struct {
	// Datum is the datum of latitudes and longitudes read and printed by the
	// OSGB commands. UTM always uses WGS84.
	Datum string `toml:"datum"`

	// DegreePrecision is the number of decimal places printed for degrees.
	DegreePrecision int `toml:"degree_precision"`

	// MeterPrecision is the number of decimal places printed for eastings,
	// northings and distances.
	MeterPrecision int `toml:"meter_precision"`

	// LogLevel is a logrus level name.
	LogLevel string `toml:"log_level"`
}

// DefaultConfig returns the configuration used when no file or flag sets a
// value.
func DefaultConfig() Config {
	return Config{
		Datum:           DatumOSGB36,
		DegreePrecision: 6,
		MeterPrecision:  3,
		LogLevel:        logrus.WarnLevel.String(),
	}
}

// LoadConfig reads a TOML configuration file over the defaults. An empty
// path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(os.ExpandEnv(path))
	if err != nil {
		return Config{}, fmt.Errorf("gridconv: opening configuration file: %w", err)
	}
	defer f.Close()
	if _, err = toml.NewDecoder(f).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("gridconv: reading configuration file %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

// applyFlags overrides configuration values with flags set on the command
// line.
func (cfg *Config) applyFlags(fs *pflag.FlagSet) error {
	var err error
	if fs.Changed("datum") {
		if cfg.Datum, err = fs.GetString("datum"); err != nil {
			return err
		}
	}
	if fs.Changed("degree-precision") {
		if cfg.DegreePrecision, err = fs.GetInt("degree-precision"); err != nil {
			return err
		}
	}
	if fs.Changed("meter-precision") {
		if cfg.MeterPrecision, err = fs.GetInt("meter-precision"); err != nil {
			return err
		}
	}
	if fs.Changed("log-level") {
		if cfg.LogLevel, err = fs.GetString("log-level"); err != nil {
			return err
		}
	}
	return cfg.validate()
}

func (cfg Config) validate() error {
	switch cfg.Datum {
	case DatumOSGB36, DatumWGS84:
	default:
		return fmt.Errorf("gridconv: invalid datum %q; must be %s or %s", cfg.Datum, DatumOSGB36, DatumWGS84)
	}
	const maxPrecision = 12
	if cfg.DegreePrecision < 0 || cfg.DegreePrecision > maxPrecision {
		return fmt.Errorf("gridconv: degree precision %d out of range", cfg.DegreePrecision)
	}
	if cfg.MeterPrecision < 0 || cfg.MeterPrecision > maxPrecision {
		return fmt.Errorf("gridconv: meter precision %d out of range", cfg.MeterPrecision)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("gridconv: %w", err)
	}
	return nil
}
