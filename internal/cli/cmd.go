// Package cli implements the gridconv command-line interface.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/geo/s2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/tzneal/gridconv"
)

// app carries the state shared by the subcommands of one invocation.
type app struct {
	cfg Config
	log *logrus.Logger
	out io.Writer
}

// NewRoot returns the gridconv root command. Results are written to out and
// log messages to errOut.
func NewRoot(out, errOut io.Writer) *cobra.Command {
	a := &app{
		cfg: DefaultConfig(),
		log: logrus.New(),
		out: out,
	}
	a.log.SetOutput(errOut)
	a.log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableSorting:   true,
	})

	root := &cobra.Command{
		Use:   "gridconv",
		Short: "Convert between latitude/longitude, OSGB and UTM grid references.",
		Long: `gridconv converts coordinates between latitude and longitude, British
National Grid (OSGB) references and UTM references, and between the OSGB36 and
WGS84 datums.

Configuration can be changed by using a TOML configuration file (and providing
the path to the file using the --config flag) or by using command-line flags,
which take precedence over the file.`,
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setConfig(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String("config", "", "path to a TOML configuration file")
	pf.String("datum", a.cfg.Datum, "datum of latitudes and longitudes for OSGB commands (osgb36 or wgs84)")
	pf.Int("degree-precision", a.cfg.DegreePrecision, "decimal places printed for degrees")
	pf.Int("meter-precision", a.cfg.MeterPrecision, "decimal places printed for meters and kilometers")
	pf.String("log-level", a.cfg.LogLevel, "logging level (debug, info, warning, error)")

	root.AddCommand(
		a.toOSGBCmd(),
		a.fromOSGBCmd(),
		a.toUTMCmd(),
		a.fromUTMCmd(),
		a.datumCmd(),
		a.distanceCmd(),
	)
	return root
}

// setConfig loads the configuration file, applies flag overrides and
// configures the logger.
func (a *app) setConfig(cmd *cobra.Command) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	if err := cfg.applyFlags(cmd.Flags()); err != nil {
		return err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.SetLevel(level)
	a.log.WithFields(logrus.Fields{
		"config": path,
		"datum":  cfg.Datum,
	}).Debug("configuration loaded")
	return nil
}

func (a *app) toOSGBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toosgb LAT LNG",
		Short: "Convert latitude and longitude to an OSGB grid reference.",
		Long: `toosgb prints the easting, northing and six-figure reference of a point
on the British National Grid. Latitude and longitude are in degrees on the
configured datum; WGS84 points are first moved to OSGB36.`,
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := parseLatLng(args[0], args[1])
			if err != nil {
				return err
			}
			if a.cfg.Datum == DatumWGS84 {
				if geo, err = gridconv.ToOSGB36(geo); err != nil {
					return err
				}
			}
			ref := gridconv.ToOSRef(geo)
			six, err := ref.SixFigure()
			if err != nil {
				a.log.WithError(err).Warn("no six-figure reference")
				six = "-"
			}
			a.log.WithFields(logrus.Fields{
				"lat":      geo.Lat.Degrees(),
				"lng":      geo.Lng.Degrees(),
				"easting":  ref.Easting,
				"northing": ref.Northing,
			}).Debug("converted to OSGB")
			_, err = fmt.Fprintf(a.out, "%.*f %.*f %s\n",
				a.cfg.MeterPrecision, ref.Easting, a.cfg.MeterPrecision, ref.Northing, six)
			return err
		},
	}
}

func (a *app) fromOSGBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fromosgb REF | EASTING NORTHING",
		Short: "Convert an OSGB grid reference to latitude and longitude.",
		Long: `fromosgb converts a six-figure grid reference such as TG514131, or an
easting and northing in meters, to latitude and longitude on the configured
datum.`,
		Args:              cobra.RangeArgs(1, 2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ref gridconv.OSRef
			var err error
			if len(args) == 1 {
				ref, err = gridconv.ParseSixFigure(strings.ToUpper(args[0]))
			} else {
				ref, err = parseOSRef(args[0], args[1])
			}
			if err != nil {
				return err
			}
			geo, err := ref.LatLng()
			if err != nil {
				return err
			}
			if a.cfg.Datum == DatumWGS84 {
				if geo, err = gridconv.ToWGS84(geo); err != nil {
					return err
				}
			}
			a.log.WithFields(logrus.Fields{
				"ref": ref.String(),
				"lat": geo.Lat.Degrees(),
				"lng": geo.Lng.Degrees(),
			}).Debug("converted from OSGB")
			return a.printLatLng(geo)
		},
	}
}

func (a *app) toUTMCmd() *cobra.Command {
	return &cobra.Command{
		Use:               "toutm LAT LNG",
		Short:             "Convert WGS84 latitude and longitude to a UTM reference.",
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			geo, err := parseLatLng(args[0], args[1])
			if err != nil {
				return err
			}
			utm, err := gridconv.ToUTMCoord(geo)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"lat": geo.Lat.Degrees(),
				"lng": geo.Lng.Degrees(),
				"utm": utm.String(),
			}).Debug("converted to UTM")
			_, err = fmt.Fprintf(a.out, "%d%c %.*f %.*f\n", utm.Zone, utm.Letter,
				a.cfg.MeterPrecision, utm.Easting, a.cfg.MeterPrecision, utm.Northing)
			return err
		},
	}
}

func (a *app) fromUTMCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fromutm \"ZONE EASTING NORTHING\" | ZONE EASTING NORTHING",
		Short: "Convert a UTM reference to WGS84 latitude and longitude.",
		Long: `fromutm converts a UTM reference such as "31N 500000 0" to WGS84
latitude and longitude. The reference may be given as one argument or three.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 && len(args) != 3 {
				return fmt.Errorf("accepts 1 or 3 arg(s), received %d", len(args))
			}
			return nil
		},
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			utm, err := gridconv.ParseUTMCoord(strings.Join(args, " "))
			if err != nil {
				return err
			}
			geo, err := utm.LatLng()
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"utm": utm.String(),
				"lat": geo.Lat.Degrees(),
				"lng": geo.Lng.Degrees(),
			}).Debug("converted from UTM")
			return a.printLatLng(geo)
		},
	}
}

func (a *app) datumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datum LAT LNG",
		Short: "Move latitude and longitude between the OSGB36 and WGS84 datums.",
		Long: `datum applies the OSGB36/WGS84 Helmert transform. The parameters are
fitted to Great Britain and are accurate to a few meters there only.`,
		Args:              cobra.ExactArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := cmd.Flags().GetString("from")
			if err != nil {
				return err
			}
			to, err := cmd.Flags().GetString("to")
			if err != nil {
				return err
			}
			geo, err := parseLatLng(args[0], args[1])
			if err != nil {
				return err
			}
			transformed, err := transformDatum(geo, from, to)
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"from": from,
				"to":   to,
				"lat":  transformed.Lat.Degrees(),
				"lng":  transformed.Lng.Degrees(),
			}).Debug("transformed datum")
			return a.printLatLng(transformed)
		},
	}
	cmd.Flags().String("from", DatumOSGB36, "datum of the input point (osgb36 or wgs84)")
	cmd.Flags().String("to", DatumWGS84, "datum of the output point (osgb36 or wgs84)")
	return cmd
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance LAT1 LNG1 LAT2 LNG2",
		Short: "Print the great-circle distance between two points in kilometers.",
		Long: `distance prints the great-circle distance between two points on a
spherical Earth of radius 6366.707 km.`,
		Args:              cobra.ExactArgs(4),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p1, err := parseLatLng(args[0], args[1])
			if err != nil {
				return err
			}
			p2, err := parseLatLng(args[2], args[3])
			if err != nil {
				return err
			}
			km := gridconv.Distance(p1, p2)
			a.log.WithFields(logrus.Fields{
				"lat1": p1.Lat.Degrees(),
				"lng1": p1.Lng.Degrees(),
				"lat2": p2.Lat.Degrees(),
				"lng2": p2.Lng.Degrees(),
				"km":   km,
			}).Debug("computed distance")
			_, err = fmt.Fprintf(a.out, "%.*f\n", a.cfg.MeterPrecision, km)
			return err
		},
	}
}

func (a *app) printLatLng(geo s2.LatLng) error {
	_, err := fmt.Fprintf(a.out, "%.*f %.*f\n",
		a.cfg.DegreePrecision, geo.Lat.Degrees(), a.cfg.DegreePrecision, geo.Lng.Degrees())
	return err
}

func transformDatum(geo s2.LatLng, from, to string) (s2.LatLng, error) {
	switch {
	case from == to && (from == DatumOSGB36 || from == DatumWGS84):
		return geo, nil
	case from == DatumOSGB36 && to == DatumWGS84:
		return gridconv.ToWGS84(geo)
	case from == DatumWGS84 && to == DatumOSGB36:
		return gridconv.ToOSGB36(geo)
	}
	return s2.LatLng{}, fmt.Errorf("gridconv: unsupported datum transform %q to %q", from, to)
}

func parseLatLng(lat, lng string) (s2.LatLng, error) {
	latDeg, err := cast.ToFloat64E(lat)
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("gridconv: latitude: %w", err)
	}
	lngDeg, err := cast.ToFloat64E(lng)
	if err != nil {
		return s2.LatLng{}, fmt.Errorf("gridconv: longitude: %w", err)
	}
	return s2.LatLngFromDegrees(latDeg, lngDeg), nil
}

func parseOSRef(easting, northing string) (gridconv.OSRef, error) {
	e, err := cast.ToFloat64E(easting)
	if err != nil {
		return gridconv.OSRef{}, fmt.Errorf("gridconv: easting: %w", err)
	}
	n, err := cast.ToFloat64E(northing)
	if err != nil {
		return gridconv.OSRef{}, fmt.Errorf("gridconv: northing: %w", err)
	}
	return gridconv.OSRef{Easting: e, Northing: n}, nil
}
