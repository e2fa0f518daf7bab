package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/lidar/txt"
)

// Flags binds the command line to a Config. Only flags the user actually
// set override the file and environment.
type Flags struct {
	fs         *pflag.FlagSet
	values     Config
	configPath string
	envFile    string
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	d := Default()
	f := &Flags{fs: fs}

	fs.StringVar(&f.configPath, "config", "", "YAML configuration file (env "+EnvPrefix+"CONFIG)")
	fs.StringVar(&f.envFile, "env-file", ".env", "file with "+EnvPrefix+"* variables to load")
	fs.StringVarP(&f.values.Layout, "layout", "l", d.Layout, "record layout: "+strings.Join(txt.LayoutNames(), ", "))
	fs.StringVar(&f.values.Header, "header", d.Header, "header line handling: auto, always, never")
	fs.BoolVar(&f.values.Strict, "strict", d.Strict, "fail on malformed records instead of stopping")
	fs.StringVar(&f.values.Classifier, "classifier", d.Classifier, "classifier policy: "+strings.Join(lidar.PolicyNames(), ", "))
	fs.Float64Var(&f.values.HeightThreshold, "height-threshold", d.HeightThreshold, "ground threshold above the lowest point for the height classifier")
	fs.IntVar(&f.values.Width, "width", d.Width, "window or image width in pixels")
	fs.IntVar(&f.values.Height, "height", d.Height, "window or image height in pixels")
	fs.IntVar(&f.values.PointSize, "point-size", d.PointSize, "point size in pixels")
	fs.BoolVarP(&f.values.Watch, "watch", "w", d.Watch, "reload the input file when it changes")
	fs.StringVarP(&f.values.ColorMode, "color", "c", d.ColorMode, "initial color mode: uniform, source, derived")
	fs.StringVarP(&f.values.ReturnFilter, "returns", "r", d.ReturnFilter, "initial return filter: all, first, last, multiple, single")
	fs.StringSliceVar(&f.values.Hide, "hide", nil, "buckets to hide initially: ground, vegetation, building, other")
	fs.StringVar(&f.values.UniformColor, "uniform-color", d.UniformColor, "color of the uniform color mode (#rrggbb)")

	return f
}

// Load resolves the configuration: defaults, then the YAML file, then the
// environment, then the flags that were set
func (f *Flags) Load() (*Config, error) {
	if err := LoadDotEnv(f.envFile); err != nil {
		return nil, err
	}

	cfg := Default()

	path := f.configPath
	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := LoadFile(path, &cfg); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	f.apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Log()
	return &cfg, nil
}

func (f *Flags) apply(cfg *Config) {
	changed := f.fs.Changed
	if changed("layout") {
		cfg.Layout = f.values.Layout
	}
	if changed("header") {
		cfg.Header = f.values.Header
	}
	if changed("strict") {
		cfg.Strict = f.values.Strict
	}
	if changed("classifier") {
		cfg.Classifier = f.values.Classifier
	}
	if changed("height-threshold") {
		cfg.HeightThreshold = f.values.HeightThreshold
	}
	if changed("width") {
		cfg.Width = f.values.Width
	}
	if changed("height") {
		cfg.Height = f.values.Height
	}
	if changed("point-size") {
		cfg.PointSize = f.values.PointSize
	}
	if changed("watch") {
		cfg.Watch = f.values.Watch
	}
	if changed("color") {
		cfg.ColorMode = f.values.ColorMode
	}
	if changed("returns") {
		cfg.ReturnFilter = f.values.ReturnFilter
	}
	if changed("hide") {
		cfg.Hide = f.values.Hide
	}
	if changed("uniform-color") {
		cfg.UniformColor = f.values.UniformColor
	}
}
