// Package config resolves lidarview's settings from defaults, an optional
// YAML file, the environment (optionally seeded from a .env file) and
// command line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/lidarview/pkg/lidar"
	"github.com/philipparndt/lidarview/pkg/lidar/txt"
	"github.com/philipparndt/lidarview/pkg/view"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "LIDARVIEW_"

// Config holds all user settings
type Config struct {
	Layout          string  `yaml:"layout"`
	Header          string  `yaml:"header"`
	Strict          bool    `yaml:"strict"`
	Classifier      string  `yaml:"classifier"`
	HeightThreshold float64 `yaml:"height_threshold"`

	Width     int  `yaml:"width"`
	Height    int  `yaml:"height"`
	PointSize int  `yaml:"point_size"`
	Watch     bool `yaml:"watch"`

	ColorMode    string         `yaml:"color"`
	ReturnFilter string         `yaml:"returns"`
	Hide         []string       `yaml:"hide"`
	UniformColor string         `yaml:"uniform_color"`
	Palette      map[int]string `yaml:"palette"` // overrides of the source palette
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Layout:          txt.LayoutXYZRNC.Name,
		Header:          string(txt.HeaderAuto),
		Classifier:      "building",
		HeightThreshold: 2,
		Width:           500,
		Height:          500,
		PointSize:       1,
		ColorMode:       view.ColorUniform.String(),
		ReturnFilter:    view.ReturnsAll.String(),
		UniformColor:    "#ffff00",
	}
}

// LoadFile overlays the settings of a YAML file onto cfg
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays LIDARVIEW_* variables onto cfg
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}
	var errs []error
	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}

	str("LAYOUT", &cfg.Layout)
	str("HEADER", &cfg.Header)
	boolean("STRICT", &cfg.Strict)
	str("CLASSIFIER", &cfg.Classifier)
	if v, ok := lookup(EnvPrefix + "HEIGHT_THRESHOLD"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sHEIGHT_THRESHOLD: %w", EnvPrefix, err))
		} else {
			cfg.HeightThreshold = f
		}
	}
	integer("WIDTH", &cfg.Width)
	integer("HEIGHT", &cfg.Height)
	integer("POINT_SIZE", &cfg.PointSize)
	boolean("WATCH", &cfg.Watch)
	str("COLOR", &cfg.ColorMode)
	str("RETURNS", &cfg.ReturnFilter)
	if v, ok := lookup(EnvPrefix + "HIDE"); ok {
		cfg.Hide = splitList(v)
	}
	str("UNIFORM_COLOR", &cfg.UniformColor)

	return errors.Join(errs...)
}

// Validate rejects unknown names and out of range values
func (c *Config) Validate() error {
	var errs []error
	if _, err := txt.LayoutByName(c.Layout); err != nil {
		errs = append(errs, err)
	}
	if _, err := txt.ParseHeaderMode(c.Header); err != nil {
		errs = append(errs, err)
	}
	if _, err := lidar.LookupPolicy(c.Classifier); err != nil {
		errs = append(errs, err)
	}
	if c.HeightThreshold < 0 {
		errs = append(errs, fmt.Errorf("height threshold must not be negative, got %v", c.HeightThreshold))
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if c.PointSize < 1 {
		errs = append(errs, fmt.Errorf("point size must be at least 1, got %d", c.PointSize))
	}
	if _, err := view.ParseColorMode(c.ColorMode); err != nil {
		errs = append(errs, err)
	}
	if _, err := view.ParseReturnFilter(c.ReturnFilter); err != nil {
		errs = append(errs, err)
	}
	for _, name := range c.Hide {
		if _, err := view.ParseBucket(name); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := view.ParseHexColor(c.UniformColor); err != nil {
		errs = append(errs, err)
	}
	for code, value := range c.Palette {
		if code < 0 || code > 255 {
			errs = append(errs, fmt.Errorf("palette code %d out of range 0-255", code))
		}
		if _, err := view.ParseHexColor(value); err != nil {
			errs = append(errs, fmt.Errorf("palette code %d: %w", code, err))
		}
	}
	return errors.Join(errs...)
}

// ReaderOptions returns the ingestion options. The config must be valid.
func (c *Config) ReaderOptions() txt.Options {
	layout, _ := txt.LayoutByName(c.Layout)
	header, _ := txt.ParseHeaderMode(c.Header)
	return txt.Options{Layout: layout, Header: header, Strict: c.Strict}
}

// Classifier returns the configured classifier for a loaded cloud
func (c *Config) Classifier(cloud *lidar.PointCloud) (*lidar.Classifier, error) {
	factory, err := lidar.LookupPolicy(c.Classifier)
	if err != nil {
		return nil, err
	}
	return lidar.NewClassifier(factory(cloud, c.HeightThreshold)), nil
}

// ColorPolicy returns the color policy with the configured overrides
func (c *Config) ColorPolicy() (*view.ColorPolicy, error) {
	policy := view.NewColorPolicy()

	uniform, err := view.ParseHexColor(c.UniformColor)
	if err != nil {
		return nil, err
	}
	policy.Uniform = uniform

	for code, value := range c.Palette {
		if code < 0 || code > 255 {
			return nil, fmt.Errorf("palette code %d out of range 0-255", code)
		}
		col, err := view.ParseHexColor(value)
		if err != nil {
			return nil, fmt.Errorf("palette code %d: %w", code, err)
		}
		policy.Source[lidar.Code(code)] = col
	}
	return policy, nil
}

// ApplyView sets the initial color mode, return filter and hidden buckets
func (c *Config) ApplyView(state *view.ViewState) error {
	mode, err := view.ParseColorMode(c.ColorMode)
	if err != nil {
		return err
	}
	filter, err := view.ParseReturnFilter(c.ReturnFilter)
	if err != nil {
		return err
	}
	state.ColorMode = mode
	state.ReturnFilter = filter
	for _, name := range c.Hide {
		b, err := view.ParseBucket(name)
		if err != nil {
			return err
		}
		state.Buckets[b] = false
	}
	return nil
}

// Log writes the effective settings at verbosity 1
func (c *Config) Log() {
	if !glog.V(1) {
		return
	}
	out, err := yaml.Marshal(c)
	if err != nil {
		glog.Warningf("failed to print config: %v", err)
		return
	}
	glog.Infof("effective configuration:\n%s", out)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
