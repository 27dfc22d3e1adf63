// SPDX-License-Identifier: MIT

package experiment

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rcrit/connectivity"
	"github.com/katalvlaran/rcrit/density"
	"github.com/katalvlaran/rcrit/geom"
	"github.com/katalvlaran/rcrit/radius"
	"github.com/katalvlaran/rcrit/sampler"
)

// ErrInvalidConfig wraps every validation failure reported by Config.Validate.
var ErrInvalidConfig = errors.New("experiment: invalid config")

// Density kinds accepted in DensityConfig.Kind.
const (
	KindUniform  = "uniform"
	KindHotspots = "hotspots"
	KindNoise    = "noise"
)

// DefaultNoiseScale is used when a noise density leaves noise_scale unset.
const DefaultNoiseScale = 0.03

// HotspotConfig is the YAML form of density.Hotspot.
type HotspotConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Sigma  float64 `yaml:"sigma" validate:"gt=0"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// DensityConfig selects the node density and its envelope height zMax.
type DensityConfig struct {
	Kind       string          `yaml:"kind" validate:"oneof=uniform hotspots noise"`
	Level      float64         `yaml:"level" validate:"required_if=Kind uniform,gte=0"` // uniform level (> 0), hotspot background
	Hotspots   []HotspotConfig `yaml:"hotspots" validate:"required_if=Kind hotspots,dive"`
	NoiseSeed  int64           `yaml:"noise_seed"`
	NoiseScale float64         `yaml:"noise_scale" validate:"gte=0"`
	ZMax       float64         `yaml:"z_max" validate:"gte=0"` // 0 ⇒ grid scan
	ScanSteps  int             `yaml:"scan_steps" validate:"gte=2"`
	Margin     float64         `yaml:"margin" validate:"gte=0"`
}

// Config describes one experiment run.
type Config struct {
	Sizes       []int         `yaml:"sizes" validate:"required,min=1,dive,gte=1"`
	Trials      int           `yaml:"trials" validate:"gte=1"`
	Tolerance   float64       `yaml:"tolerance" validate:"gt=0"`
	Seed        int64         `yaml:"seed"`
	Workers     int           `yaml:"workers" validate:"gte=1"`
	Epsilon     float64       `yaml:"epsilon" validate:"gt=0,lt=1"`
	BatchFactor int           `yaml:"batch_factor" validate:"gte=1,lte=10000"`
	MaxRounds   int           `yaml:"max_rounds" validate:"gte=1"`
	Method      string        `yaml:"method" validate:"omitempty,oneof=spectral components"`
	Density     DensityConfig `yaml:"density"`
}

// DefaultConfig returns a single-size uniform run with library defaults.
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{50},
		Trials:      100,
		Tolerance:   radius.DefaultTolerance,
		Seed:        sampler.DefaultSeed,
		Workers:     runtime.NumCPU(),
		Epsilon:     connectivity.DefaultEpsilon,
		BatchFactor: sampler.DefaultBatchFactor,
		MaxRounds:   sampler.DefaultMaxRounds,
		Method:      connectivity.MethodSpectral.String(),
		Density: DensityConfig{
			Kind:      KindUniform,
			Level:     1,
			ScanSteps: density.DefaultScanSteps,
			Margin:    density.DefaultMargin,
		},
	}
}

// LoadConfig decodes the YAML file at path over DefaultConfig and validates it.
// An empty file yields the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig is LoadConfig for an already opened reader.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("DecodeConfig: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// structValidator returns the shared validator; field names in errors follow the yaml tags.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})

	return validate
}

// Validate checks every field against its tag rules.
// Errors: ErrInvalidConfig listing each failing field.
func (c Config) Validate() error {
	err := structValidator().Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("%s: failed %s", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag())
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Build returns the density function and the envelope height over dom.
// zMax is ZMax when set, otherwise density.ScanMax(f, dom, ScanSteps, Margin).
func (d DensityConfig) Build(dom geom.Domain) (density.Func, float64, error) {
	var (
		f   density.Func
		err error
	)
	switch d.Kind {
	case KindUniform:
		f, err = density.Uniform(d.Level)
	case KindHotspots:
		spots := make([]density.Hotspot, len(d.Hotspots))
		for i, h := range d.Hotspots {
			spots[i] = density.Hotspot{X: h.X, Y: h.Y, Sigma: h.Sigma, Weight: h.Weight}
		}
		f, err = density.Hotspots(d.Level, spots...)
	case KindNoise:
		scale := d.NoiseScale
		if scale == 0 {
			scale = DefaultNoiseScale
		}
		f, err = density.Noise(d.NoiseSeed, scale)
	default:
		err = fmt.Errorf("%w: density kind %q", ErrInvalidConfig, d.Kind)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("DensityConfig.Build: %w", err)
	}

	if d.ZMax > 0 {
		return f, d.ZMax, nil
	}
	zMax, err := density.ScanMax(f, dom, d.ScanSteps, d.Margin)
	if err != nil {
		return nil, 0, fmt.Errorf("DensityConfig.Build: %w", err)
	}

	return f, zMax, nil
}
