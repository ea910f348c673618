package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// TuningFile is the prefab holding every gameplay constant.
const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

// LoadSpec decodes the named prefab, disk copy first, into a T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Tuning groups the specs for every entity kind.
type Tuning struct {
	Player PlayerSpec `yaml:"player"`
	Walker WalkerSpec `yaml:"walker"`
	Jumper JumperSpec `yaml:"jumper"`
	Sitter SitterSpec `yaml:"sitter"`
	Laser  LaserSpec  `yaml:"laser"`
}

// LoadTuning loads and validates the gameplay tuning.
func LoadTuning() (Tuning, error) {
	t, err := LoadSpec[Tuning](TuningFile)
	if err != nil {
		return Tuning{}, err
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// MustLoadTuning is LoadTuning for tests and init paths; it panics on failure.
func MustLoadTuning() Tuning {
	t, err := LoadTuning()
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("prefabs: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects non-positive sizes, speeds and laser steps, and jumps
// that do not point upward.
func (t Tuning) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"player.size", t.Player.Size},
		{"player.max_speed", t.Player.MaxSpeed},
		{"player.accel", t.Player.Accel},
		{"player.decel", t.Player.Decel},
		{"walker.size", t.Walker.Size},
		{"walker.speed", t.Walker.Speed},
		{"jumper.size", t.Jumper.Size},
		{"jumper.speed", t.Jumper.Speed},
		{"sitter.size", t.Sitter.Size},
		{"laser.full_life", float64(t.Laser.FullLife)},
		{"laser.decay_step", float64(t.Laser.DecayStep)},
	}
	for _, c := range checks {
		if c.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidTuning, c.name, c.v)
		}
	}
	if t.Player.JumpSpeed >= 0 || t.Jumper.JumpSpeed >= 0 {
		return fmt.Errorf("%w: jump speeds must be negative (upward)", ErrInvalidTuning)
	}
	return nil
}

type PlayerSpec struct {
	Size      float64    `yaml:"size"`
	MaxSpeed  float64    `yaml:"max_speed"`
	Accel     float64    `yaml:"accel"`
	Decel     float64    `yaml:"decel"`
	Gravity   float64    `yaml:"gravity"`
	JumpSpeed float64    `yaml:"jump_speed"`
	Color     *YAMLColor `yaml:"color"`
}

type WalkerSpec struct {
	Size    float64    `yaml:"size"`
	Speed   float64    `yaml:"speed"`
	Gravity float64    `yaml:"gravity"`
	Color   *YAMLColor `yaml:"color"`
}

type JumperSpec struct {
	Size      float64    `yaml:"size"`
	Speed     float64    `yaml:"speed"`
	Gravity   float64    `yaml:"gravity"`
	JumpSpeed float64    `yaml:"jump_speed"`
	Rebound   float64    `yaml:"rebound"` // downward speed after bumping a ceiling
	Color     *YAMLColor `yaml:"color"`
}

type SitterSpec struct {
	Size  float64    `yaml:"size"`
	Color *YAMLColor `yaml:"color"`
}

type LaserSpec struct {
	FullLife  uint8   `yaml:"full_life"`
	DecayStep uint8   `yaml:"decay_step"`
	Width     float32 `yaml:"width"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

// Or returns the wrapped color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
