package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrNoLevels     = errors.New("levels: no levels")
	ErrInvalidLevel = errors.New("levels: invalid level")
)

// Level is one arena: static tiles, a player spawn point and hostiles.
type Level struct {
	Name     string   `json:"name"`
	Spawn    Point    `json:"spawn"`
	Tiles    []Tile   `json:"tiles"`
	Entities []Entity `json:"entities,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Tile is a box in min/max form. Tile names the tile kind, e.g. "solid".
type Tile struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
	Tile string  `json:"tile"`
}

type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

// Float returns a numeric prop, or def when it is missing or not a number.
func (e Entity) Float(key string, def float64) float64 {
	v, ok := e.Props[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	return f
}

// Validate checks the structural rules every level must satisfy. Tile and
// entity names are checked when the level is built.
func (l *Level) Validate() error {
	if len(l.Tiles) == 0 {
		return fmt.Errorf("%w: %q has no tiles", ErrInvalidLevel, l.Name)
	}
	for i, t := range l.Tiles {
		if t.Tile == "" {
			return fmt.Errorf("%w: %q tile %d has no kind", ErrInvalidLevel, l.Name, i)
		}
	}
	for i, e := range l.Entities {
		if e.Type == "" {
			return fmt.Errorf("%w: %q entity %d has no type", ErrInvalidLevel, l.Name, i)
		}
	}
	return nil
}

// LoadLevelFromFS reads and validates one embedded level file.
func LoadLevelFromFS(name string) (*Level, error) {
	return loadLevel(LevelsFS, name)
}

func loadLevel(fsys fs.FS, name string) (*Level, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(path.Base(name), ".json")
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Names lists the embedded level files in play order.
func Names() ([]string, error) {
	return names(LevelsFS)
}

func names(fsys fs.FS) ([]string, error) {
	out, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, err
	}
	slices.Sort(out)
	return out, nil
}

// LoadAll loads every embedded level in play order.
func LoadAll() ([]*Level, error) {
	return loadAll(LevelsFS)
}

func loadAll(fsys fs.FS) ([]*Level, error) {
	files, err := names(fsys)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoLevels
	}
	out := make([]*Level, 0, len(files))
	for _, f := range files {
		lvl, err := loadLevel(fsys, f)
		if err != nil {
			return nil, err
		}
		out = append(out, lvl)
	}
	return out, nil
}
