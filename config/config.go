// Package config loads the game's config.txt settings file and holds the
// gameplay tuning values.
//
// config.txt is a line-oriented key-value format: `#` starts a comment that
// runs to the end of the line, blank lines are skipped, and data lines have
// the form `key: value`. There is no quoting, escaping or nesting.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CardMode selects which graphics adapter the engine should prefer.
type CardMode int

const (
	// CardDiscrete prefers the first discrete GPU, falling back to whatever
	// is available.
	CardDiscrete CardMode = iota
	// CardMax prefers the adapter with the most capability.
	CardMax
	// CardIndex selects an adapter by enumeration index.
	CardIndex
)

// Card is the parsed value of the `card` key.
type Card struct {
	Mode  CardMode
	Index int // adapter index when Mode == CardIndex
}

func (c Card) String() string {
	switch c.Mode {
	case CardDiscrete:
		return "discrete"
	case CardMax:
		return "max"
	default:
		return strconv.Itoa(c.Index)
	}
}

// ClockMode selects the in-game clock display.
type ClockMode int

const (
	ClockNone ClockMode = iota
	ClockStopwatch
)

// Entry is a single data line of the config file with its literal strings
// preserved. Comment and blank lines produce no entries.
type Entry struct {
	Key   string
	Value string
}

// Config is the typed view of config.txt.
type Config struct {
	Card            Card
	Resources       string // resource directory, e.g. "res/"
	Window          bool   // windowed (true) or fullscreen (false)
	Width           int    // window resolution
	Height          int
	TargetFPS       int // 0 means unlimited
	DisplayControls bool
	DisplayClock    ClockMode
	FOV             float64 // horizontal field of view in degrees
	UIScale         float64
	Dimensions      [4]int  // maze cells along x, y, z, w
	GhostMoveTime   float64 // seconds per ghost step
	FoodCount       int
}

// Default returns the configuration used when a key is absent from the file.
func Default() *Config {
	return &Config{
		Card:            Card{Mode: CardDiscrete},
		Resources:       "res/",
		Window:          true,
		Width:           1280,
		Height:          720,
		TargetFPS:       60,
		DisplayControls: true,
		DisplayClock:    ClockStopwatch,
		FOV:             90,
		UIScale:         1.0,
		Dimensions:      [4]int{5, 5, 3, 3},
		GhostMoveTime:   1.0,
		FoodCount:       10,
	}
}

// Parse reads the line-oriented key-value format and returns the data lines
// in file order with their literal strings unchanged.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("config line %d: missing ':' in %q", lineno, line)
		}
		entries = append(entries, Entry{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return entries, nil
}

// FromEntries builds a typed Config from parsed entries. Unknown keys are an
// error, missing keys keep their defaults, and a repeated key takes its last
// value.
func FromEntries(entries []Entry) (*Config, error) {
	c := Default()
	for _, e := range entries {
		if err := c.set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, err
	}
	return FromEntries(entries)
}

func (c *Config) set(key, value string) error {
	switch key {
	case "card":
		switch value {
		case "discrete":
			c.Card = Card{Mode: CardDiscrete}
		case "max":
			c.Card = Card{Mode: CardMax}
		default:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("card: want discrete, max or an adapter index, got %q", value)
			}
			c.Card = Card{Mode: CardIndex, Index: n}
		}
	case "resources":
		c.Resources = value
	case "window":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("window: want true or false, got %q", value)
		}
		c.Window = b
	case "resolution":
		dims, err := parseDims(value, 2)
		if err != nil {
			return fmt.Errorf("resolution: %w", err)
		}
		c.Width, c.Height = dims[0], dims[1]
	case "target-fps":
		if value == "unlimited" {
			c.TargetFPS = 0
			break
		}
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("target-fps: want a positive integer or unlimited, got %q", value)
		}
		c.TargetFPS = n
	case "display-controls":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("display-controls: want true or false, got %q", value)
		}
		c.DisplayControls = b
	case "display-clock":
		switch value {
		case "none":
			c.DisplayClock = ClockNone
		case "stopwatch":
			c.DisplayClock = ClockStopwatch
		default:
			return fmt.Errorf("display-clock: want none or stopwatch, got %q", value)
		}
	case "fov":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("fov: want degrees, got %q", value)
		}
		c.FOV = f
	case "ui-scale":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("ui-scale: want a scale factor, got %q", value)
		}
		c.UIScale = f
	case "dimensions":
		dims, err := parseDims(value, 4)
		if err != nil {
			return fmt.Errorf("dimensions: %w", err)
		}
		copy(c.Dimensions[:], dims)
	case "ghost-move-time":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("ghost-move-time: want seconds, got %q", value)
		}
		c.GhostMoveTime = f
	case "food-count":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("food-count: want an integer, got %q", value)
		}
		c.FoodCount = n
	default:
		return fmt.Errorf("unknown config key %q", key)
	}
	return nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("resolution: %dx%d is not a valid size", c.Width, c.Height)
	}
	if c.FOV <= 0 || c.FOV >= 180 {
		return fmt.Errorf("fov: %g degrees is outside (0, 180)", c.FOV)
	}
	if c.UIScale <= 0 {
		return fmt.Errorf("ui-scale: %g must be positive", c.UIScale)
	}
	cells := 1
	for _, d := range c.Dimensions {
		if d < 1 {
			return fmt.Errorf("dimensions: every axis must be at least 1, got %v", c.Dimensions)
		}
		cells *= d
	}
	if c.GhostMoveTime <= 0 {
		return fmt.Errorf("ghost-move-time: %g must be positive", c.GhostMoveTime)
	}
	if c.FoodCount < 0 {
		return fmt.Errorf("food-count: %d must not be negative", c.FoodCount)
	}
	// The start cell stays empty, so the maze holds at most cells-1 pellets.
	if c.FoodCount > cells-1 {
		return fmt.Errorf("food-count: %d pellets do not fit in a %dx%dx%dx%d maze (%d cells, one stays free)",
			c.FoodCount, c.Dimensions[0], c.Dimensions[1], c.Dimensions[2], c.Dimensions[3], cells)
	}
	return nil
}

// parseDims parses an axis-separated dimension string like "1280x720" or
// "5x5x3x3" into exactly n integers.
func parseDims(s string, n int) ([]int, error) {
	parts := strings.Split(s, "x")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d axes separated by 'x', got %q", n, s)
	}
	dims := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("axis %d of %q is not an integer", i+1, s)
		}
		dims[i] = v
	}
	return dims, nil
}
