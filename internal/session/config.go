package session

import (
	"log"
	"strconv"

	"zona/internal/core"
)

// Config controls the play field and the rules of one session.
type Config struct {
	Layout string

	Width    int
	Height   int
	CellSize int

	Seed int64

	Enemies       int
	Lives         int
	WinThreshold  float64
	PlayerStep    int
	EnemySpeed    float64
	PointsPerCell int

	// Logger receives lifecycle events. Nil discards them.
	Logger *log.Logger
}

// DefaultConfig returns the classic layout configuration.
func DefaultConfig() Config {
	return Config{
		Layout:        "classic",
		Width:         64,
		Height:        40,
		CellSize:      16,
		Seed:          1,
		Enemies:       3,
		Lives:         3,
		WinThreshold:  core.DefaultWinThreshold,
		PlayerStep:    3,
		EnemySpeed:    2.5,
		PointsPerCell: 10,
	}
}

// FromMap populates the default config from flag-style key/value pairs.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base from cfg. Width and height are read from
// "w"/"h" or "width"/"height". Unparseable or out-of-range values keep the
// base value.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := lookup(cfg, "w", "width"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Width = parsed
		}
	}
	if v, ok := lookup(cfg, "h", "height"); ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 3 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["cell_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellSize = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["enemies"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Enemies = parsed
		}
	}
	if v, ok := cfg["lives"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Lives = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed <= 100 {
			c.WinThreshold = parsed
		}
	}
	if v, ok := cfg["player_step"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.PlayerStep = parsed
		}
	}
	if v, ok := cfg["enemy_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.EnemySpeed = parsed
		}
	}
	if v, ok := cfg["points_per_cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PointsPerCell = parsed
		}
	}
	return c
}

// lookup returns the value of the first key present.
func lookup(cfg map[string]string, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := cfg[k]; ok {
			return v, true
		}
	}
	return "", false
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.Width < 3 {
		c.Width = 3
	}
	if c.Height < 3 {
		c.Height = 3
	}
	if c.CellSize <= 0 {
		c.CellSize = core.DefaultCellSize
	}
	if c.Lives <= 0 {
		c.Lives = d.Lives
	}
	if c.Enemies < 0 {
		c.Enemies = 0
	}
	if c.WinThreshold <= 0 || c.WinThreshold > 100 {
		c.WinThreshold = d.WinThreshold
	}
	if c.PlayerStep <= 0 {
		c.PlayerStep = 1
	}
	if c.EnemySpeed < 0 {
		c.EnemySpeed = 0
	}
	// Enemies stay below one cell per tick.
	if limit := float64(c.CellSize) * 0.9; c.EnemySpeed > limit {
		c.EnemySpeed = limit
	}
	return c
}
