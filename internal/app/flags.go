package app

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"zona/internal/session"
	"zona/internal/store"
)

// Config represents the command-line parameters shared by the front ends.
type Config struct {
	Layout    string
	Scale     int
	TPS       int
	Seed      int64
	Enemies   int
	Lives     int
	Threshold float64
	DB        string
}

// NewConfig returns a Config populated with sensible defaults. Negative
// Enemies and zero Lives or Threshold keep the layout's own values.
func NewConfig() *Config {
	return &Config{Layout: "classic", Scale: 1, TPS: 60, Seed: 1, Enemies: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Layout, "layout", c.Layout, "board layout ("+strings.Join(session.LayoutNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "zoom multiplier applied to the layout cell size")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for enemy placement")
	fs.IntVar(&c.Enemies, "enemies", c.Enemies, "enemy count (-1 keeps the layout default)")
	fs.IntVar(&c.Lives, "lives", c.Lives, "lives per round (0 keeps the default)")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "claimed percentage that wins (0 keeps the default)")
	fs.StringVar(&c.DB, "db", c.DB, "SQLite file for result history (empty disables it)")
}

// Overrides converts the flags into layout factory parameters.
func (c *Config) Overrides() map[string]string {
	m := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Enemies >= 0 {
		m["enemies"] = strconv.Itoa(c.Enemies)
	}
	if c.Lives > 0 {
		m["lives"] = strconv.Itoa(c.Lives)
	}
	if c.Threshold > 0 {
		m["threshold"] = strconv.FormatFloat(c.Threshold, 'f', -1, 64)
	}
	return m
}

// NewSession builds the configured layout and attaches logger to it.
func (c *Config) NewSession(logger *log.Logger) (*session.Session, error) {
	factory, ok := session.Layouts()[c.Layout]
	if !ok {
		return nil, fmt.Errorf("unknown layout %q (available: %s)", c.Layout, strings.Join(session.LayoutNames(), ", "))
	}
	s := factory(c.Overrides())
	s.SetLogger(logger)
	s.Reset(0)
	return s, nil
}

// OpenStore opens and migrates the result database. It returns a nil DB
// when no path is configured.
func (c *Config) OpenStore() (store.DB, error) {
	if c.DB == "" {
		return nil, nil
	}
	db, err := store.NewSQLiteDB(c.DB)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate %s: %w", c.DB, err)
	}
	return db, nil
}
