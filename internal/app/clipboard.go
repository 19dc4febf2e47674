package app

import (
	"fmt"

	"zona/internal/core"

	"github.com/atotto/clipboard"
)

// CopyGrid places the glyph dump of g on the system clipboard.
func CopyGrid(g *core.Grid) error {
	if err := clipboard.WriteAll(g.String()); err != nil {
		return fmt.Errorf("copy grid to clipboard: %w", err)
	}
	return nil
}
