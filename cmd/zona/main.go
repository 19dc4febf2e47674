//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"zona/internal/app"
	"zona/internal/store"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "zona ", log.LstdFlags)
	sess, err := cfg.NewSession(logger)
	if err != nil {
		log.Fatal(err)
	}

	db, err := cfg.OpenStore()
	if err != nil {
		log.Fatalf("open result store: %v", err)
	}
	if db != nil {
		defer db.Close()
	}

	game := app.New(sess, cfg.Scale, store.NewRecorder(db, logger), logger)
	defer game.Close()
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("zona - " + sess.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
