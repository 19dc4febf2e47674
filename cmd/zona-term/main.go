package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"zona/internal/app"
	"zona/internal/store"
	"zona/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, tcell.NewScreen))
}

// run plays one terminal session and returns the process exit code. All
// resources it opens are closed before it returns.
func run(args []string, stderr io.Writer, newScreen func() (tcell.Screen, error)) int {
	fs := flag.NewFlagSet("zona-term", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg := app.NewConfig()
	cfg.Bind(fs)
	logPath := fs.String("log", "", "write session log to this file (the terminal is busy drawing)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "zona ", log.LstdFlags)
	var sessionLog *log.Logger
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Printf("open log file: %v", err)
			return 1
		}
		defer f.Close()
		sessionLog = log.New(f, "zona ", log.LstdFlags)
	}

	sess, err := cfg.NewSession(sessionLog)
	if err != nil {
		logger.Print(err)
		return 2
	}

	db, err := cfg.OpenStore()
	if err != nil {
		logger.Printf("open result store: %v", err)
		return 1
	}
	if db != nil {
		defer db.Close()
	}

	screen, err := newScreen()
	if err != nil {
		logger.Printf("create screen: %v", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		logger.Printf("init screen: %v", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := term.NewGame(screen, sess, cfg.TPS, store.NewRecorder(db, sessionLog), sessionLog)
	runErr := game.Run(ctx)
	game.Close()
	screen.Fini()
	if runErr != nil && ctx.Err() == nil {
		logger.Print(runErr)
		return 1
	}
	logger.Printf("final score %d, %s", sess.Score(), sess.State())
	return 0
}
