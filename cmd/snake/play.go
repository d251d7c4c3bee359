package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/logging"
	"github.com/vovakirdan/tui-snake/internal/platform/terminal"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var errNotTerminal = errors.New("stdout is not a terminal")

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	rt := cfg.Runtime(flagSeed)

	// Check the terminal before touching it
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errNotTerminal
	}
	needW, needH := rt.ScreenSize()
	if w, h, sizeErr := term.GetSize(fd); sizeErr == nil && (w < needW || h < needH) {
		return fmt.Errorf("terminal is %dx%d, the board needs %dx%d", w, h, needW, needH)
	}

	logger, closer, err := logging.New(logging.Options{Path: flagLogPath, Level: flagLogLevel})
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close

	drv, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	// Covers panics; the session already restores on normal and error paths.
	defer drv.DisableRawMode() //nolint:errcheck // Idempotent, best-effort

	session, err := snake.NewSession(drv, rt, logger)
	if err != nil {
		return err
	}

	res, err := session.Run()
	if err != nil {
		return err
	}

	fmt.Println(snake.GameOverLine(res.Score))

	if flagSave {
		saveRun(res)
	}
	return nil
}

// saveRun records the run. Failures are reported but never fatal.
func saveRun(res snake.Result) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return
	}
	defer store.Close()

	best, err := recordRun(store, res)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save score: %v\n", err)
		return
	}
	if best {
		fmt.Println(bestStyle.Render("New high score!"))
	}
}

// recordRun saves the run and reports whether it beat every earlier run.
func recordRun(store *storage.Store, res snake.Result) (bool, error) {
	prev, err := store.HighScore()
	if err != nil {
		return false, err
	}

	_, err = store.SaveRun(storage.Run{
		Score:  res.Score,
		Length: res.Length,
		Reason: string(res.Reason),
		Ticks:  res.Ticks,
		Seed:   res.Seed,
	})
	if err != nil {
		return false, err
	}

	return res.Score > prev, nil
}
