package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/pomocli/pomo/config"
	"github.com/pomocli/pomo/notify"
	"github.com/pomocli/pomo/store"
	"github.com/pomocli/pomo/timer"
)

const (
	envNoColor     = "NO_COLOR"
	envPomoNoColor = "POMO_NO_COLOR"
)

// newNotifier builds the notifier matching the configuration.
func newNotifier(cfg *config.Config) notify.Notifier {
	if !cfg.Notify {
		return notify.Discard{}
	}

	return notify.NewDesktop(cfg.Stdout, cfg.Sound)
}

// defaultAction starts the work/break cycle and blocks until it is
// cancelled.
func defaultAction(ctx *cli.Context) error {
	cfg := config.Get(ctx)

	st := store.NewFileStore(cfg.PathToLog, cfg.PathToTitleState)

	lastTitle, err := st.LastTitle()
	if err != nil {
		slog.Warn("unable to read last title", slog.Any("error", err))
		pterm.Warning.Printfln("unable to read the previous session title: %v", err)
	}

	title := promptForTitle(cfg, lastTitle)

	err = st.SaveTitle(title)
	if err != nil {
		slog.Warn("unable to save title", slog.Any("error", err))
		pterm.Warning.Printfln("unable to save the session title: %v", err)
	}

	slog.Info("starting run", slog.String("title", title))

	input := timer.ListenKeys()
	// restore the terminal even when the run ends with an unexpected error
	defer input.Close()

	engine := timer.NewEngine(cfg, newNotifier(cfg), input.C)

	err = timer.NewScheduler(cfg, st, engine, title).Run()
	if errors.Is(err, timer.ErrCancelled) {
		input.Close()
		fmt.Fprintln(cfg.Stdout, "\n👋 Exiting pomo. See you next session!")

		return nil
	}

	return err
}

func beforeAction(ctx *cli.Context) error {
	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if POMO_NO_COLOR is set
	if _, exists := os.LookupEnv(envPomoNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
