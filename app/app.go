// Package app defines the command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// Version is the program version reported by --version.
const Version = "v1.0.0"

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the pomo app instance.
func Get() *cli.App {
	pomoApp := &cli.App{
		Name: "pomo",
		Usage: `
		Pomo is a productivity timer for the command-line, based on the
		Pomodoro Technique: fixed-length work sessions alternating with short
		and long breaks, with a CSV log of everything you finish.`,
		UsageText:            "[OPTIONS]",
		Version:              Version,
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Flags: []cli.Flag{
			workFlag,
			shortBreakFlag,
			longBreakFlag,
			longBreakIntervalFlag,
			minLogFlag,
			soundFlag,
			sessionCmdFlag,
			disableNotificationFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	// Override the default help template so -h reports the active
	// configuration alongside usage
	cli.AppHelpTemplate = helpText()

	return pomoApp
}
