package app

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/pomocli/pomo/config"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	options := fmt.Sprintf(
		"%s\n{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}%s,{{end}}{{end}} %s\n\t\t\t\t{{.Usage}}\n\n{{end}}",
		pterm.Yellow("OPTIONS"),
		pterm.Green("-{{$element}}"),
		pterm.Green("--{{.Name}} {{.DefaultText}}"),
	)

	activeConfig := fmt.Sprintf(
		"%s\n%s\n",
		pterm.Yellow("ACTIVE CONFIGURATION"),
		config.Describe(),
	)

	controls := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("CONTROLS"),
		"p: pause or resume the running timer. Ctrl+C: cancel the timer and exit.",
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	return description + usage + version + controls + activeConfig + env
}

func envHelp() string {
	return `POMO_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

POMO_ENV: suffixes the config, state, and log file names, to isolate test or development runs.`
}
