package main

import (
	"os"

	"github.com/pterm/pterm"

	"github.com/pomocli/pomo/app"
	"github.com/pomocli/pomo/config"
	"github.com/pomocli/pomo/internal/logutil"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	config.InitializePaths()
	logutil.Init(config.DebugFilePath())

	err := run(os.Args)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
