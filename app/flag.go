package app

import "github.com/urfave/cli/v2"

var (
	workFlag = &cli.UintFlag{
		Name:    "work",
		Aliases: []string{"w"},
		Usage:   "Work session length in minutes",
	}

	shortBreakFlag = &cli.UintFlag{
		Name:    "short-break",
		Aliases: []string{"s"},
		Usage:   "Short break length in minutes (0 skips short breaks)",
	}

	longBreakFlag = &cli.UintFlag{
		Name:    "long-break",
		Aliases: []string{"l"},
		Usage:   "Long break length in minutes",
	}

	longBreakIntervalFlag = &cli.UintFlag{
		Name:    "long-break-interval",
		Aliases: []string{"i"},
		Usage:   "Number of work sessions before a long break",
	}

	minLogFlag = &cli.UintFlag{
		Name:    "min-log",
		Aliases: []string{"m"},
		Usage:   "Minimum elapsed seconds before a cancelled session is logged",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Path to a sound file (mp3, ogg, flac, wav) played when a session ends. Set to 'off' to disable",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each completed session",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the desktop notification at the end of a session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}
)
