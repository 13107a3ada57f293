// Package config is responsible for setting the program config from the
// JSON configuration file and command-line arguments.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	defaultWorkMinutes             = 25
	defaultShortBreakMinutes       = 5
	defaultLongBreakMinutes        = 15
	defaultSessionsBeforeLongBreak = 4
	defaultMinSecondsToLog         = 60
)

const (
	keyWorkMinutes             = "work_minutes"
	keyShortBreakMinutes       = "short_break_minutes"
	keyLongBreakMinutes        = "long_break_minutes"
	keySessionsBeforeLongBreak = "sessions_before_long_break"
	keyMinSecondsToLog         = "min_seconds_to_log"
	keyNotify                  = "notify"
	keySound                   = "sound"
	keySessionCmd              = "session_cmd"
)

// Config is the program configuration derived from the config file and
// command-line arguments. It is an immutable snapshot: it is populated once
// at startup and never mutated during a run.
type Config struct {
	Stderr                  io.Writer `json:"-"`
	Stdout                  io.Writer `json:"-"`
	Stdin                   io.Reader `json:"-"`
	Sound                   string    `json:"sound"`
	SessionCmd              string    `json:"session_cmd"`
	PathToConfig            string    `json:"path_to_config"`
	PathToLog               string    `json:"path_to_log"`
	PathToTitleState        string    `json:"path_to_title_state"`
	WorkMinutes             int       `json:"work_minutes"`
	ShortBreakMinutes       int       `json:"short_break_minutes"`
	LongBreakMinutes        int       `json:"long_break_minutes"`
	SessionsBeforeLongBreak int       `json:"sessions_before_long_break"`
	MinSecondsToLog         int       `json:"min_seconds_to_log"`
	Notify                  bool      `json:"notify"`
}

var (
	cfg  *Config
	once sync.Once
)

// setDefaults registers the hardcoded defaults that fill in any keys
// missing from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault(keyWorkMinutes, defaultWorkMinutes)
	v.SetDefault(keyShortBreakMinutes, defaultShortBreakMinutes)
	v.SetDefault(keyLongBreakMinutes, defaultLongBreakMinutes)
	v.SetDefault(keySessionsBeforeLongBreak, defaultSessionsBeforeLongBreak)
	v.SetDefault(keyMinSecondsToLog, defaultMinSecondsToLog)
	v.SetDefault(keyNotify, true)
	v.SetDefault(keySound, "")
	v.SetDefault(keySessionCmd, "")
}

// readConfigFile loads the config file into v, creating it with defaults if
// it does not exist yet. A malformed file produces a warning and leaves the
// in-memory defaults in effect for the run without overwriting the file.
func readConfigFile(v *viper.Viper, path string) {
	err := v.ReadInConfig()
	if err == nil {
		// persist the merged result so newly introduced keys show up in
		// the file
		if werr := v.WriteConfigAs(path); werr != nil {
			slog.Warn("config rewrite failed", slog.Any("error", werr))
			pterm.Warning.Println(errWriteConfig.Wrap(werr))
		}

		return
	}

	if errors.Is(err, os.ErrNotExist) {
		if werr := v.WriteConfigAs(path); werr != nil {
			slog.Warn("config creation failed", slog.Any("error", werr))
			pterm.Warning.Println(errWriteConfig.Wrap(werr))
		}

		return
	}

	slog.Warn("config read failed", slog.Any("error", err))
	pterm.Warning.Println(errReadConfig.Wrap(err))
}

// validate replaces out-of-range values with the defaults. Only the short
// break length and the partial-session threshold are allowed to be zero.
func (c *Config) validate() {
	warn := func(key string, def int) {
		pterm.Warning.Printfln(
			"invalid value for %q in config, using default (%d)", key, def,
		)
	}

	if c.WorkMinutes <= 0 {
		warn(keyWorkMinutes, defaultWorkMinutes)
		c.WorkMinutes = defaultWorkMinutes
	}

	if c.ShortBreakMinutes < 0 {
		warn(keyShortBreakMinutes, defaultShortBreakMinutes)
		c.ShortBreakMinutes = defaultShortBreakMinutes
	}

	if c.LongBreakMinutes <= 0 {
		warn(keyLongBreakMinutes, defaultLongBreakMinutes)
		c.LongBreakMinutes = defaultLongBreakMinutes
	}

	if c.SessionsBeforeLongBreak <= 0 {
		warn(keySessionsBeforeLongBreak, defaultSessionsBeforeLongBreak)
		c.SessionsBeforeLongBreak = defaultSessionsBeforeLongBreak
	}

	if c.MinSecondsToLog < 0 {
		warn(keyMinSecondsToLog, defaultMinSecondsToLog)
		c.MinSecondsToLog = defaultMinSecondsToLog
	}
}

// load reads the configuration file, merging it with the hardcoded
// defaults. It runs once per process.
func load() *Config {
	once.Do(func() {
		v := viper.New()
		v.SetConfigFile(configFilePath)
		v.SetConfigType("json")

		setDefaults(v)
		readConfigFile(v, configFilePath)

		cfg = &Config{
			Stderr:                  os.Stderr,
			Stdout:                  os.Stdout,
			Stdin:                   os.Stdin,
			WorkMinutes:             v.GetInt(keyWorkMinutes),
			ShortBreakMinutes:       v.GetInt(keyShortBreakMinutes),
			LongBreakMinutes:        v.GetInt(keyLongBreakMinutes),
			SessionsBeforeLongBreak: v.GetInt(keySessionsBeforeLongBreak),
			MinSecondsToLog:         v.GetInt(keyMinSecondsToLog),
			Notify:                  v.GetBool(keyNotify),
			Sound:                   v.GetString(keySound),
			SessionCmd:              v.GetString(keySessionCmd),
			PathToConfig:            configFilePath,
			PathToLog:               logFilePath,
			PathToTitleState:        titleFilePath,
		}

		cfg.validate()
	})

	return cfg
}

// setFlagOverrides applies command-line arguments on top of the file
// configuration.
func (c *Config) setFlagOverrides(ctx *cli.Context) {
	if ctx.Uint("work") > 0 {
		c.WorkMinutes = int(ctx.Uint("work"))
	}

	if ctx.IsSet("short-break") {
		c.ShortBreakMinutes = int(ctx.Uint("short-break"))
	}

	if ctx.Uint("long-break") > 0 {
		c.LongBreakMinutes = int(ctx.Uint("long-break"))
	}

	if ctx.Uint("long-break-interval") > 0 {
		c.SessionsBeforeLongBreak = int(ctx.Uint("long-break-interval"))
	}

	if ctx.IsSet("min-log") {
		c.MinSecondsToLog = int(ctx.Uint("min-log"))
	}

	if ctx.Bool("disable-notification") {
		c.Notify = false
	}

	if ctx.String("sound") != "" {
		if ctx.String("sound") == "off" {
			c.Sound = ""
		} else {
			c.Sound = ctx.String("sound")
		}
	}

	if ctx.String("session-cmd") != "" {
		c.SessionCmd = ctx.String("session-cmd")
	}
}

// Get initializes and returns the program configuration. The file is read
// just once no matter how many times it is called; flag overrides are
// applied on every call.
func Get(ctx *cli.Context) *Config {
	c := load()

	c.setFlagOverrides(ctx)

	return c
}

// Describe renders the active file configuration as an aligned block of
// text, for display in the help output. It does not include command-line
// overrides since help is printed before flags take effect.
func Describe() string {
	c := load()

	var b strings.Builder

	rows := []struct {
		key   string
		value any
	}{
		{keyWorkMinutes, c.WorkMinutes},
		{keyShortBreakMinutes, c.ShortBreakMinutes},
		{keyLongBreakMinutes, c.LongBreakMinutes},
		{keySessionsBeforeLongBreak, c.SessionsBeforeLongBreak},
		{keyMinSecondsToLog, c.MinSecondsToLog},
		{keyNotify, c.Notify},
		{keySound, c.Sound},
		{keySessionCmd, c.SessionCmd},
	}

	for _, r := range rows {
		fmt.Fprintf(&b, "\t\t%-28v %v\n", r.key, r.value)
	}

	fmt.Fprintf(&b, "\n\t\tconfig file: %s\n", c.PathToConfig)
	fmt.Fprintf(&b, "\t\tactivity log: %s\n", c.PathToLog)

	return b.String()
}
