package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
)

var (
	configDir      = "pomo"
	configFileName = "config.json"
	logFileName    = "pomo_log.csv"
	titleFileName  = "last_title.txt"
	debugFileName  = "pomo.log"

	configFilePath string
	logFilePath    string
	titleFilePath  string
	debugFilePath  string
)

// Dir returns the name of the application directory under the XDG base
// directories.
func Dir() string {
	return configDir
}

// ConfigFilePath returns the path to the JSON configuration file.
func ConfigFilePath() string {
	return configFilePath
}

// LogFilePath returns the path to the CSV activity log.
func LogFilePath() string {
	return logFilePath
}

// TitleFilePath returns the path to the last-title state file.
func TitleFilePath() string {
	return titleFilePath
}

// DebugFilePath returns the path to the internal debug log.
func DebugFilePath() string {
	return debugFilePath
}

// InitializePaths resolves all application file paths. It must be called
// once before the configuration is loaded. POMO_ENV suffixes the file names
// so that test and development runs never touch real data.
func InitializePaths() {
	pomoEnv := strings.TrimSpace(os.Getenv("POMO_ENV"))
	if pomoEnv != "" {
		configFileName = fmt.Sprintf("config_%s.json", pomoEnv)
		logFileName = fmt.Sprintf("pomo_log_%s.csv", pomoEnv)
		titleFileName = fmt.Sprintf("last_title_%s.txt", pomoEnv)
		debugFileName = fmt.Sprintf("pomo_%s.log", pomoEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logFilePath, err = xdg.DataFile(filepath.Join(configDir, logFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	titleFilePath, err = xdg.DataFile(filepath.Join(configDir, titleFileName))
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	debugFilePath, err = xdg.DataFile(
		filepath.Join(configDir, "log", debugFileName),
	)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
