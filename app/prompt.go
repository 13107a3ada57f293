package app

import (
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/pomocli/pomo/config"
	"github.com/pomocli/pomo/internal/ui"
)

const defaultTitle = "Pomo"

// titlePromptTimeout bounds how long the title prompt waits for input
// before defaulting to the last known title.
const titlePromptTimeout = 5 * time.Second

// readLineWithTimeout reads a single line from f, giving up after the
// timeout. The terminal is still in cooked mode here, so a full line
// arrives in one read once the user presses ENTER.
func readLineWithTimeout(f *os.File, timeout time.Duration) (string, error) {
	err := f.SetReadDeadline(time.Now().Add(timeout))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.SetReadDeadline(time.Time{})
	}()

	buf := make([]byte, 256)

	n, err := f.Read(buf)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(buf[:n])), nil
}

// promptForTitle asks for the session title, defaulting to the previous
// one (or a generic fallback) when the user types nothing within the
// timeout.
func promptForTitle(cfg *config.Config, last string) string {
	fallback := last
	if fallback == "" {
		fallback = defaultTitle
	}

	if last != "" {
		pterm.Printfln("Previous session title: %s", ui.Green("'"+last+"'"))
	} else {
		pterm.Println("No previous session title found.")
	}

	pterm.Printfln(
		"Type a new title and press ENTER, or wait %d seconds to keep %s.",
		int(titlePromptTimeout.Seconds()),
		ui.Green("'"+fallback+"'"),
	)

	f, ok := cfg.Stdin.(*os.File)
	if !ok {
		return fallback
	}

	title, err := readLineWithTimeout(f, titlePromptTimeout)
	if err != nil || title == "" {
		return fallback
	}

	return title
}
