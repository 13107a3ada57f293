package config

import "github.com/pomocli/pomo/internal/apperr"

var (
	errReadConfig = &apperr.Error{
		Message: "unable to read the configuration file, using defaults for this run",
	}

	errWriteConfig = &apperr.Error{
		Message: "unable to update the configuration file",
	}
)
