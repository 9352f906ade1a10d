package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToWriteConfig = errors.New("failed to write config file")
	ErrConfigAlreadyExists = errors.New("config file already exists")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrInvalidTimezone     = errors.New("invalid timezone, must be 'local' or 'utc'")
	ErrSourcePathRequired  = errors.New("source path is required")

	ErrNoSources          = errors.New("no log sources configured")
	ErrSourceNotFound     = errors.New("source file not found")
	ErrInvalidGlobPattern = errors.New("invalid glob pattern")
	ErrTailerClosed       = errors.New("tailer already closed")

	ErrFailedToWatchSource = errors.New("failed to watch source file")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
