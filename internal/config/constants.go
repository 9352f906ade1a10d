package config

import "time"

// app constants
const (
	AppName = "vigil"

	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"

	Version = "0.3.0"
)

// timezone display modes
const (
	TimezoneLocal = "local"
	TimezoneUTC   = "utc"
)

// stream constants
const (
	// DefaultBufferCap is the maximum number of rows kept in memory
	DefaultBufferCap = 10000

	// DefaultFlushInterval is the snapshot publish cadence while tailing
	DefaultFlushInterval = 250 * time.Millisecond
)

// ConfigFile is looked up in the working directory
const ConfigFile = "vigil.yaml"

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "VIGIL"
