package config

import "time"

const (
	DefaultVersion        = "dev"
	DefaultMode           = ModeConsole
	DefaultRegionsFile    = "application.properties"
	DefaultRequestTimeout = 5 * time.Second
	DefaultLogLevel       = "debug"
)

// Client modes selectable with APP_MODE or -mode.
const (
	// ModeConsole runs the predefined scenarios followed by the line prompt.
	ModeConsole = "console"
	// ModeTUI runs the predefined scenarios followed by the form UI.
	ModeTUI = "tui"
	// ModeScenarios runs only the predefined scenarios.
	ModeScenarios = "scenarios"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: DefaultVersion,
			Mode:    DefaultMode,
		},
		Rules: Rules{
			RegionsFile: DefaultRegionsFile,
		},
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
