// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Interactive shell - prompt, greeting and recovery hints of the command loop.
const (
	ShellPrompt  = "shell.prompt"
	ShellWelcome = "shell.welcome"
	ShellSuggest = "shell.suggest"
)

// Listing.
const (
	ListShowHidden = "list.show_hidden"
)

// Search - traversal strategy for recursive filename search.
const (
	SearchFast = "search.fast"
)

// Permissions - selects how chmod is applied on the running platform.
const (
	PermStrategy = "perm.strategy"
)

// Open - external application launched by the open command.
const (
	OpenWith = "open.with"
)

// History - persistence of entered command lines.
const (
	HistoryWrite = "history.write"
	HistoryLimit = "history.limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
