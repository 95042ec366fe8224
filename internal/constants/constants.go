package constants

const (
	AppName           = "medflow"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/medflow/medflow.db"

	// KeyringUser is the keyring account name under which the advice
	// API key is stored.
	KeyringUser = "gemini-api-key"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// ClockFormat is the standard wall-clock format used throughout the application (HH:MM)
	ClockFormat = "15:04"

	// CountdownNotStarted is shown before the first check-in ever happens.
	CountdownNotStarted = "not started"

	// CountdownTimeUp is shown once the current dose cycle has elapsed.
	CountdownTimeUp = "time's up!"

	// HistoryLimit caps how many recent check-ins the history views show.
	HistoryLimit = 15

	// AdviceHistoryLimit caps how many recent check-ins are sent to the
	// advice service as context.
	AdviceHistoryLimit = 5

	// DefaultIntervalHours is the dose interval used on first run.
	DefaultIntervalHours = 6.0

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "medflow-"
)
