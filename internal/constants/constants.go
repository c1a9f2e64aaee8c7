package constants

const (
	// AppIdentifier names the per-user config/data directories.
	AppIdentifier = "moodlog"

	// KeyFullEntries holds the serialized full entry list, newest-first.
	KeyFullEntries = "full-entries"
	// KeySharedEntries holds the serialized projected list, newest-first.
	KeySharedEntries = "shared-entries"

	// RefreshSignalName is the widget invalidation marker inside the
	// shared namespace directory.
	RefreshSignalName = "refresh-signal"

	// LegacyFileName is the pre-shared-namespace, process-local entry
	// file. Read-only input to one-time migration.
	LegacyFileName = "entries.json"

	// IconStateName is the dominant-mood icon marker file.
	IconStateName = "icon-state"

	// NotificationNote is the note attached to entries logged from a
	// notification action.
	NotificationNote = "logged via notification"
	// WatchNote is the note attached to entries logged from the watch
	// quick-log surface.
	WatchNote = "Logged from watch"

	// NotifierLockfileName is written by the tray notifier process and
	// read to discover its webhook port.
	NotifierLockfileName = "notifier.lock"
	// NotificationDurationMs is how long reminder toasts stay on screen.
	NotificationDurationMs uint32 = 5000
)
