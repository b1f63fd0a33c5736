package ports

// Permission is the state of the system notification capability.
type Permission int

const (
	PermissionUnset Permission = iota
	PermissionGranted
	PermissionDenied
)

// String returns a human-readable label for the permission state.
func (p Permission) String() string {
	switch p {
	case PermissionGranted:
		return "granted"
	case PermissionDenied:
		return "denied"
	default:
		return "unset"
	}
}

// Notifier sends user-facing system notifications.
type Notifier interface {
	// Permission reports the current permission state.
	Permission() Permission

	// RequestPermission asks the platform for permission. The outcome
	// only affects future notifications; callers fire and forget.
	RequestPermission()

	// Notify displays a notification. Only called when permission is
	// granted.
	Notify(title, body string) error
}

// NoopNotifier reports denied permission and drops everything, for
// headless environments.
type NoopNotifier struct{}

func (NoopNotifier) Permission() Permission   { return PermissionDenied }
func (NoopNotifier) RequestPermission()       {}
func (NoopNotifier) Notify(_, _ string) error { return nil }

var _ Notifier = NoopNotifier{}
