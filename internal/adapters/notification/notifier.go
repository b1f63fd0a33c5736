// Package notification provides desktop notification delivery with an
// explicit permission model.
package notification

import (
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/rvelden/tomat/internal/config"
	"github.com/rvelden/tomat/internal/ports"
)

// DesktopNotifier sends notifications through the platform's
// notification daemon. Permission starts unset and is decided on the
// first request: granted when notifications are enabled in the config,
// denied otherwise. Desktop stacks have no revocation callback, so a
// decided state is final for the session.
type DesktopNotifier struct {
	mu         sync.Mutex
	permission ports.Permission
	enabled    bool
}

// New creates a notifier from the notification configuration.
func New(cfg *config.NotificationConfig) *DesktopNotifier {
	enabled := cfg != nil && cfg.Enabled
	return &DesktopNotifier{enabled: enabled}
}

// Permission reports the current permission state.
func (n *DesktopNotifier) Permission() ports.Permission {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.permission
}

// RequestPermission decides an unset permission. A decided permission
// is left as is.
func (n *DesktopNotifier) RequestPermission() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.permission != ports.PermissionUnset {
		return
	}
	if n.enabled {
		n.permission = ports.PermissionGranted
	} else {
		n.permission = ports.PermissionDenied
	}
}

// Notify displays a desktop notification. Calls without granted
// permission are dropped silently.
func (n *DesktopNotifier) Notify(title, body string) error {
	if n.Permission() != ports.PermissionGranted {
		return nil
	}
	return beeep.Notify(title, body, "")
}

var _ ports.Notifier = (*DesktopNotifier)(nil)
