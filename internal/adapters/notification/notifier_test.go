package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rvelden/tomat/internal/config"
	"github.com/rvelden/tomat/internal/ports"
)

func TestPermission_StartsUnset(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: true})
	assert.Equal(t, ports.PermissionUnset, n.Permission())
}

func TestRequestPermission_GrantedWhenEnabled(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: true})
	n.RequestPermission()
	assert.Equal(t, ports.PermissionGranted, n.Permission())
}

func TestRequestPermission_DeniedWhenDisabled(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: false})
	n.RequestPermission()
	assert.Equal(t, ports.PermissionDenied, n.Permission())
}

func TestRequestPermission_DecidedStateIsFinal(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: true})
	n.RequestPermission()
	n.RequestPermission()
	assert.Equal(t, ports.PermissionGranted, n.Permission())
}

func TestNotify_WithoutGrantIsSilentNoop(t *testing.T) {
	n := New(&config.NotificationConfig{Enabled: true})
	// Permission still unset: the call is dropped without error.
	assert.NoError(t, n.Notify("Timer Complete!", "body"))
}

func TestNew_NilConfigDenies(t *testing.T) {
	n := New(nil)
	n.RequestPermission()
	assert.Equal(t, ports.PermissionDenied, n.Permission())
}
