package core

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
)

// MessengerStatus tells how AttachDebugMessenger ended
type MessengerStatus int

// Debug messenger states
const (
	MessengerSkipped MessengerStatus = iota
	MessengerUnavailable
	MessengerAttached
	MessengerDestroyed
)

func (s MessengerStatus) String() string {
	switch s {
	case MessengerUnavailable:
		return "unavailable"
	case MessengerAttached:
		return "attached"
	case MessengerDestroyed:
		return "destroyed"
	default:
		return "skipped"
	}
}

// DebugMessenger owns the diagnostic callback registered on an instance
type DebugMessenger struct {
	noCopy noCopy

	status  MessengerStatus
	handle  DebugMessengerHandle
	destroy DestroyDebugMessengerFunc
}

// Status returns the current state of the messenger
func (m *DebugMessenger) Status() MessengerStatus {
	return m.status
}

// Handle returns the messenger handle, zero unless attached
func (m *DebugMessenger) Handle() DebugMessengerHandle {
	return m.handle
}

// Destroy unregisters the callback. It does nothing unless the messenger is
// attached and the destroy entry point could be resolved.
func (m *DebugMessenger) Destroy() {
	if m == nil || m.status != MessengerAttached {
		return
	}
	if m.destroy != nil {
		m.destroy(m.handle)
	}
	m.handle = 0
	m.status = MessengerDestroyed
}

// DebugMessageLogger returns the callback used by the debug messenger. It logs
// every message and never asks the driver to abort the triggering call.
func DebugMessageLogger(logger log.FieldLogger) DebugCallback {
	return func(severity DebugSeverity, kind DebugMessageType, message string) bool {
		entry := logger.WithFields(log.Fields{
			"severity": severity.String(),
			"type":     kind.String(),
		})
		switch {
		case severity&DebugSeverityError != 0:
			entry.Error(message)
		case severity&DebugSeverityWarning != 0:
			entry.Warn(message)
		default:
			entry.Debug(message)
		}
		return false
	}
}

// AttachDebugMessenger registers the validation callback on the instance.
// Disabled validation yields a skipped messenger. A host without the debug
// entry points, whether found at lookup or at creation, yields an unavailable
// messenger and ErrExtensionNotPresent,
// which callers should treat as "no diagnostics" rather than a failure.
func AttachDebugMessenger(driver Driver, instance InstanceHandle, enabled bool, logger log.FieldLogger) (*DebugMessenger, error) {
	if !enabled {
		return &DebugMessenger{status: MessengerSkipped}, nil
	}

	create, destroy := driver.LookupDebugMessenger(instance)
	if create == nil {
		return &DebugMessenger{status: MessengerUnavailable}, ErrExtensionNotPresent
	}

	handle, err := create(DebugMessengerCreateInfo{
		Severities: DebugSeverityVerbose | DebugSeverityWarning | DebugSeverityError,
		Types:      DebugTypeGeneral | DebugTypeValidation | DebugTypePerformance,
		Callback:   DebugMessageLogger(logger),
	})
	switch {
	case errors.Is(err, ErrExtensionNotPresent):
		return &DebugMessenger{status: MessengerUnavailable}, err
	case err != nil:
		return nil, fmt.Errorf("%w: debug messenger: %s", ErrCreationFailed, err)
	}

	return &DebugMessenger{
		status:  MessengerAttached,
		handle:  handle,
		destroy: destroy,
	}, nil
}
