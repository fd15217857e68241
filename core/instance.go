package core

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// CreateInstance creates the API instance. When wantValidation is set the
// required validation layers must be available, and the debug extension
// is enabled next to the extensions the window toolkit needs.
func CreateInstance(driver Driver, windowing Windowing, app ApplicationInfo, req *Requirements, wantValidation bool, logger log.FieldLogger) (InstanceHandle, error) {
	var layers []string
	if wantValidation {
		available, err := driver.InstanceLayers()
		if err != nil {
			return 0, fmt.Errorf("listing instance layers: %w", err)
		}
		required := req.ValidationLayers()
		if missing := missingNames(required, available); len(missing) > 0 {
			return 0, &CapabilityError{
				Kind:      ErrMissingLayer,
				Missing:   missing,
				Required:  required,
				Available: available,
			}
		}
		layers = required
	}

	var extensions []string
	if windowing != nil {
		extensions = append(extensions, windowing.RequiredInstanceExtensions()...)
	}
	if wantValidation {
		extensions = append(extensions, driver.DebugExtension())
	}

	if len(extensions) > 0 {
		available, err := driver.InstanceExtensions()
		if err != nil {
			return 0, fmt.Errorf("listing instance extensions: %w", err)
		}
		if missing := missingNames(extensions, available); len(missing) > 0 {
			return 0, &CapabilityError{
				Kind:      ErrMissingExtension,
				Missing:   missing,
				Required:  extensions,
				Available: available,
			}
		}
	}

	logger.WithFields(log.Fields{
		"application": app.Name,
		"engine":      app.EngineName,
		"api":         VersionString(app.APIVersion),
		"layers":      layers,
		"extensions":  extensions,
	}).Debug("creating instance")

	instance, err := driver.CreateInstance(InstanceCreateInfo{
		Application: app,
		Extensions:  extensions,
		Layers:      layers,
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrCreationFailed, err)
	}
	return instance, nil
}
