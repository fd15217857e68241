package core

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Scoring weights
const (
	discreteGPUBonus = 1000
)

// ScoredPhysicalDevice pairs a suitable device with its score
type ScoredPhysicalDevice struct {
	Score  int
	Device PhysicalDeviceHandle
}

// ScoreDevice ranks a device: discrete GPUs get a bonus and the maximum 2D
// image dimension is added on top. A device missing a required feature
// scores 0 no matter what was added before.
func ScoreDevice(props PhysicalDeviceProperties, features Features, req *Requirements) int {
	score := 0
	if props.Type == PhysicalDeviceTypeDiscreteGPU {
		score += discreteGPUBonus
	}
	score += int(props.MaxImageDimension2D)

	if !features.Covers(req.DeviceFeatures()) {
		score = 0
	}
	return score
}

// DeviceIsSuitable checks whether the device resolves every queue role,
// exposes every required extension and can present to surface. The swapchain
// details it probed are returned alongside the verdict.
func DeviceIsSuitable(driver Driver, device PhysicalDeviceHandle, surface SurfaceHandle, req *Requirements, logger log.FieldLogger) (bool, SwapChainSupportDetails) {
	var reasons []string

	indices := FindQueueFamilies(driver, device, surface, logger)
	if !indices.Graphics.HasValue() {
		reasons = append(reasons, "no graphics queue family")
	}
	if !indices.Present.HasValue() {
		reasons = append(reasons, "no present queue family")
	}

	extensionsSupported := false
	if available, err := driver.DeviceExtensions(device); err != nil {
		reasons = append(reasons, "listing extensions: "+err.Error())
	} else if missing := missingNames(req.DeviceExtensions(), available); len(missing) > 0 {
		reasons = append(reasons, "missing extensions "+strings.Join(missing, ", "))
	} else {
		extensionsSupported = true
	}

	var details SwapChainSupportDetails
	if extensionsSupported {
		details = QuerySwapChainSupport(driver, device, surface, logger)
		if len(details.Formats) == 0 {
			reasons = append(reasons, "no surface formats")
		}
		if len(details.PresentModes) == 0 {
			reasons = append(reasons, "no present modes")
		}
	}

	if len(reasons) > 0 {
		logger.WithField("reason", strings.Join(reasons, "; ")).Debug("device rejected")
		return false, details
	}
	return true, details
}

// PickPhysicalDevice selects the best suitable device. Devices failing
// DeviceIsSuitable are never ranked; the others are ordered by ScoreDevice,
// ties going to the device enumerated first.
func PickPhysicalDevice(driver Driver, instance InstanceHandle, surface SurfaceHandle, req *Requirements, logger log.FieldLogger) (PhysicalDeviceHandle, error) {
	devices, err := driver.PhysicalDevices(instance)
	if err != nil {
		return 0, fmt.Errorf("enumerating physical devices: %w", err)
	}
	if len(devices) == 0 {
		return 0, ErrNoDevices
	}

	var ranking []ScoredPhysicalDevice
	for _, device := range devices {
		props := driver.PhysicalDeviceProperties(device)
		entry := logger.WithFields(log.Fields{
			"device": props.Name,
			"type":   props.Type.String(),
		})

		suitable, _ := DeviceIsSuitable(driver, device, surface, req, entry)
		if !suitable {
			continue
		}

		score := ScoreDevice(props, driver.PhysicalDeviceFeatures(device), req)
		entry.WithField("score", score).Debug("device is suitable")
		ranking = append(ranking, ScoredPhysicalDevice{Score: score, Device: device})
	}

	if len(ranking) == 0 {
		return 0, ErrNoSuitableDevice
	}

	slices.SortStableFunc(ranking, func(a, b ScoredPhysicalDevice) bool {
		return a.Score > b.Score
	})
	return ranking[0].Device, nil
}
