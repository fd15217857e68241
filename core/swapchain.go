package core

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// SwapChainSupportDetails is what a device offers for presenting to one surface.
// It is recomputed for every candidate and never cached.
type SwapChainSupportDetails struct {
	Capabilities SurfaceCapabilities
	Formats      []SurfaceFormat
	PresentModes []PresentMode
}

// Adequate reports whether at least one format and one present mode exist
func (d SwapChainSupportDetails) Adequate() bool {
	return len(d.Formats) > 0 && len(d.PresentModes) > 0
}

// QuerySwapChainSupport probes the presentation capabilities of device for
// surface. Query errors are logged and leave the affected sequence empty;
// an empty result marks the device unsuitable.
func QuerySwapChainSupport(driver Driver, device PhysicalDeviceHandle, surface SurfaceHandle, logger log.FieldLogger) SwapChainSupportDetails {
	var details SwapChainSupportDetails

	capabilities, err := driver.SurfaceCapabilities(device, surface)
	if err != nil {
		logger.Warnf("querying surface capabilities: %s", err)
	}
	details.Capabilities = capabilities

	formats, err := driver.SurfaceFormats(device, surface)
	if err != nil {
		logger.Warnf("querying surface formats: %s", err)
		formats = nil
	}
	details.Formats = formats

	presentModes, err := driver.SurfacePresentModes(device, surface)
	if err != nil {
		logger.Warnf("querying surface present modes: %s", err)
		presentModes = nil
	}
	details.PresentModes = presentModes

	return details
}

// PreferredSurfaceFormat is picked by ChooseSurfaceFormat when available
var PreferredSurfaceFormat = SurfaceFormat{
	Format:     FormatB8G8R8A8Srgb,
	ColorSpace: ColorSpaceSrgbNonlinear,
}

// ChooseSurfaceFormat returns the preferred 8-bit BGRA sRGB format when the
// device offers it. Otherwise it reports no preference.
func ChooseSurfaceFormat(formats []SurfaceFormat) (SurfaceFormat, bool) {
	if slices.Contains(formats, PreferredSurfaceFormat) {
		return PreferredSurfaceFormat, true
	}
	return SurfaceFormat{}, false
}

// ChoosePresentMode prefers mailbox and falls back to FIFO,
// which every conformant driver supports
func ChoosePresentMode(modes []PresentMode) PresentMode {
	if slices.Contains(modes, PresentModeMailbox) {
		return PresentModeMailbox
	}
	return PresentModeFifo
}
