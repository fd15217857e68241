package device

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/devblok/vkboot/core"
	vk "github.com/vulkan-go/vulkan"
	"golang.org/x/exp/slices"
)

// The bindings expose debug report rather than debug utils, so the
// messenger is built on VK_EXT_debug_report.
const debugReportExtension = "VK_EXT_debug_report"

// DebugExtension implements interface
func (v *Vulkan) DebugExtension() string {
	return debugReportExtension
}

// LookupDebugMessenger implements interface. The entry points are only
// offered when the host lists the debug report extension. The binding
// resolves the functions itself and answers VK_NOT_READY when they are
// missing, which create reports as core.ErrExtensionNotPresent.
func (v *Vulkan) LookupDebugMessenger(instance core.InstanceHandle) (core.CreateDebugMessengerFunc, core.DestroyDebugMessengerFunc) {
	available, err := v.InstanceExtensions()
	if err != nil || !slices.Contains(available, debugReportExtension) {
		return nil, nil
	}

	inst := toInstance(instance)
	create := func(info core.DebugMessengerCreateInfo) (core.DebugMessengerHandle, error) {
		callback := info.Callback
		dci := vk.DebugReportCallbackCreateInfo{
			SType: vk.StructureTypeDebugReportCallbackCreateInfo,
			Flags: reportFlags(info.Severities, info.Types),
			PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType, object uint64, location uint,
				messageCode int32, layerPrefix string, message string, userData unsafe.Pointer) vk.Bool32 {
				severity, kind := classify(flags)
				if callback != nil && callback(severity, kind, message) {
					return vk.True
				}
				return vk.False
			},
		}

		var dbg vk.DebugReportCallback
		if err := messengerError(vk.CreateDebugReportCallback(inst, &dci, nil, &dbg)); err != nil {
			return 0, err
		}
		return core.DebugMessengerHandle(unsafe.Pointer(dbg)), nil
	}

	destroy := func(handle core.DebugMessengerHandle) {
		vk.DestroyDebugReportCallback(inst, vk.DebugReportCallback(unsafe.Pointer(handle)), nil)
	}

	return create, destroy
}

// messengerError maps the result of creating a debug report callback.
// A missing entry point is soft and reported as core.ErrExtensionNotPresent.
func messengerError(ret vk.Result) error {
	switch ret {
	case vk.Success:
		return nil
	case vk.NotReady, vk.ErrorExtensionNotPresent:
		return fmt.Errorf("%w: vk.CreateDebugReportCallback(): %s", core.ErrExtensionNotPresent, vk.Error(ret))
	default:
		return errors.New("vk.CreateDebugReportCallback(): " + vk.Error(ret).Error())
	}
}

// reportFlags translates severity and type filters into debug report flags
func reportFlags(severities core.DebugSeverity, types core.DebugMessageType) vk.DebugReportFlags {
	var flags vk.DebugReportFlagBits
	if severities&core.DebugSeverityVerbose != 0 {
		flags |= vk.DebugReportDebugBit
	}
	if severities&core.DebugSeverityInfo != 0 {
		flags |= vk.DebugReportInformationBit
	}
	if severities&core.DebugSeverityWarning != 0 {
		if types&(core.DebugTypeGeneral|core.DebugTypeValidation) != 0 {
			flags |= vk.DebugReportWarningBit
		}
		if types&core.DebugTypePerformance != 0 {
			flags |= vk.DebugReportPerformanceWarningBit
		}
	}
	if severities&core.DebugSeverityError != 0 {
		flags |= vk.DebugReportErrorBit
	}
	return vk.DebugReportFlags(flags)
}

// classify translates the flags of a debug report message back
func classify(flags vk.DebugReportFlags) (core.DebugSeverity, core.DebugMessageType) {
	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		return core.DebugSeverityError, core.DebugTypeValidation
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		return core.DebugSeverityWarning, core.DebugTypePerformance
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		return core.DebugSeverityWarning, core.DebugTypeValidation
	case flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0:
		return core.DebugSeverityInfo, core.DebugTypeGeneral
	default:
		return core.DebugSeverityVerbose, core.DebugTypeGeneral
	}
}
