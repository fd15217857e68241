package device

import (
	"errors"
	"testing"

	"github.com/devblok/vkboot/core"
	qt "github.com/frankban/quicktest"
	vk "github.com/vulkan-go/vulkan"
)

func TestReportFlags(t *testing.T) {
	c := qt.New(t)

	all := reportFlags(
		core.DebugSeverityVerbose|core.DebugSeverityWarning|core.DebugSeverityError,
		core.DebugTypeGeneral|core.DebugTypeValidation|core.DebugTypePerformance,
	)
	want := vk.DebugReportFlags(vk.DebugReportDebugBit | vk.DebugReportWarningBit |
		vk.DebugReportPerformanceWarningBit | vk.DebugReportErrorBit)
	c.Assert(all, qt.Equals, want)

	perfOnly := reportFlags(core.DebugSeverityWarning, core.DebugTypePerformance)
	c.Assert(perfOnly, qt.Equals, vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit))

	c.Assert(reportFlags(0, core.DebugTypeGeneral), qt.Equals, vk.DebugReportFlags(0))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		flags    vk.DebugReportFlagBits
		severity core.DebugSeverity
		kind     core.DebugMessageType
	}{
		{vk.DebugReportErrorBit, core.DebugSeverityError, core.DebugTypeValidation},
		{vk.DebugReportWarningBit, core.DebugSeverityWarning, core.DebugTypeValidation},
		{vk.DebugReportPerformanceWarningBit, core.DebugSeverityWarning, core.DebugTypePerformance},
		{vk.DebugReportInformationBit, core.DebugSeverityInfo, core.DebugTypeGeneral},
		{vk.DebugReportDebugBit, core.DebugSeverityVerbose, core.DebugTypeGeneral},
		{vk.DebugReportErrorBit | vk.DebugReportWarningBit, core.DebugSeverityError, core.DebugTypeValidation},
	}

	c := qt.New(t)
	for _, test := range tests {
		severity, kind := classify(vk.DebugReportFlags(test.flags))
		c.Check(severity, qt.Equals, test.severity, qt.Commentf("flags %#x", test.flags))
		c.Check(kind, qt.Equals, test.kind, qt.Commentf("flags %#x", test.flags))
	}
}

func TestMessengerError(t *testing.T) {
	tests := []struct {
		ret  vk.Result
		soft bool
		err  string
	}{
		{vk.Success, false, ""},
		{vk.NotReady, true, `extension entry point not present: vk.CreateDebugReportCallback\(\): .*`},
		{vk.ErrorExtensionNotPresent, true, `extension entry point not present: vk.CreateDebugReportCallback\(\): .*`},
		{vk.ErrorOutOfHostMemory, false, `vk.CreateDebugReportCallback\(\): .*`},
	}

	c := qt.New(t)
	for _, test := range tests {
		err := messengerError(test.ret)
		if test.err == "" {
			c.Check(err, qt.IsNil)
			continue
		}
		c.Check(err, qt.ErrorMatches, test.err, qt.Commentf("result %d", test.ret))
		c.Check(errors.Is(err, core.ErrExtensionNotPresent), qt.Equals, test.soft, qt.Commentf("result %d", test.ret))
	}
}
