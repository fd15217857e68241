package window

import (
	"testing"

	"github.com/devblok/vkboot/core"
	qt "github.com/frankban/quicktest"
)

func TestNewUnknownBackend(t *testing.T) {
	c := qt.New(t)
	w, err := New(core.WindowConfiguration{Backend: "wayland-direct"})
	c.Assert(err, qt.ErrorMatches, `unknown window backend "wayland-direct"`)
	c.Assert(w, qt.IsNil)
}
