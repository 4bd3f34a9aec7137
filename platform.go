package rtlkit

import (
	"errors"
	"sync"
)

// ErrNoController is returned by ForceRTL and AllowRTL when the
// Resolver was built without a host layout controller.
var ErrNoController = errors.New("rtlkit: resolver has no layout controller")

// LayoutController is the host platform's layout-direction surface.
// Mobile platforms expose an equivalent of these three operations; on
// those platforms ForceRTL and AllowRTL only take effect after an app
// restart, so implementations are free to defer the change.
type LayoutController interface {
	// IsRTL reports the current effective layout direction.
	IsRTL() bool

	// ForceRTL requests that layout be forced to RTL (or released
	// back to locale-driven layout when enable is false).
	ForceRTL(enable bool) error

	// AllowRTL controls whether RTL layout is honored at all. When
	// disallowed, a forced or locale-driven RTL request still lays
	// out LTR.
	AllowRTL(allow bool) error
}

// StaticController is an in-process LayoutController that models the
// restart-deferred semantics of mobile platforms: ForceRTL and
// AllowRTL record the request, and the effective direction only
// changes when Restart is called. It is useful in tests and in
// long-running services that simulate a host platform.
type StaticController struct {
	mu      sync.Mutex
	rtl     bool
	allowed bool
	pending *bool
}

// NewStaticController returns a controller whose effective direction
// is RTL when rtl is true. RTL layout is allowed by default.
func NewStaticController(rtl bool) *StaticController {
	return &StaticController{rtl: rtl, allowed: true}
}

// IsRTL reports the effective direction. Pending ForceRTL requests are
// not visible until Restart.
func (c *StaticController) IsRTL() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rtl
}

// ForceRTL records a direction request to be applied on Restart.
func (c *StaticController) ForceRTL(enable bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = &enable
	return nil
}

// AllowRTL controls whether RTL requests are honored. Disallowing RTL
// takes effect on Restart like ForceRTL does.
func (c *StaticController) AllowRTL(allow bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allowed = allow
	return nil
}

// Restart applies any pending direction request, honoring AllowRTL.
func (c *StaticController) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending != nil {
		c.rtl = *c.pending && c.allowed
		c.pending = nil
	} else if !c.allowed {
		c.rtl = false
	}
}
