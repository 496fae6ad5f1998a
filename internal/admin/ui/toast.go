package ui

import (
	"strconv"

	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/dom"
)

// ToastKind is the toast severity.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
	ToastWarning ToastKind = "warning"
)

const toastID = "toastNotification"

// The browser hides a shown toast on its own timer: it reads the duration
// and the generation from these attributes, and a newer generation cancels
// the older timer.
const (
	AttrToastDuration   = "data-toast-duration"
	AttrToastGeneration = "data-toast-generation"
)

var toastIcons = map[ToastKind]string{
	ToastSuccess: "fa-check-circle",
	ToastError:   "fa-times-circle",
	ToastInfo:    "fa-info-circle",
	ToastWarning: "fa-exclamation-triangle",
}

// Known reports whether k has an icon and severity class.
func (k ToastKind) Known() bool {
	_, ok := toastIcons[k]
	return ok
}

// ToastState is the single toast slot.
type ToastState struct {
	Message    string
	Kind       ToastKind
	Visible    bool
	Generation uint64
}

// ShowToast replaces whatever toast is showing and restarts the hide timer.
// Unknown kinds render without an icon or severity class.
func (c *Coordinator) ShowToast(message string, kind ToastKind) {
	el := dom.ByID(c.doc.Selection, toastID)
	if el.Length() == 0 {
		c.warnMissing("toast", toastID)
		return
	}

	for k := range toastIcons {
		el.RemoveClass(string(k))
	}
	icon := el.Find("i").First()
	if kind.Known() {
		icon.SetAttr("class", "fas "+toastIcons[kind])
		icon.RemoveAttr("hidden")
		el.AddClass(string(kind))
	} else {
		icon.SetAttr("class", "fas")
		icon.SetAttr("hidden", "hidden")
		c.logger.Debug("toast kind without icon", zap.String("kind", string(kind)))
	}
	el.Find("span").First().SetText(message)
	el.AddClass("show")

	c.toast = ToastState{
		Message:    message,
		Kind:       kind,
		Visible:    true,
		Generation: c.toast.Generation + 1,
	}
	el.SetAttr(AttrToastDuration, strconv.FormatInt(c.toastIn.Milliseconds(), 10))
	el.SetAttr(AttrToastGeneration, strconv.FormatUint(c.toast.Generation, 10))

	if c.toastTimer != nil {
		c.toastTimer.Stop()
	}
	gen := c.toast.Generation
	c.toastTimer = c.sched.AfterFunc(c.toastIn, func() {
		c.locked(func() { c.hideToast(gen) })
	})
}

// Toast returns the current toast state.
func (c *Coordinator) Toast() ToastState {
	return c.toast
}

// hideToast clears the toast only if no newer toast replaced it.
func (c *Coordinator) hideToast(gen uint64) {
	if c.toast.Generation != gen {
		return
	}
	c.toast.Visible = false
	c.toastTimer = nil
	dom.ByID(c.doc.Selection, toastID).RemoveClass("show")
}

// Close stops pending timers and disposes every chart. The coordinator must
// not be used afterwards.
func (c *Coordinator) Close() {
	if c.toastTimer != nil {
		c.toastTimer.Stop()
		c.toastTimer = nil
	}
	for id, slot := range c.charts {
		slot.dispose()
		delete(c.charts, id)
	}
}
