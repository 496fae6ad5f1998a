package ui

import (
	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/net/html"

	"finitefield.org/dashpro-admin/internal/admin/dom"
)

// modalState is the registry record for one modal element. Each handler
// field is a single slot: assigning it replaces the previous occupant.
type modalState struct {
	dismiss    func()
	pendingRow *html.Node
	confirm    func(row *goquery.Selection)
}

func (c *Coordinator) modal(id string) *modalState {
	st, ok := c.modals[id]
	if !ok {
		st = &modalState{}
		c.modals[id] = st
	}
	return st
}

// OpenModal shows the modal and, on its first opening, attaches the
// outside-click dismiss handler. Dismissing also drops any pending row.
func (c *Coordinator) OpenModal(id string) bool {
	el := dom.ByID(c.doc.Selection, id)
	if el.Length() == 0 {
		c.warnMissing("modal", id)
		return false
	}
	dom.SetStyle(el, "display", "flex")

	st := c.modal(id)
	if st.dismiss == nil {
		st.dismiss = func() {
			c.CloseModal(id)
			c.ClearPending(id)
		}
	}
	return true
}

// CloseModal hides the modal. The pending row is left in place.
func (c *Coordinator) CloseModal(id string) bool {
	el := dom.ByID(c.doc.Selection, id)
	if el.Length() == 0 {
		c.warnMissing("modal", id)
		return false
	}
	dom.SetStyle(el, "display", "none")
	return true
}

// ModalVisible reports whether the modal is shown.
func (c *Coordinator) ModalVisible(id string) bool {
	return dom.Style(dom.ByID(c.doc.Selection, id), "display") == "flex"
}

// ModalExists reports whether the document has the modal.
func (c *Coordinator) ModalExists(id string) bool {
	return dom.ByID(c.doc.Selection, id).Length() > 0
}

// DismissHandlers counts outside-click handlers attached to the modal.
func (c *Coordinator) DismissHandlers(id string) int {
	if st, ok := c.modals[id]; ok && st.dismiss != nil {
		return 1
	}
	return 0
}

// DismissOnOverlay runs the dismiss handler when target is the modal
// overlay itself rather than something inside it.
func (c *Coordinator) DismissOnOverlay(target *goquery.Selection) bool {
	if target.Length() == 0 || !target.HasClass("modal") {
		return false
	}
	id := target.AttrOr("id", "")
	st, ok := c.modals[id]
	if !ok || st.dismiss == nil {
		return false
	}
	st.dismiss()
	return true
}

// ArmConfirm remembers row for the modal and installs fn as its one-shot
// confirm handler, discarding any handler armed by an earlier open.
func (c *Coordinator) ArmConfirm(id string, row *goquery.Selection, fn func(row *goquery.Selection)) {
	st := c.modal(id)
	st.pendingRow = nil
	if row != nil && row.Length() > 0 {
		st.pendingRow = row.Get(0)
	}
	st.confirm = fn
}

// Confirm fires the armed handler against the pending row, then clears
// both. It returns false when nothing was armed.
func (c *Coordinator) Confirm(id string) bool {
	st, ok := c.modals[id]
	if !ok || st.confirm == nil {
		c.logger.Warn("confirm without armed handler", zap.String("modal", id))
		return false
	}
	fn, node := st.confirm, st.pendingRow
	st.confirm, st.pendingRow = nil, nil

	row := c.doc.Selection.Slice(0, 0)
	if node != nil && dom.Attached(node) {
		row = c.doc.FindNodes(node)
	}
	fn(row)
	return true
}

// ClearPending drops the modal's pending row and confirm handler.
func (c *Coordinator) ClearPending(id string) {
	if st, ok := c.modals[id]; ok {
		st.pendingRow, st.confirm = nil, nil
	}
}

// PendingRow returns the row a confirmation would act on.
func (c *Coordinator) PendingRow(id string) (*goquery.Selection, bool) {
	st, ok := c.modals[id]
	if !ok || st.pendingRow == nil || !dom.Attached(st.pendingRow) {
		return nil, false
	}
	return c.doc.FindNodes(st.pendingRow), true
}
