// Package rows implements the view, edit and delete actions shared by the
// console's data tables.
package rows

import (
	"fmt"
	stdhtml "html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"finitefield.org/dashpro-admin/internal/admin/dom"
	"finitefield.org/dashpro-admin/internal/admin/i18n"
	"finitefield.org/dashpro-admin/internal/admin/observability"
	"finitefield.org/dashpro-admin/internal/admin/ui"
	"finitefield.org/dashpro-admin/public"
)

const (
	galleryModal     = "imageGalleryModal"
	descriptionClass = "category-description-row"
	expandedClass    = "show-description"
)

// DefaultGalleryImage is shown for every product in the image gallery.
const DefaultGalleryImage = public.GalleryImagePath

// Controller applies row actions to the coordinator's document.
type Controller struct {
	coord  *ui.Coordinator
	text   func(key string) string
	logger *zap.Logger
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New returns a controller resolving toast and label text through text,
// which must follow the active language.
func New(coord *ui.Coordinator, text func(key string) string, opts ...Option) *Controller {
	c := &Controller{coord: coord, text: text}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = observability.OrNop(c.logger).Named("rows")
	return c
}

func (c *Controller) doc() *goquery.Selection {
	return c.coord.Document().Selection
}

// Action runs the row action behind btn, an element inside one of spec's
// table rows. It reports whether btn was a recognised action.
func (c *Controller) Action(spec Spec, btn *goquery.Selection, prompt ui.Prompter) bool {
	row := btn.Closest("tr")
	if row.Length() == 0 {
		return false
	}
	switch {
	case spec.ViewClass != "" && btn.HasClass(spec.ViewClass):
		c.View(spec, row)
	case spec.EditClass != "" && btn.HasClass(spec.EditClass):
		c.Edit(spec, row)
	case spec.DeleteClass != "" && btn.HasClass(spec.DeleteClass):
		c.Delete(spec, row, prompt)
	case spec.GalleryClass != "" && btn.HasClass(spec.GalleryClass):
		c.Gallery(row)
	case spec.ToggleClass != "" && btn.HasClass(spec.ToggleClass):
		c.ToggleDescription(row, btn)
	default:
		return false
	}
	return true
}

// Row finds the table row carrying id.
func (c *Controller) Row(spec Spec, id string) *goquery.Selection {
	attr := spec.Attribute()
	return dom.ByID(c.doc(), spec.TableID).Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		v, ok := tr.Attr(attr)
		return ok && v == id
	}).First()
}

func (c *Controller) fieldValue(row *goquery.Selection, f Field) string {
	if f.Description {
		if next := row.Next(); next.HasClass(descriptionClass) {
			if p := next.Find("p").First(); p.Length() > 0 {
				return strings.TrimSpace(p.Text())
			}
		}
	}
	return row.AttrOr("data-"+f.Attr, "")
}

// View fills the read-only modal from the row's data attributes.
func (c *Controller) View(spec Spec, row *goquery.Selection) {
	modal := dom.ByID(c.doc(), spec.ViewModal)
	if modal.Length() == 0 {
		c.logger.Warn("view modal not found", zap.String("table", spec.Name), zap.String("modal", spec.ViewModal))
		return
	}
	id := row.AttrOr(spec.Attribute(), "")
	setText(modal, spec.ViewID, id)
	for _, f := range spec.Fields {
		if f.View != "" {
			setText(modal, f.View, c.fieldValue(row, f))
		}
	}
	c.coord.OpenModal(spec.ViewModal)
}

// Edit fills the edit form from the row and stashes the row id in the
// hidden original-id field.
func (c *Controller) Edit(spec Spec, row *goquery.Selection) {
	modal := dom.ByID(c.doc(), spec.EditModal)
	id := row.AttrOr(spec.Attribute(), "")
	if modal.Length() == 0 {
		c.logger.Warn("edit modal not found", zap.String("table", spec.Name), zap.String("modal", spec.EditModal))
		if spec.Name == Products.Name {
			c.coord.ShowToast(c.text("toastSimulatingEditProduct")+" "+id+".", ui.ToastInfo)
		}
		return
	}
	setText(modal, spec.EditIDDisplay, id)
	for _, f := range spec.Fields {
		if f.Edit != "" {
			dom.SetValue(dom.ByID(modal, f.Edit), c.fieldValue(row, f))
		}
	}
	dom.SetValue(dom.ByID(modal, spec.EditOriginalID), id)
	c.coord.OpenModal(spec.EditModal)
}

// Delete asks for confirmation before removing the row. With the delete
// modal present the row is stashed and a fresh one-shot confirm handler
// replaces any earlier one; without it prompt decides immediately.
func (c *Controller) Delete(spec Spec, row *goquery.Selection, prompt ui.Prompter) {
	id := row.AttrOr(spec.Attribute(), "")
	if !c.coord.ModalExists(spec.DeleteModal) {
		c.logger.Warn("delete modal not found, prompting", zap.String("table", spec.Name), zap.String("modal", spec.DeleteModal))
		if prompt == nil || !prompt.Confirm(fmt.Sprintf("%s %s?", c.text(spec.ConfirmPromptKey), id)) {
			return
		}
		c.remove(row)
		c.coord.ShowToast(c.deletedMessage(spec, id), ui.ToastSuccess)
		return
	}

	setText(dom.ByID(c.doc(), spec.DeleteModal), spec.DeleteIDDisplay, id)
	c.coord.OpenModal(spec.DeleteModal)
	c.coord.ArmConfirm(spec.DeleteModal, row, func(target *goquery.Selection) {
		deleted := id
		if target.Length() > 0 {
			deleted = target.AttrOr(spec.Attribute(), id)
			c.remove(target)
		}
		c.coord.CloseModal(spec.DeleteModal)
		c.coord.ShowToast(c.deletedMessage(spec, deleted), ui.ToastSuccess)
	})
}

// ConfirmDelete fires the armed delete for spec. It reports false when no
// delete is pending.
func (c *Controller) ConfirmDelete(spec Spec) bool {
	return c.coord.Confirm(spec.DeleteModal)
}

func (c *Controller) deletedMessage(spec Spec, id string) string {
	parts := []string{c.text(spec.SubjectKey)}
	if spec.DeletedIDPrefix != "" {
		parts = append(parts, spec.DeletedIDPrefix)
	}
	parts = append(parts, id, c.text("hasBeenDeleted"))
	return strings.Join(parts, " ")
}

// remove detaches row and its description row.
func (c *Controller) remove(row *goquery.Selection) {
	if next := row.Next(); next.HasClass(descriptionClass) {
		next.Remove()
	}
	row.Remove()
}

// Submit writes the edit form back onto the row identified by the hidden
// original-id field: data attributes, visible cells and badge classes.
func (c *Controller) Submit(spec Spec) {
	form := dom.ByID(c.doc(), spec.EditForm)
	if form.Length() == 0 {
		form = dom.ByID(c.doc(), spec.EditModal)
	}
	id := dom.Value(dom.ByID(form, spec.EditOriginalID))
	row := c.Row(spec, id)
	if row.Length() == 0 {
		c.logger.Warn("edited row not found", zap.String("table", spec.Name), zap.String("id", id))
	} else {
		cells := row.ChildrenFiltered("td")
		for _, f := range spec.Fields {
			if f.Edit == "" {
				continue
			}
			input := dom.ByID(form, f.Edit)
			if input.Length() == 0 {
				continue
			}
			value := dom.Value(input)
			row.SetAttr("data-"+f.Attr, value)
			switch {
			case f.Description:
				c.writeDescription(row, value)
			case f.Cell >= 0 && f.Cell < cells.Length():
				c.writeCell(cells.Eq(f.Cell), f, value)
			}
		}
	}
	c.coord.CloseModal(spec.EditModal)
	c.coord.ShowToast(fmt.Sprintf("%s %s %s", c.text(spec.SubjectKey), id, c.text("hasBeenUpdated")), ui.ToastSuccess)
}

func (c *Controller) writeCell(cell *goquery.Selection, f Field, value string) {
	switch {
	case f.Badge != nil:
		tag := cell.Find("." + f.Badge.Base).First()
		if tag.Length() == 0 {
			cell.SetHtml(`<span class="` + f.Badge.Base + `"></span>`)
			tag = cell.Find("." + f.Badge.Base).First()
		}
		tag.SetAttr("class", f.Badge.Class(value))
		if key, ok := f.Badge.Keys[value]; ok {
			tag.SetAttr(i18n.AttrKey, key)
			tag.SetText(c.text(key))
		} else {
			tag.RemoveAttr(i18n.AttrKey)
			tag.SetText(value)
		}
	case f.Span:
		span := cell.Find("span").First()
		if span.Length() == 0 {
			cell.SetHtml("<span></span>")
			span = cell.Find("span").First()
		}
		// User-entered names are no longer catalog text.
		span.RemoveAttr(i18n.AttrKey)
		span.SetText(value)
	default:
		cell.SetText(value)
	}
}

func (c *Controller) writeDescription(row *goquery.Selection, value string) {
	next := row.Next()
	if !next.HasClass(descriptionClass) {
		return
	}
	p := next.Find("p").First()
	if p.Length() == 0 {
		return
	}
	p.RemoveAttr(i18n.AttrKey)
	p.SetText(value)
	name := strings.ToLower(row.AttrOr("data-name", ""))
	name = strings.ReplaceAll(strings.ReplaceAll(name, " & ", ""), " ", "")
	next.SetAttr("data-category", name)
}

// ToggleDescription expands or collapses the description row below row and
// relabels btn to match.
func (c *Controller) ToggleDescription(row, btn *goquery.Selection) {
	next := row.Next()
	if !next.HasClass(descriptionClass) {
		c.logger.Warn("description row not found", zap.String("id", row.AttrOr("data-category-id", "")))
		c.coord.ShowToast(c.text("noDetailedDescription"), ui.ToastInfo)
		return
	}
	key := "categoriesHideDescription"
	if next.HasClass(expandedClass) {
		next.RemoveClass(expandedClass)
		btn.RemoveClass("btn-secondary").AddClass("btn-primary")
		key = "categoriesShowDescription"
	} else {
		next.AddClass(expandedClass)
		btn.RemoveClass("btn-primary").AddClass("btn-secondary")
	}
	btn.SetAttr(i18n.AttrKey, key)
	btn.SetText(c.text(key))
}

// Gallery opens the image gallery for a product row.
func (c *Controller) Gallery(row *goquery.Selection) {
	name := row.AttrOr("data-name", "")
	modal := dom.ByID(c.doc(), galleryModal)
	title := dom.ByID(modal, "galleryProductName")
	container := modal.Find(".gallery-images-container").First()
	if modal.Length() == 0 || title.Length() == 0 || container.Length() == 0 {
		c.logger.Warn("image gallery not found", zap.String("modal", galleryModal))
		c.coord.ShowToast(fmt.Sprintf("%s %s.", c.text("toastSimulatingImageGallery"), name), ui.ToastInfo)
		return
	}

	title.SetText(name + " " + c.text("productsProductImages"))
	var b strings.Builder
	if row.AttrOr("data-images", "1") == "0" {
		fmt.Fprintf(&b, `<p class="no-images" data-lang-key="noImagesAvailable">%s</p>`, stdhtml.EscapeString(c.text("noImagesAvailable")))
	} else {
		fmt.Fprintf(&b, `<div class="image-viewer-wrapper"><img src="%s" alt="%s"></div>`,
			stdhtml.EscapeString(DefaultGalleryImage), stdhtml.EscapeString(name))
		fmt.Fprintf(&b, `<p class="image-source-note" data-lang-key="productImagesSimulatedNote">%s</p>`,
			stdhtml.EscapeString(c.text("productImagesSimulatedNote")))
	}
	container.SetHtml(b.String())
	c.coord.OpenModal(galleryModal)
}

func setText(root *goquery.Selection, id, value string) {
	if id == "" {
		return
	}
	if el := dom.ByID(root, id); el.Length() > 0 {
		el.SetText(value)
	}
}
