// Package help renders the help centre: topic cards with details modals
// and the FAQ accordion.
package help

import (
	"strconv"

	"github.com/a-h/templ"

	"finitefield.org/dashpro-admin/internal/admin/templates/components"
	h "finitefield.org/dashpro-admin/internal/admin/templates/helpers"
)

// Page renders the help content.
func Page(data PageData) templ.Component {
	faqs := make([]templ.Component, 0, data.FAQs)
	for i := 1; i <= data.FAQs; i++ {
		n := strconv.Itoa(i)
		faqs = append(faqs, h.El("div", h.Attrs{"class", "faq-item"},
			h.El("div", h.Attrs{"class", "faq-question"}, h.Label("span", "faqQ"+n, nil), h.Text(" "), h.Icon("fa-chevron-down")),
			h.Label("div", "faqA"+n, h.Attrs{"class", "faq-answer"}),
		))
	}
	return h.Group(
		components.PageHeader(data.TitleKey),
		h.El("div", h.Attrs{"class", "help-cards-grid"}, h.Each(data.Cards, card)),
		h.El("div", h.Attrs{"class", "faq-section"},
			h.Label("h2", "faqTitle", nil),
			h.Group(faqs...),
		),
		h.HTMLLabel("p", "helpSupportHtml", h.Attrs{"class", "help-support"}),
		h.Each(data.Cards, modal),
	)
}

func card(c Card) templ.Component {
	return h.El("div", h.Attrs{"class", "card help-card"},
		h.El("div", h.Attrs{"class", "card-icon"}, h.Icon(c.Icon)),
		h.Label("h3", c.TitleKey(), h.Attrs{"class", "card-title"}),
		h.Label("p", c.TextKey(), nil),
		h.El("button", h.Attrs{"type", "button", "class", "btn-details", "data-modal-target", c.Modal},
			h.Label("span", "detailsBtn", nil), h.Text(" "), h.Icon("fa-arrow-right")),
	)
}

func modal(c Card) templ.Component {
	paras := make([]templ.Component, 0, len(c.Texts))
	for _, key := range c.Texts {
		paras = append(paras, h.Label("p", key, nil))
	}
	return components.Modal(c.Modal, components.ModalTitleKey(c.Modal), paras...)
}
