package help

// PageName is the route segment of the help page.
const PageName = "help"

// Card is a help topic with its details modal.
type Card struct {
	Name  string
	Icon  string
	Modal string
	// Texts are the paragraph keys of the modal body.
	Texts []string
}

// Cards lists the help topics in display order.
var Cards = []Card{
	{Name: "Documentation", Icon: "fa-book", Modal: "docModal", Texts: []string{"modalDocText1", "modalDocText2"}},
	{Name: "Ticket", Icon: "fa-ticket-alt", Modal: "ticketModal", Texts: []string{"modalTicketText1", "modalTicketText2"}},
	{Name: "Forum", Icon: "fa-comments", Modal: "forumModal", Texts: []string{"modalForumText1", "modalForumText2"}},
	{Name: "Tutorials", Icon: "fa-video", Modal: "tutorialsModal", Texts: []string{"modalTutorialsText1", "modalTutorialsText2"}},
	{Name: "Contact", Icon: "fa-headset", Modal: "contactModal", Texts: []string{"modalContactText1"}},
	{Name: "SystemStatus", Icon: "fa-server", Modal: "systemStatusModal", Texts: []string{"modalSystemStatusText1"}},
}

// TitleKey is the card title key.
func (c Card) TitleKey() string { return "card" + c.Name + "Title" }

// TextKey is the card summary key.
func (c Card) TextKey() string { return "card" + c.Name + "Text" }

// FAQCount is the number of FAQ entries in the catalog.
const FAQCount = 6

// PageData is the help payload.
type PageData struct {
	TitleKey string
	Cards    []Card
	FAQs     int
}

// BuildPageData prepares the help page.
func BuildPageData() PageData {
	return PageData{TitleKey: "helpTitle", Cards: Cards, FAQs: FAQCount}
}
