package outreach

// Lead is the recipient of an outreach message. Custom carries user-defined
// CRM fields of any type; only string values ever reach the template engine.
type Lead struct {
	Email     string
	FirstName string
	LastName  string
	FullName  string
	Company   string
	Title     string
	Phone     string
	Custom    map[string]any
}

// Inbox is the sending identity a campaign step or reply goes out from.
type Inbox struct {
	FromName  string
	FromEmail string
	FirstName string
	LastName  string
	Company   string
	Title     string
	Phone     string
	Website   string
}

// Step holds one campaign step's stored templates. Subject and Body may use
// the full template grammar: spintax, conditionals, fallbacks, variables.
type Step struct {
	Subject string
	Body    string
	Tag     string
}

// Message is a rendered outreach email, ready for delivery.
type Message struct {
	ID      string
	To      string
	Subject string
	Body    string
	Tag     string
}
