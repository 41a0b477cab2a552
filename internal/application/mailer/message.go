package mailer

// Address is a mailbox with an optional display name.
type Address struct {
	Email string
	Name  string
}

// Message is a composed multipart email. HTMLBody is the primary part and
// TextBody the plain-text alternative.
type Message struct {
	From     Address
	ReplyTo  *Address
	To       Address
	Subject  string
	HTMLBody string
	TextBody string
}
