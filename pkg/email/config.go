package email

// Config holds outbound email configuration. Postmark tokens are optional so
// development environments can run on the DevSender alone. FromEmail
// establishes the sending identity; ReplyToEmail routes prospect replies back
// into the unibox instead of the raw sending address.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	FromEmail            string `env:"OUTREACH_FROM_EMAIL,required"`
	ReplyToEmail         string `env:"OUTREACH_REPLY_TO_EMAIL,required"`
}
