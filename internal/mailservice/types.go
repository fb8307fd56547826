package mailservice

import (
	"context"
	"html/template"
	"sync"

	"github.com/go-mail/mail/v2"

	"github.com/sushihentaime/wayfarer/internal/common"
)

type MailService struct {
	mb      common.MessageConsumer
	m       Mailer
	logger  MailLogger
	siteURL string
	ctx     context.Context
	cancel  context.CancelFunc
}

type MailLogger interface {
	Error(msg string, args ...any)
	Info(msg string, args ...any)
}

// welcomeData is the template data of the welcome e-mail.
type welcomeData struct {
	UnsubscribeURL string
}

// renderedMail holds the three named blocks of an e-mail template after execution.
type renderedMail struct {
	Subject   string
	PlainBody string
	HTMLBody  string
}

type Mail struct {
	mu     sync.Mutex
	dialer Dialer
	parser TemplateRenderer
	sender string
}

type Mailer interface {
	send(recipient string, data welcomeData, templateFile string) error
}

// Template renders the embedded e-mail templates, parsing each file once.
type Template struct {
	mu     sync.Mutex
	parsed map[string]*template.Template
}

type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type TemplateRenderer interface {
	Render(name string, data any) (*renderedMail, error)
}
