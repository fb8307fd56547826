package mailservice

import (
	"time"

	"github.com/go-mail/mail/v2"
)

// NewMailer creates an SMTP mailer that renders its messages from tp.
func NewMailer(host string, port int, username, password, sender string, tp TemplateRenderer) *Mail {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &Mail{
		dialer: dialer,
		sender: sender,
		parser: tp,
	}
}

// compose renders templateFile into a message for recipient. Newsletter mail carries
// List-Unsubscribe headers so mail clients can offer one-click unsubscribe.
func (m *Mail) compose(recipient string, data welcomeData, templateFile string) (*mail.Message, error) {
	rendered, err := m.parser.Render(templateFile, data)
	if err != nil {
		return nil, err
	}

	msg := mail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", rendered.Subject)
	if data.UnsubscribeURL != "" {
		msg.SetHeader("List-Unsubscribe", "<"+data.UnsubscribeURL+">")
		msg.SetHeader("List-Unsubscribe-Post", "List-Unsubscribe=One-Click")
	}
	msg.SetBody("text/plain", rendered.PlainBody)
	msg.AddAlternative("text/html", rendered.HTMLBody)

	return msg, nil
}

func (m *Mail) send(recipient string, data welcomeData, templateFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, err := m.compose(recipient, data, templateFile)
	if err != nil {
		return err
	}

	return m.dialer.DialAndSend(msg)
}
