package mailservice

import (
	"errors"
	"sync"

	"github.com/go-mail/mail/v2"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/mock"
	"github.com/sushihentaime/wayfarer/internal/common"
)

type MockTemplate struct {
	mock.Mock
}

func (m *MockTemplate) Render(name string, data any) (*renderedMail, error) {
	args := m.Called(name, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*renderedMail), args.Error(1)
}

type MockDialer struct {
	mock.Mock
}

func (d *MockDialer) DialAndSend(m ...*mail.Message) error {
	args := d.Called(m)
	return args.Error(0)
}

// MockMailer fails its first `failures` sends and records every delivered recipient.
type MockMailer struct {
	mu         sync.Mutex
	failures   int
	attempts   int
	recipients []string
	payloads   []welcomeData
}

func (m *MockMailer) send(recipient string, data welcomeData, templateFile string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.attempts++
	if m.attempts <= m.failures {
		return errors.New("smtp unavailable")
	}

	m.recipients = append(m.recipients, recipient)
	m.payloads = append(m.payloads, data)
	return nil
}

func (m *MockMailer) sent() ([]string, []welcomeData, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.recipients...), append([]welcomeData(nil), m.payloads...), m.attempts
}

type MockLogger struct {
	mock.Mock
}

func (l *MockLogger) Info(msg string, args ...any) {
	l.Called(append([]any{msg}, args...)...)
}

func (l *MockLogger) Error(msg string, args ...any) {
	l.Called(append([]any{msg}, args...)...)
}

// MockMessageConsumer delivers bodies once and then closes the channel.
type MockMessageConsumer struct {
	mock.Mock
	bodies []string
}

func (m *MockMessageConsumer) Consume(key common.BindingKey, exchange common.Exchange, queue common.Queue) (<-chan amqp.Delivery, error) {
	args := m.Called(key, exchange, queue)
	if err := args.Error(0); err != nil {
		return nil, err
	}

	msgsChan := make(chan amqp.Delivery)

	go func() {
		defer close(msgsChan)

		for _, body := range m.bodies {
			msgsChan <- amqp.Delivery{Body: []byte(body)}
		}
	}()

	return msgsChan, nil
}
