package mailservice

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/sushihentaime/wayfarer/internal/common"
	"golang.org/x/exp/rand"
)

const (
	maxRetries       = 5
	welcomeTemplate  = "welcome_email.html"
	unsubscribeRoute = "/newsletter/unsubscribe"
)

var retryBaseDelay = 500 * time.Millisecond

func NewMailService(mb common.MessageConsumer, host, username, password, sender string, port int, siteURL string, logger *slog.Logger) *MailService {
	ctx, cancel := context.WithCancel(context.Background())
	return &MailService{
		mb:      mb,
		m:       NewMailer(host, port, username, password, sender, NewTemplate()),
		logger:  logger,
		siteURL: strings.TrimRight(siteURL, "/"),
		ctx:     ctx,
		cancel:  cancel,
	}
}

func (s *MailService) unsubscribeURL(token string) string {
	return s.siteURL + unsubscribeRoute + "?token=" + url.QueryEscape(token)
}

// SendWelcomeEmail consumes newsletter.subscribed events and mails each new subscriber
// until Close is called or the delivery channel closes. Events that cannot be decoded
// or delivered are rejected to the dead letter queue.
func (s *MailService) SendWelcomeEmail() {
	msgs, err := s.mb.Consume(common.NewsletterSubscribedKey, common.NewsletterExchange, common.NewsletterSubscribedQueue)
	if err != nil {
		s.logger.Error("could not consume message", slog.String("error", err.Error()))
		return
	}

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var data struct {
					Email string `json:"email"`
					Token string `json:"token"`
				}

				err := json.Unmarshal(msg.Body, &data)
				if err != nil {
					s.logger.Error("could not unmarshal message", slog.String("error", err.Error()))
					msg.Nack(false, false)
					continue
				}

				payload := welcomeData{UnsubscribeURL: s.unsubscribeURL(data.Token)}

				// exponential backoff with jitter
				var attempt int
				for attempt = 0; attempt < maxRetries; attempt++ {
					err = s.m.send(data.Email, payload, welcomeTemplate)
					if err == nil {
						s.logger.Info("welcome email sent", slog.String("email", data.Email))
						msg.Ack(false)
						break
					}

					delay := time.Duration(rand.Int63n(int64(retryBaseDelay) << uint(attempt)))
					s.logger.Info("delaying welcome email", slog.String("email", data.Email), slog.Int("attempt", attempt), slog.Duration("delay", delay))
					time.Sleep(delay)
				}

				if attempt == maxRetries {
					// dead-lettered by the queue
					s.logger.Error("could not send welcome email", slog.String("email", data.Email))
					msg.Nack(false, false)
				}

			case <-s.ctx.Done():
				s.logger.Info("stopping SendWelcomeEmail due to context cancellation")
				return
			}
		}
	}()
}

func (s *MailService) Close() {
	s.cancel()
}
