package newsletterservice

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/sushihentaime/wayfarer/internal/common"
)

type Subscriber struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type SubscriberInput struct {
	Email string `json:"email" validate:"required,email,max=254"`
}

type UnsubscribeInput struct {
	Token string `json:"token" validate:"required"`
}

// SubscribedEvent is the body of a newsletter.subscribed message.
type SubscribedEvent struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type SubscriberModel struct {
	db *sql.DB
}

type NewsletterService struct {
	m        *SubscriberModel
	producer common.MessageProducer
	logger   *slog.Logger
}
