package newsletterservice

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/sushihentaime/wayfarer/internal/common"
)

// NewNewsletterService returns the subscriber service. producer may be nil, in which
// case no newsletter.subscribed events are published.
func NewNewsletterService(db *sql.DB, producer common.MessageProducer, logger *slog.Logger) *NewsletterService {
	return &NewsletterService{
		m:        newSubscriberModel(db),
		producer: producer,
		logger:   logger,
	}
}

func (s *NewsletterService) GetSubscribers(ctx context.Context) ([]Subscriber, error) {
	return s.m.getSubscribers(ctx)
}

func (s *NewsletterService) GetSubscriberByID(ctx context.Context, id int64) (*Subscriber, error) {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	return s.m.getSubscriberById(ctx, id)
}

// Subscribe adds a subscriber and publishes a newsletter.subscribed event carrying the
// plain unsubscribe token. A failed publish is logged and does not undo the subscription.
func (s *NewsletterService) Subscribe(ctx context.Context, input *SubscriberInput) (*Subscriber, error) {
	input.Email = strings.TrimSpace(input.Email)

	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	token, hash, err := newToken()
	if err != nil {
		return nil, err
	}

	sub := &Subscriber{Email: input.Email}
	if err := s.m.insert(ctx, sub, hash); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, duplicateEmail()
		}
		return nil, err
	}

	if s.producer == nil {
		return sub, nil
	}

	msg, err := json.Marshal(SubscribedEvent{Email: sub.Email, Token: token})
	if err != nil {
		return nil, err
	}

	if err := s.producer.Publish(ctx, msg, common.NewsletterSubscribedKey, common.NewsletterExchange); err != nil {
		s.logger.Error("could not publish subscriber event", slog.Int64("id", sub.ID), slog.String("error", err.Error()))
	}

	return sub, nil
}

func (s *NewsletterService) UpdateSubscriber(ctx context.Context, id int64, input *SubscriberInput) (*Subscriber, error) {
	input.Email = strings.TrimSpace(input.Email)

	v := common.NewValidator()
	validateID(v, id)
	v.Struct(input)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	sub := &Subscriber{ID: id, Email: input.Email}
	if err := s.m.updateSubscriber(ctx, sub); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, duplicateEmail()
		}
		return nil, err
	}

	return sub, nil
}

func (s *NewsletterService) DeleteSubscriber(ctx context.Context, id int64) error {
	v := common.NewValidator()
	validateID(v, id)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteSubscriber(ctx, id)
}

// Unsubscribe removes the subscriber the token was issued to.
func (s *NewsletterService) Unsubscribe(ctx context.Context, input *UnsubscribeInput) error {
	v := common.NewValidator()
	v.Struct(input)
	if !v.Valid() {
		return v.ValidationError()
	}

	return s.m.deleteByHash(ctx, hashToken(strings.TrimSpace(input.Token)))
}
