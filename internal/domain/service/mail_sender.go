package service

import (
	"context"
	"errors"

	"displaygram/internal/domain/entity"
)

// ErrPermanentDelivery marks a delivery failure that retrying cannot fix.
var ErrPermanentDelivery = errors.New("permanent mail delivery failure")

// MailSender defines the interface for delivering a message to its recipients
type MailSender interface {
	// Send delivers the message. Errors wrapping ErrPermanentDelivery must not be retried.
	Send(ctx context.Context, message *entity.MailMessage) error
}
