package service

import (
	"context"
	"fmt"
	"time"

	"github.com/adunare/community-site-go/models"
)

// SubmitContact records a contact-form message and relays it by email.
// Recording is the primary write; the relay is fire-and-forget and its
// failure never reaches the sender.
func (s *Service) SubmitContact(ctx context.Context, name, email, message string) (models.ContactMessage, error) {
	msg, err := s.contact.Create(ctx, models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
		Date:    time.Now().UTC(),
	})
	if err != nil {
		return models.ContactMessage{}, err
	}

	if s.notifier != nil && s.contactRecipient != "" {
		subject := fmt.Sprintf("Contact form: %s", msg.Name)
		body := fmt.Sprintf(
			"<p><strong>%s</strong> (%s) wrote:</p><p>%s</p>",
			msg.Name, msg.Email, msg.Message,
		)
		s.fireAndForget("contact_relay", func() error {
			return s.notifier.Send(s.contactRecipient, "Site Admin", subject, body)
		})
	}

	return msg, nil
}
