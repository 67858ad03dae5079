package service

import (
	"context"
	"fmt"

	"github.com/adunare/community-site-go/models"
)

func (s *Service) ListEvents(ctx context.Context) ([]models.Event, error) {
	return s.events.List(ctx)
}

func (s *Service) GetEvent(ctx context.Context, id string) (models.Event, error) {
	return s.events.Get(ctx, id)
}

// SaveEvent creates the event when it has no id yet, otherwise replaces the
// stored fields of the existing record. The returned event always carries
// its assigned id.
func (s *Service) SaveEvent(ctx context.Context, event models.Event) (models.Event, error) {
	image, err := s.storeBinary(ctx, event.Image, "events")
	if err != nil {
		return models.Event{}, fmt.Errorf("store event image -> %w", err)
	}
	event.Image = image

	if event.Attendees == nil {
		event.Attendees = []string{}
	}

	if event.ID == "" {
		return s.events.Create(ctx, event)
	}

	fields := map[string]any{
		"title":       event.Title,
		"date":        event.Date,
		"time":        event.Time,
		"endTime":     event.EndTime,
		"location":    event.Location,
		"description": event.Description,
		"type":        event.Type,
		"image":       event.Image,
	}
	if err := s.events.Update(ctx, event.ID, fields); err != nil {
		return models.Event{}, err
	}
	return s.events.Get(ctx, event.ID)
}

// DeleteEvent removes the event unconditionally. Attendee records are not
// cascaded. A hosted image is cleaned up best-effort.
func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	if existing, err := s.events.Get(ctx, id); err == nil {
		s.destroyHosted(existing.Image)
	}
	return s.events.Delete(ctx, id)
}

// ToggleRSVP flips userID's membership in the event's attendee set and
// reports whether this call added them. The RSVP confirmation fires only on
// the add transition; removing an RSVP is silent.
func (s *Service) ToggleRSVP(ctx context.Context, eventID, userID string) (added bool, err error) {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return false, fmt.Errorf("load event -> %w", err)
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load user -> %w", err)
	}

	var attendees []string
	if event.HasAttendee(userID) {
		attendees = make([]string, 0, len(event.Attendees))
		for _, id := range event.Attendees {
			if id != userID {
				attendees = append(attendees, id)
			}
		}
		added = false
	} else {
		attendees = append(append([]string{}, event.Attendees...), userID)
		added = true
	}

	if err := s.events.Update(ctx, eventID, map[string]any{"attendees": attendees}); err != nil {
		return false, err
	}

	if added {
		s.sendRSVPConfirmation(user, event)
	}
	return added, nil
}

func (s *Service) sendRSVPConfirmation(user models.User, event models.Event) {
	if s.notifier == nil || user.Email == "" {
		return
	}

	subject := fmt.Sprintf("You're attending: %s", event.Title)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your spot for <strong>%s</strong> on %s at %s (%s) is confirmed. See you there!</p>",
		user.Name, event.Title, event.Date, event.Time, event.Location,
	)

	s.fireAndForget("rsvp_confirmation", func() error {
		return s.notifier.Send(user.Email, user.Name, subject, body)
	})
}

// destroyHosted removes an object-store asset referenced by url, if any.
// Failures only get logged; the primary delete has its own fate.
func (s *Service) destroyHosted(url string) {
	if s.uploader == nil || !isHostedURL(url) {
		return
	}
	s.fireAndForget("asset_cleanup", func() error {
		return s.uploader.Destroy(context.Background(), url)
	})
}
