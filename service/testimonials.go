package service

import (
	"context"

	"github.com/adunare/community-site-go/models"
)

// ListTestimonials returns testimonials, restricted to approved ones unless
// includePending is set (admin moderation view).
func (s *Service) ListTestimonials(ctx context.Context, includePending bool) ([]models.Testimonial, error) {
	items, err := s.testimonials.List(ctx)
	if err != nil {
		return nil, err
	}
	if includePending {
		return items, nil
	}

	visible := make([]models.Testimonial, 0, len(items))
	for _, t := range items {
		if t.Approved {
			visible = append(visible, t)
		}
	}
	return visible, nil
}

// AddTestimonial records a submission. Unlike gallery items, testimonials
// always start unapproved and wait for an admin.
func (s *Service) AddTestimonial(ctx context.Context, author, role, text string) (models.Testimonial, error) {
	return s.testimonials.Create(ctx, models.Testimonial{
		Author:   author,
		Role:     role,
		Text:     text,
		Approved: false,
	})
}

// ToggleTestimonialApproval flips the approved flag.
func (s *Service) ToggleTestimonialApproval(ctx context.Context, id string) error {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	t, err := s.testimonials.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.testimonials.Update(ctx, id, map[string]any{"approved": !t.Approved})
}

func (s *Service) DeleteTestimonial(ctx context.Context, id string) error {
	return s.testimonials.Delete(ctx, id)
}
