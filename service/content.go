package service

import (
	"context"
	"fmt"

	"github.com/adunare/community-site-go/models"
)

// ListContent returns all page content blocks, seeding the defaults first if
// the store has none. Content is never deleted, only updated.
func (s *Service) ListContent(ctx context.Context) ([]models.PageContent, error) {
	blocks, err := s.content.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(blocks) > 0 {
		return blocks, nil
	}

	seeded := make([]models.PageContent, 0, len(DefaultContent))
	for _, block := range DefaultContent {
		created, err := s.content.Create(ctx, block)
		if err != nil {
			return nil, fmt.Errorf("seed content %q -> %w", block.ID, err)
		}
		seeded = append(seeded, created)
	}
	return seeded, nil
}

func (s *Service) GetContent(ctx context.Context, id string) (models.PageContent, error) {
	return s.content.Get(ctx, id)
}

// UpdateContent merges fields into the block. Missing ids are NotFound; the
// seeded keys are the complete set.
func (s *Service) UpdateContent(ctx context.Context, id string, fields map[string]any) error {
	return s.content.Update(ctx, id, fields)
}
