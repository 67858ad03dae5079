package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/adunare/community-site-go/models"
)

// ListGallery returns gallery items. Unless includePending is set (admin
// moderation view), only effectively approved items are returned — which
// includes pre-moderation records that never got an approved flag.
func (s *Service) ListGallery(ctx context.Context, includePending bool) ([]models.GalleryItem, error) {
	items, err := s.gallery.List(ctx)
	if err != nil {
		return nil, err
	}
	if includePending {
		return items, nil
	}

	visible := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if item.IsApproved() {
			visible = append(visible, item)
		}
	}
	return visible, nil
}

// AddGalleryItem persists a new media item. DateAdded is server-assigned.
// Inline image payloads get a thumbnail and, on the remote path, move to
// object storage first.
func (s *Service) AddGalleryItem(ctx context.Context, item models.GalleryItem) (models.GalleryItem, error) {
	if item.Source == "" {
		item.Source = models.SourceUpload
	}
	if item.Type == "" {
		item.Type = models.MediaImage
	}
	item.DateAdded = time.Now().UTC()

	if item.Type == models.MediaImage && isInlineData(item.URL) {
		thumb, err := makeThumbnail(item.URL)
		if err != nil {
			s.log.Warn("thumbnail generation failed", zap.Error(err))
		} else {
			stored, err := s.storeBinary(ctx, thumb, "gallery/thumbs")
			if err != nil {
				return models.GalleryItem{}, fmt.Errorf("store thumbnail -> %w", err)
			}
			item.Thumb = stored
		}
	}

	url, err := s.storeBinary(ctx, item.URL, "gallery")
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("store gallery media -> %w", err)
	}
	item.URL = url

	return s.gallery.Create(ctx, item)
}

func (s *Service) UpdateGalleryItem(ctx context.Context, id string, fields map[string]any) error {
	return s.gallery.Update(ctx, id, fields)
}

func (s *Service) DeleteGalleryItem(ctx context.Context, id string) error {
	if existing, err := s.gallery.Get(ctx, id); err == nil {
		s.destroyHosted(existing.URL)
		s.destroyHosted(existing.Thumb)
	}
	return s.gallery.Delete(ctx, id)
}

// ToggleGalleryApproval flips the item's effective visibility. A legacy
// record with no flag reads as approved, so its first toggle hides it.
func (s *Service) ToggleGalleryApproval(ctx context.Context, id string) error {
	s.toggleMu.Lock()
	defer s.toggleMu.Unlock()

	item, err := s.gallery.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.gallery.Update(ctx, id, map[string]any{"approved": !item.IsApproved()})
}

// SyncInstagram fetches the configured media feed. The fetched posts are
// not integrated into the gallery; the current product behavior is attempt
// fetch, integrate nothing, and this preserves it until that is resolved.
func (s *Service) SyncInstagram(ctx context.Context) ([]models.GalleryItem, error) {
	if s.instagramFeedURL == "" {
		return []models.GalleryItem{}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.instagramFeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request -> %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch instagram feed -> %w", err)
	}
	defer resp.Body.Close()

	n, _ := io.Copy(io.Discard, resp.Body)
	s.log.Info("instagram feed fetched",
		zap.Int("status", resp.StatusCode), zap.Int64("bytes", n))

	return []models.GalleryItem{}, nil
}
