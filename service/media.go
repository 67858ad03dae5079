package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"strings"

	"github.com/disintegration/imaging"
)

const thumbWidth = 480

// storeBinary resolves a binary payload for persistence. On the remote path
// an inline-encoded (data URI) payload is uploaded to object storage and
// replaced with its retrievable URL; the fallback path, and anything that is
// already a URL, is persisted as-is.
func (s *Service) storeBinary(ctx context.Context, payload, folder string) (string, error) {
	if !s.remoteActive || s.uploader == nil || !isInlineData(payload) {
		return payload, nil
	}
	return s.uploader.Upload(ctx, payload, folder)
}

// makeThumbnail decodes an inline image payload, scales it down, and returns
// a JPEG data URI ready for upload. Video payloads and plain URLs are
// skipped by the caller.
func makeThumbnail(payload string) (string, error) {
	raw, err := decodeInlineData(payload)
	if err != nil {
		return "", err
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image -> %w", err)
	}

	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: 80}); err != nil {
		return "", fmt.Errorf("encode thumbnail -> %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func isInlineData(payload string) bool {
	return strings.HasPrefix(payload, "data:")
}

// isHostedURL reports whether url points at our object storage, as opposed
// to inline data or external media.
func isHostedURL(url string) bool {
	return strings.Contains(url, "res.cloudinary.com")
}

func decodeInlineData(payload string) ([]byte, error) {
	_, b64, found := strings.Cut(payload, ";base64,")
	if !found {
		return nil, fmt.Errorf("not a base64 data URI")
	}

	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode data URI -> %w", err)
	}
	return raw, nil
}
