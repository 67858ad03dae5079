package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/adunare/community-site-go/models"
)

func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *Service) GetUser(ctx context.Context, id string) (models.User, error) {
	return s.users.Get(ctx, id)
}

// CreateUser registers a profile. Role defaults to member when unset; only
// known roles are accepted.
func (s *Service) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	if !user.Role.Valid() {
		return models.User{}, ErrInvalidRole
	}
	return s.users.Create(ctx, user)
}

// UpdateUser merges fields into the profile. A role change must name a known
// role; callers enforce that only admins reach this with a role field.
func (s *Service) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	if role, ok := fields["role"]; ok {
		r, _ := role.(string)
		if !models.Role(r).Valid() {
			return ErrInvalidRole
		}
	}
	return s.users.Update(ctx, id, fields)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// ResolveIdentity maps an authenticated principal to its application-level
// profile. A principal with no stored profile gets a synthesized member
// record, so no authenticated identity is ever left without a role. Role is
// read from the stored profile and nowhere else.
func (s *Service) ResolveIdentity(ctx context.Context, p models.Principal) (models.User, error) {
	user, err := s.users.Get(ctx, p.ID)
	if err == nil {
		return user, nil
	}
	if err != ErrNotFound {
		return models.User{}, fmt.Errorf("look up profile -> %w", err)
	}

	name := p.DisplayName
	if name == "" {
		name = displayNameFromEmail(p.Email)
	}

	avatar := p.PhotoURL
	if avatar == "" {
		avatar = defaultAvatarURL(name)
	}

	return s.users.Create(ctx, models.User{
		ID:     p.ID,
		Name:   name,
		Email:  p.Email,
		Role:   models.RoleMember,
		Avatar: avatar,
	})
}

func displayNameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(local)

	words := strings.Fields(local)
	if len(words) == 0 {
		return "Member"
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func defaultAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name)
}
