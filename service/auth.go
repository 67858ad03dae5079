package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adunare/community-site-go/models"
)

// SignUp registers a credential and returns the new principal. The caller
// follows up with ResolveIdentity to materialize the profile.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (models.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.credentials.Get(ctx, email); err == nil {
		return models.Principal{}, ErrEmailTaken
	} else if err != ErrNotFound {
		return models.Principal{}, fmt.Errorf("check credential -> %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Principal{}, fmt.Errorf("hash password -> %w", err)
	}

	principalID := uuid.NewString()
	_, err = s.credentials.Create(ctx, models.Credential{
		ID:           email,
		PrincipalID:  principalID,
		PasswordHash: string(hash),
	})
	if err != nil {
		return models.Principal{}, fmt.Errorf("store credential -> %w", err)
	}

	return models.Principal{
		ID:          principalID,
		Email:       email,
		DisplayName: displayName,
	}, nil
}

// SignIn verifies a credential and returns the principal.
func (s *Service) SignIn(ctx context.Context, email, password string) (models.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	cred, err := s.credentials.Get(ctx, email)
	if err == ErrNotFound {
		return models.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Principal{}, fmt.Errorf("load credential -> %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return models.Principal{}, ErrInvalidCredentials
	}

	principal := models.Principal{ID: cred.PrincipalID, Email: email}
	if user, err := s.users.Get(ctx, cred.PrincipalID); err == nil {
		principal.DisplayName = user.Name
		principal.PhotoURL = user.Avatar
	}
	return principal, nil
}
