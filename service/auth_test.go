package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndSignIn(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	principal, err := svc.SignUp(ctx, "Ana@Example.org", "s3cret-pass", "Ana Pop")
	require.NoError(t, err)
	assert.NotEmpty(t, principal.ID)
	assert.Equal(t, "ana@example.org", principal.Email, "emails are normalized")

	signedIn, err := svc.SignIn(ctx, "ana@example.org", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, principal.ID, signedIn.ID)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "ana@example.org", "s3cret-pass", "Ana")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "ana@example.org", "other-pass", "Impostor")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "ana@example.org", "s3cret-pass", "Ana")
	require.NoError(t, err)

	_, err = svc.SignIn(ctx, "ana@example.org", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(ctx, "nobody@example.org", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignInCarriesProfileDisplayName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	principal, err := svc.SignUp(ctx, "ana@example.org", "s3cret-pass", "Ana Pop")
	require.NoError(t, err)
	_, err = svc.ResolveIdentity(ctx, principal)
	require.NoError(t, err)

	signedIn, err := svc.SignIn(ctx, "ana@example.org", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "Ana Pop", signedIn.DisplayName)
}
