package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTestimonialStartsUnapproved(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.AddTestimonial(context.Background(), "Maria", "Member", "Great event!")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.False(t, created.Approved, "testimonials wait for moderation")
}

func TestToggleTestimonialApprovalRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddTestimonial(ctx, "Maria", "Member", "Great event!")
	require.NoError(t, err)

	require.NoError(t, svc.ToggleTestimonialApproval(ctx, created.ID))
	got, err := svc.testimonials.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)

	require.NoError(t, svc.ToggleTestimonialApproval(ctx, created.ID))
	got, err = svc.testimonials.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.Approved)
}

func TestListTestimonialsFiltersPending(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	pending, err := svc.AddTestimonial(ctx, "Maria", "Member", "Great event!")
	require.NoError(t, err)

	public, err := svc.ListTestimonials(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, public)

	require.NoError(t, svc.ToggleTestimonialApproval(ctx, pending.ID))
	public, err = svc.ListTestimonials(ctx, false)
	require.NoError(t, err)
	assert.Len(t, public, 1)
}

func TestDeleteTestimonialIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddTestimonial(ctx, "Maria", "Member", "Great event!")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTestimonial(ctx, created.ID))
	require.NoError(t, svc.DeleteTestimonial(ctx, created.ID))
}
