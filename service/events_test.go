package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adunare/community-site-go/models"
)

func seedUserAndEvent(t *testing.T, svc *Service) (models.User, models.Event) {
	t.Helper()
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, models.User{
		Name:  "Ana Pop",
		Email: "ana@example.org",
	})
	require.NoError(t, err)

	event, err := svc.SaveEvent(ctx, models.Event{
		Title:    "Folk Night",
		Date:     "2026-09-12",
		Time:     "19:00",
		Location: "Community Hall",
		Type:     models.EventPerformance,
	})
	require.NoError(t, err)
	require.NotEmpty(t, event.ID)

	return user, event
}

func TestToggleRSVPIsItsOwnInverse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, event := seedUserAndEvent(t, svc)

	added, err := svc.ToggleRSVP(ctx, event.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, added, "first toggle adds")

	got, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{user.ID}, got.Attendees)

	added, err = svc.ToggleRSVP(ctx, event.ID, user.ID)
	require.NoError(t, err)
	assert.False(t, added, "second toggle removes")

	got, err = svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Attendees, "two toggles return to the original set")
}

func TestToggleRSVPNeverDuplicatesAttendee(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, event := seedUserAndEvent(t, svc)

	for i := 0; i < 5; i++ {
		_, err := svc.ToggleRSVP(ctx, event.ID, user.ID)
		require.NoError(t, err)

		got, err := svc.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got.Attendees), 1)
	}
}

func TestToggleRSVPNotifiesOnlyOnAdd(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()
	user, event := seedUserAndEvent(t, svc)

	_, err := svc.ToggleRSVP(ctx, event.ID, user.ID)
	require.NoError(t, err)
	svc.WaitSideEffects()
	require.Equal(t, 1, notifier.count(), "add transition sends a confirmation")
	assert.Equal(t, user.Email, notifier.sent[0].To)

	_, err = svc.ToggleRSVP(ctx, event.ID, user.ID)
	require.NoError(t, err)
	svc.WaitSideEffects()
	assert.Equal(t, 1, notifier.count(), "removing an RSVP is silent")
}

func TestToggleRSVPNotifierFailureDoesNotRollBack(t *testing.T) {
	svc, notifier := newTestService(t)
	notifier.fail = true
	ctx := context.Background()
	user, event := seedUserAndEvent(t, svc)

	added, err := svc.ToggleRSVP(ctx, event.ID, user.ID)
	require.NoError(t, err, "notification failure never surfaces")
	assert.True(t, added)
	svc.WaitSideEffects()

	got, err := svc.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{user.ID}, got.Attendees, "the primary write stands")
}

func TestToggleRSVPUnknownEvent(t *testing.T) {
	svc, _ := newTestService(t)
	user, _ := seedUserAndEvent(t, svc)

	_, err := svc.ToggleRSVP(context.Background(), "missing", user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveEventAssignsIDOnCreate(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	event, err := svc.SaveEvent(ctx, models.Event{Title: "Workshop", Type: models.EventWorkshop})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.NotNil(t, event.Attendees, "attendee set starts empty, not absent")
}

func TestSaveEventWithExistingIDReplacesFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	user, event := seedUserAndEvent(t, svc)

	_, err := svc.ToggleRSVP(ctx, event.ID, user.ID)
	require.NoError(t, err)

	event.Title = "Folk Evening"
	event.Location = "Main Square"
	saved, err := svc.SaveEvent(ctx, event)
	require.NoError(t, err)

	assert.Equal(t, event.ID, saved.ID)
	assert.Equal(t, "Folk Evening", saved.Title)
	assert.Equal(t, "Main Square", saved.Location)
	assert.Equal(t, []string{user.ID}, saved.Attendees, "saving fields does not clobber RSVPs")

	all, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "record count unchanged")
}

func TestSaveEventUnknownIDIsNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SaveEvent(context.Background(), models.Event{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteEventIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	_, event := seedUserAndEvent(t, svc)

	require.NoError(t, svc.DeleteEvent(ctx, event.ID))
	require.NoError(t, svc.DeleteEvent(ctx, event.ID), "second delete is a no-op")

	_, err := svc.GetEvent(ctx, event.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventLegacyPlainStringDescription(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Simulate a legacy record persisted with a plain-string description.
	doc := map[string]any{
		"title":       "Old Gala",
		"description": "A night to remember",
		"attendees":   []string{},
	}
	created, err := svc.store.Create(ctx, ColEvents, doc)
	require.NoError(t, err)

	event, err := svc.GetEvent(ctx, created["id"].(string))
	require.NoError(t, err)
	assert.Equal(t, "A night to remember", event.Description.In("en"))
}
