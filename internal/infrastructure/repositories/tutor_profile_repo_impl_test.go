package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
)

func TestTutorProfileRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewTutorProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	p := &entities.TutorProfile{
		UserID:       userID,
		Headline:     "Math tutor",
		Subjects:     "math, physics",
		City:         "Jakarta",
		TeachingMode: entities.TeachingModeBoth,
		HourlyRate:   50,
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Math tutor", got.Headline)
	require.False(t, got.Verified.Valid, "verified starts null, not false")

	got.Bio = null.StringFrom("10 years of teaching")
	got.HourlyRate = 60
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, 60, got.HourlyRate)
	require.Equal(t, "10 years of teaching", got.Bio.String)
}

func TestTutorProfileRepository_SetVerified(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewTutorProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.TutorProfile{UserID: userID, Headline: "T"}))

	require.NoError(t, repo.SetVerified(ctx, userID, true))
	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.True(t, got.Verified.Valid)
	require.True(t, got.Verified.Bool)

	require.NoError(t, repo.SetVerified(ctx, userID, false))
	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.True(t, got.Verified.Valid)
	require.False(t, got.Verified.Bool)

	require.ErrorIs(t, repo.SetVerified(ctx, uuid.New(), true), domainerrors.ErrNotFound)
}

func TestTutorProfileRepository_ListVerified(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewTutorProfileRepository(db)
	ctx := context.Background()

	verified := uuid.New()
	unverified := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.TutorProfile{UserID: verified, Subjects: "math", City: "Bandung"}))
	require.NoError(t, repo.Create(ctx, &entities.TutorProfile{UserID: unverified, Subjects: "math", City: "Bandung"}))
	require.NoError(t, repo.SetVerified(ctx, verified, true))

	got, err := repo.ListVerified(ctx, "math", "bandung")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, verified, got[0].UserID)

	got, err = repo.ListVerified(ctx, "chemistry", "")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTutorProfileRepository_ListByUserIDs(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewTutorProfileRepository(db)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.TutorProfile{UserID: a}))
	require.NoError(t, repo.Create(ctx, &entities.TutorProfile{UserID: b}))

	got, err := repo.ListByUserIDs(ctx, []uuid.UUID{a})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.ListByUserIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = repo.GetByUserID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
