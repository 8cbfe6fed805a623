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

func TestInstitutionProfileRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewInstitutionProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	profile := &entities.InstitutionProfile{
		UserID:          userID,
		InstitutionName: "Springfield Academy",
		InstitutionType: "school",
		EstablishedYear: 1995,
		City:            "Springfield",
	}
	require.NoError(t, repo.Create(ctx, profile))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Springfield Academy", got.InstitutionName)
	require.False(t, got.Verified.Valid)

	got.InstitutionName = "Springfield International Academy"
	got.Website = null.StringFrom("https://springfield.example.edu")
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "Springfield International Academy", got.InstitutionName)
	require.Equal(t, "https://springfield.example.edu", got.Website.String)

	_, err = repo.GetByUserID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestInstitutionProfileRepository_SetVerified(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewInstitutionProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.InstitutionProfile{
		UserID:          userID,
		InstitutionName: "City College",
		InstitutionType: "college",
	}))

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

func TestInstitutionProfileRepository_ListByUserIDs(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewInstitutionProfileRepository(db)
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.InstitutionProfile{UserID: first, InstitutionName: "A", InstitutionType: "school"}))
	require.NoError(t, repo.Create(ctx, &entities.InstitutionProfile{UserID: second, InstitutionName: "B", InstitutionType: "school"}))

	profiles, err := repo.ListByUserIDs(ctx, []uuid.UUID{first})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	require.Equal(t, first, profiles[0].UserID)

	profiles, err = repo.ListByUserIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, profiles)
}

func TestStudentProfileRepository_CRUD(t *testing.T) {
	db := newTestDB(t)
	createProfileTables(t, db)
	repo := NewStudentProfileRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	profile := &entities.StudentProfile{
		UserID:     userID,
		GradeLevel: "10",
		City:       "Pune",
	}
	require.NoError(t, repo.Create(ctx, profile))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "10", got.GradeLevel)
	require.False(t, got.School.Valid)

	got.GradeLevel = "11"
	got.School = null.StringFrom("Modern High")
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, "11", got.GradeLevel)
	require.Equal(t, "Modern High", got.School.String)

	_, err = repo.GetByUserID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	require.ErrorIs(t, repo.Update(ctx, &entities.StudentProfile{UserID: uuid.New(), GradeLevel: "9"}), domainerrors.ErrNotFound)
}
