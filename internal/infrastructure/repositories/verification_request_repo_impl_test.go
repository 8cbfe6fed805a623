package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
)

func TestVerificationRequestRepository_CreateAndDecide(t *testing.T) {
	db := newTestDB(t)
	createVerificationRequestTable(t, db)
	repo := NewVerificationRequestRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	adminID := uuid.New()
	req := &entities.VerificationRequest{
		UserID:   userID,
		UserType: entities.VerificationUserTutor,
		Status:   entities.RequestStatusPending,
	}
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, entities.RequestStatusPending, got.Status)
	require.False(t, got.VerifiedBy.Valid)

	now := time.Now()
	got.Status = entities.RequestStatusVerified
	got.VerifiedBy = uuid.NullUUID{UUID: adminID, Valid: true}
	got.VerifiedAt = &now
	require.NoError(t, repo.Update(ctx, got))

	got, err = repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, entities.RequestStatusVerified, got.Status)
	require.Equal(t, adminID, got.VerifiedBy.UUID)
	require.NotNil(t, got.VerifiedAt)
}

func TestVerificationRequestRepository_RejectionReason(t *testing.T) {
	db := newTestDB(t)
	createVerificationRequestTable(t, db)
	repo := NewVerificationRequestRepository(db)
	ctx := context.Background()

	req := &entities.VerificationRequest{
		UserID:          uuid.New(),
		UserType:        entities.VerificationUserInstitute,
		Status:          entities.RequestStatusRejected,
		RejectionReason: null.StringFrom("incomplete documents"),
	}
	require.NoError(t, repo.Create(ctx, req))

	got, err := repo.GetByUserID(ctx, req.UserID)
	require.NoError(t, err)
	require.Equal(t, "incomplete documents", got.RejectionReason.String)
	require.Equal(t, entities.VerificationUserInstitute, got.UserType)
}

func TestVerificationRequestRepository_NewestRowWins(t *testing.T) {
	db := newTestDB(t)
	createVerificationRequestTable(t, db)
	repo := NewVerificationRequestRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	old := &entities.VerificationRequest{ID: uuid.New(), UserID: userID, UserType: entities.VerificationUserTutor, Status: entities.RequestStatusRejected}
	require.NoError(t, repo.Create(ctx, old))
	mustExec(t, db, `UPDATE verification_requests SET updated_at = ? WHERE id = ?`, time.Now().Add(-time.Hour), old.ID)

	latest := &entities.VerificationRequest{ID: uuid.New(), UserID: userID, UserType: entities.VerificationUserTutor, Status: entities.RequestStatusVerified}
	require.NoError(t, repo.Create(ctx, latest))

	got, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)
	require.Equal(t, latest.ID, got.ID)
	require.Equal(t, entities.RequestStatusVerified, got.Status)
}

func TestVerificationRequestRepository_Lists(t *testing.T) {
	db := newTestDB(t)
	createVerificationRequestTable(t, db)
	repo := NewVerificationRequestRepository(db)
	ctx := context.Background()

	a, b := uuid.New(), uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.VerificationRequest{UserID: a, UserType: entities.VerificationUserTutor, Status: entities.RequestStatusPending}))
	require.NoError(t, repo.Create(ctx, &entities.VerificationRequest{UserID: b, UserType: entities.VerificationUserTutor, Status: entities.RequestStatusVerified}))

	got, err := repo.ListByUserIDs(ctx, []uuid.UUID{a, b})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = repo.ListByUserIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	pending, err := repo.ListByStatus(ctx, entities.RequestStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, a, pending[0].UserID)

	_, err = repo.GetByUserID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.VerificationRequest{ID: uuid.New(), Status: entities.RequestStatusVerified})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
