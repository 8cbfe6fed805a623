package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/domain/repositories"
	"tutorlink.backend/internal/infrastructure/realtime"
)

// rejectionReasonDefault is stamped on rejected verification requests.
const rejectionReasonDefault = "Profile did not meet verification requirements"

// institutionTypeFallback is used when backfilling a missing institution
// profile at moderation time.
const institutionTypeFallback = "general"

// ProfileNotifier broadcasts moderation changes to subscribed dashboards
type ProfileNotifier interface {
	PublishProfileEvent(ctx context.Context, event realtime.ProfileEvent)
}

// ModerationUsecase executes admin approve/reject/delete decisions on tutor
// and institution users. Each decision makes two redundant durable writes
// (role-profile flag and verification request); the action succeeds when at
// least one of them lands. Per-admin override caches keep the admin's own
// view consistent while remote state settles.
type ModerationUsecase struct {
	userRepo        repositories.UserRepository
	tutorRepo       repositories.TutorProfileRepository
	institutionRepo repositories.InstitutionProfileRepository
	requestRepo     repositories.VerificationRequestRepository
	notifier        ProfileNotifier

	mu        sync.Mutex
	overrides map[uuid.UUID]*OverrideCache // keyed by admin ID
}

// NewModerationUsecase creates a new moderation usecase
func NewModerationUsecase(
	userRepo repositories.UserRepository,
	tutorRepo repositories.TutorProfileRepository,
	institutionRepo repositories.InstitutionProfileRepository,
	requestRepo repositories.VerificationRequestRepository,
	notifier ProfileNotifier,
) *ModerationUsecase {
	return &ModerationUsecase{
		userRepo:        userRepo,
		tutorRepo:       tutorRepo,
		institutionRepo: institutionRepo,
		requestRepo:     requestRepo,
		notifier:        notifier,
		overrides:       make(map[uuid.UUID]*OverrideCache),
	}
}

// overridesFor returns the acting admin's override cache, creating it on
// first use.
func (u *ModerationUsecase) overridesFor(adminID uuid.UUID) *OverrideCache {
	u.mu.Lock()
	defer u.mu.Unlock()
	cache, ok := u.overrides[adminID]
	if !ok {
		cache = NewOverrideCache()
		u.overrides[adminID] = cache
	}
	return cache
}

// ApproveUser approves a tutor or institution user.
func (u *ModerationUsecase) ApproveUser(ctx context.Context, adminID, userID uuid.UUID) (*entities.ModerationResult, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}
	if !user.Role.Moderatable() {
		return nil, domainerrors.InvalidAction("only tutor and institution users can be approved")
	}

	profileErr := u.writeRoleProfileFlag(ctx, user, true)
	requestErr := u.writeVerificationRequest(ctx, user, adminID, true)

	if profileErr != nil && requestErr != nil {
		return nil, domainerrors.PersistenceFailure("approval could not be persisted", errors.Join(profileErr, requestErr))
	}

	u.overridesFor(adminID).MarkApproved(userID)
	if u.notifier != nil {
		u.notifier.PublishProfileEvent(ctx, realtime.ProfileEvent{
			UserID: userID,
			Action: "approve",
			Status: string(entities.VerificationApproved),
		})
	}

	return &entities.ModerationResult{
		UserID:             userID,
		Status:             entities.VerificationApproved,
		RoleProfileWritten: profileErr == nil,
		RequestWritten:     requestErr == nil,
	}, nil
}

// RejectUser rejects a tutor or institution user. A user whose resolved
// status is already approved cannot be demoted; the only way out of approved
// is deletion.
func (u *ModerationUsecase) RejectUser(ctx context.Context, adminID, userID uuid.UUID) (*entities.ModerationResult, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}
	if !user.Role.Moderatable() {
		return nil, domainerrors.InvalidAction("only tutor and institution users can be rejected")
	}

	status, err := u.resolveUser(ctx, adminID, user)
	if err != nil {
		return nil, err
	}
	if status == entities.VerificationApproved {
		return nil, domainerrors.InvalidAction("approved users cannot be rejected, only deleted")
	}

	profileErr := u.writeRoleProfileFlag(ctx, user, false)
	requestErr := u.writeVerificationRequest(ctx, user, adminID, false)

	if profileErr != nil && requestErr != nil {
		return nil, domainerrors.PersistenceFailure("rejection could not be persisted", errors.Join(profileErr, requestErr))
	}

	u.overridesFor(adminID).MarkRejected(userID)
	if u.notifier != nil {
		u.notifier.PublishProfileEvent(ctx, realtime.ProfileEvent{
			UserID: userID,
			Action: "reject",
			Status: string(entities.VerificationRejected),
		})
	}

	return &entities.ModerationResult{
		UserID:             userID,
		Status:             entities.VerificationRejected,
		RoleProfileWritten: profileErr == nil,
		RequestWritten:     requestErr == nil,
	}, nil
}

// DeleteUser soft deletes a user account.
func (u *ModerationUsecase) DeleteUser(ctx context.Context, adminID, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return err
	}
	if user.Role == entities.UserRoleAdmin {
		return domainerrors.InvalidAction("admin accounts cannot be deleted here")
	}

	if err := u.userRepo.SoftDelete(ctx, userID); err != nil {
		return domainerrors.DeletionFailure("user could not be deleted", err)
	}

	u.overridesFor(adminID).Forget(userID)
	if u.notifier != nil {
		u.notifier.PublishProfileEvent(ctx, realtime.ProfileEvent{
			UserID: userID,
			Action: "delete",
		})
	}
	return nil
}

// ListUsers returns the moderation screen rows: all non-admin users matching
// the filters, each with its verification status resolved against the acting
// admin's session overrides.
func (u *ModerationUsecase) ListUsers(ctx context.Context, adminID uuid.UUID, search string, role entities.UserRole) ([]*entities.ManagedUser, error) {
	users, err := u.userRepo.List(ctx, search, role)
	if err != nil {
		return nil, err
	}

	var tutorIDs, institutionIDs, moderatableIDs []uuid.UUID
	for _, usr := range users {
		switch usr.Role {
		case entities.UserRoleTutor:
			tutorIDs = append(tutorIDs, usr.ID)
			moderatableIDs = append(moderatableIDs, usr.ID)
		case entities.UserRoleInstitution:
			institutionIDs = append(institutionIDs, usr.ID)
			moderatableIDs = append(moderatableIDs, usr.ID)
		}
	}

	tutorVerified := make(map[uuid.UUID]null.Bool)
	if len(tutorIDs) > 0 {
		profiles, err := u.tutorRepo.ListByUserIDs(ctx, tutorIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			tutorVerified[p.UserID] = p.Verified
		}
	}

	institutionVerified := make(map[uuid.UUID]null.Bool)
	if len(institutionIDs) > 0 {
		profiles, err := u.institutionRepo.ListByUserIDs(ctx, institutionIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range profiles {
			institutionVerified[p.UserID] = p.Verified
		}
	}

	requestByUser := make(map[uuid.UUID]*entities.VerificationRequest)
	if len(moderatableIDs) > 0 {
		requests, err := u.requestRepo.ListByUserIDs(ctx, moderatableIDs)
		if err != nil {
			return nil, err
		}
		// newest row wins when a user has several
		for _, req := range requests {
			if existing, ok := requestByUser[req.UserID]; !ok || req.UpdatedAt.After(existing.UpdatedAt) {
				requestByUser[req.UserID] = req
			}
		}
	}

	cache := u.overridesFor(adminID)
	managed := make([]*entities.ManagedUser, 0, len(users))
	for _, usr := range users {
		if usr.Role == entities.UserRoleAdmin {
			continue
		}
		row := &entities.ManagedUser{User: usr}
		if usr.Role.Moderatable() {
			var verified interface{}
			switch usr.Role {
			case entities.UserRoleTutor:
				if v, ok := tutorVerified[usr.ID]; ok {
					verified = v
				}
			case entities.UserRoleInstitution:
				if v, ok := institutionVerified[usr.ID]; ok {
					verified = v
				}
			}
			row.VerificationStatus = ResolveVerificationStatus(cache.OverridesFor(usr.ID), verified, requestByUser[usr.ID])
		}
		managed = append(managed, row)
	}
	return managed, nil
}

// ResolveUserStatus resolves one user's verification status for the acting
// admin's session.
func (u *ModerationUsecase) ResolveUserStatus(ctx context.Context, adminID, userID uuid.UUID) (entities.VerificationStatus, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NotFound("user not found")
		}
		return "", err
	}
	if !user.Role.Moderatable() {
		return "", domainerrors.InvalidAction("user role is not subject to moderation")
	}
	return u.resolveUser(ctx, adminID, user)
}

// ModerationStats summarizes the admin dashboard counters
type ModerationStats struct {
	UsersByRole     map[entities.UserRole]int64 `json:"usersByRole"`
	PendingRequests int                         `json:"pendingRequests"`
}

// GetStats returns dashboard counters for the admin overview.
func (u *ModerationUsecase) GetStats(ctx context.Context) (*ModerationStats, error) {
	byRole, err := u.userRepo.CountByRole(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.requestRepo.ListByStatus(ctx, entities.RequestStatusPending)
	if err != nil {
		return nil, err
	}
	return &ModerationStats{
		UsersByRole:     byRole,
		PendingRequests: len(pending),
	}, nil
}

// resolveUser computes the status from the durable signals plus the admin's
// session overrides.
func (u *ModerationUsecase) resolveUser(ctx context.Context, adminID uuid.UUID, user *entities.User) (entities.VerificationStatus, error) {
	var verified interface{}
	switch user.Role {
	case entities.UserRoleTutor:
		profile, err := u.tutorRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return "", err
		}
		if profile != nil {
			verified = profile.Verified
		}
	case entities.UserRoleInstitution:
		profile, err := u.institutionRepo.GetByUserID(ctx, user.ID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return "", err
		}
		if profile != nil {
			verified = profile.Verified
		}
	}

	request, err := u.requestRepo.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}

	overrides := u.overridesFor(adminID).OverridesFor(user.ID)
	return ResolveVerificationStatus(overrides, verified, request), nil
}

// writeRoleProfileFlag updates the role-profile's verified flag, backfilling
// a minimal profile row when none exists. A missing row is the expected
// insert-fallback path, not an error.
func (u *ModerationUsecase) writeRoleProfileFlag(ctx context.Context, user *entities.User, verified bool) error {
	switch user.Role {
	case entities.UserRoleTutor:
		err := u.tutorRepo.SetVerified(ctx, user.ID, verified)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return u.tutorRepo.Create(ctx, &entities.TutorProfile{
				UserID:   user.ID,
				Verified: null.BoolFrom(verified),
			})
		}
		return err
	case entities.UserRoleInstitution:
		err := u.institutionRepo.SetVerified(ctx, user.ID, verified)
		if errors.Is(err, domainerrors.ErrNotFound) {
			return u.institutionRepo.Create(ctx, &entities.InstitutionProfile{
				UserID:          user.ID,
				Verified:        null.BoolFrom(verified),
				InstitutionName: user.FullName,
				InstitutionType: institutionTypeFallback,
				EstablishedYear: time.Now().Year(),
			})
		}
		return err
	default:
		return domainerrors.ErrInvalidAction
	}
}

// writeVerificationRequest stamps the decision on the user's verification
// request, creating one when absent.
func (u *ModerationUsecase) writeVerificationRequest(ctx context.Context, user *entities.User, adminID uuid.UUID, approved bool) error {
	now := time.Now()

	status := entities.RequestStatusRejected
	var reason null.String
	if approved {
		status = entities.RequestStatusVerified
	} else {
		reason = null.StringFrom(rejectionReasonDefault)
	}

	request, err := u.requestRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		return u.requestRepo.Create(ctx, &entities.VerificationRequest{
			UserID:          user.ID,
			UserType:        entities.VerificationUserTypeFor(user.Role),
			Status:          status,
			VerifiedBy:      uuid.NullUUID{UUID: adminID, Valid: true},
			VerifiedAt:      &now,
			RejectionReason: reason,
		})
	}

	request.Status = status
	request.VerifiedBy = uuid.NullUUID{UUID: adminID, Valid: true}
	request.VerifiedAt = &now
	request.RejectionReason = reason
	return u.requestRepo.Update(ctx, request)
}
