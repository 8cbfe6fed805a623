package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/domain/repositories"
)

const defaultRequirementTTLDays = 30

// RequirementUsecase handles student tutoring requests and the matching feed
// shown to verified tutors.
type RequirementUsecase struct {
	requirementRepo repositories.RequirementRepository
	tutorRepo       repositories.TutorProfileRepository
	requestRepo     repositories.VerificationRequestRepository
}

// NewRequirementUsecase creates a new requirement usecase
func NewRequirementUsecase(
	requirementRepo repositories.RequirementRepository,
	tutorRepo repositories.TutorProfileRepository,
	requestRepo repositories.VerificationRequestRepository,
) *RequirementUsecase {
	return &RequirementUsecase{
		requirementRepo: requirementRepo,
		tutorRepo:       tutorRepo,
		requestRepo:     requestRepo,
	}
}

// PostRequirement publishes a student's tutoring request.
func (u *RequirementUsecase) PostRequirement(ctx context.Context, studentID uuid.UUID, input *entities.CreateRequirementInput) (*entities.Requirement, error) {
	ttlDays := input.ExpiresInDays
	if ttlDays <= 0 {
		ttlDays = defaultRequirementTTLDays
	}

	mode := entities.RequirementMode(input.PreferredMode)
	if mode == "" {
		mode = entities.RequirementModeAny
	}

	req := &entities.Requirement{
		StudentID:     studentID,
		Subject:       input.Subject,
		Description:   input.Description,
		City:          input.City,
		PreferredMode: mode,
		Budget:        input.Budget,
		Status:        entities.RequirementOpen,
		ExpiresAt:     time.Now().AddDate(0, 0, ttlDays),
	}
	if err := u.requirementRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListMyRequirements lists the acting student's requirements.
func (u *RequirementUsecase) ListMyRequirements(ctx context.Context, studentID uuid.UUID) ([]*entities.Requirement, error) {
	return u.requirementRepo.ListByStudent(ctx, studentID)
}

// CloseRequirement closes a requirement the acting student owns.
func (u *RequirementUsecase) CloseRequirement(ctx context.Context, studentID, requirementID uuid.UUID) error {
	req, err := u.requirementRepo.GetByID(ctx, requirementID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("requirement not found")
		}
		return err
	}
	if req.StudentID != studentID {
		return domainerrors.Forbidden("requirement belongs to another student")
	}
	if req.Status != entities.RequirementOpen {
		return domainerrors.BadRequest("requirement is not open")
	}
	return u.requirementRepo.UpdateStatus(ctx, requirementID, entities.RequirementClosed)
}

// BrowseMatching returns open requirements that fit the acting tutor's
// profile. Only verified tutors see the feed.
func (u *RequirementUsecase) BrowseMatching(ctx context.Context, tutorID uuid.UUID) ([]*entities.Requirement, error) {
	profile, err := u.tutorRepo.GetByUserID(ctx, tutorID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.Forbidden("complete your tutor profile to browse requirements")
		}
		return nil, err
	}

	request, err := u.requestRepo.GetByUserID(ctx, tutorID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	status := ResolveVerificationStatus(SessionOverrides{}, profile.Verified, request)
	if status != entities.VerificationApproved {
		return nil, domainerrors.Forbidden("only verified tutors can browse requirements")
	}

	open, err := u.requirementRepo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Requirement, 0, len(open))
	for _, req := range open {
		if req.MatchesTutor(profile) {
			matched = append(matched, req)
		}
	}
	return matched, nil
}
