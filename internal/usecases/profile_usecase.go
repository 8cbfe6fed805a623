package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/domain/repositories"
)

// ProfileUsecase handles role-profile reads and self-service edits
type ProfileUsecase struct {
	userRepo        repositories.UserRepository
	tutorRepo       repositories.TutorProfileRepository
	institutionRepo repositories.InstitutionProfileRepository
	studentRepo     repositories.StudentProfileRepository
	requestRepo     repositories.VerificationRequestRepository
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(
	userRepo repositories.UserRepository,
	tutorRepo repositories.TutorProfileRepository,
	institutionRepo repositories.InstitutionProfileRepository,
	studentRepo repositories.StudentProfileRepository,
	requestRepo repositories.VerificationRequestRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		userRepo:        userRepo,
		tutorRepo:       tutorRepo,
		institutionRepo: institutionRepo,
		studentRepo:     studentRepo,
		requestRepo:     requestRepo,
	}
}

// ProfileView is the caller's own account with their role profile and, for
// moderatable roles, the resolved verification status.
type ProfileView struct {
	Account            *entities.User               `json:"user"`
	Tutor              *entities.TutorProfile       `json:"tutorProfile,omitempty"`
	Institution        *entities.InstitutionProfile `json:"institutionProfile,omitempty"`
	Student            *entities.StudentProfile     `json:"studentProfile,omitempty"`
	VerificationStatus entities.VerificationStatus  `json:"verificationStatus,omitempty"`
}

// GetMyProfile loads the caller's account and role profile. A missing role
// profile is not an error; the view simply omits it.
func (u *ProfileUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("user not found")
		}
		return nil, err
	}

	view := &ProfileView{Account: user}

	switch user.Role {
	case entities.UserRoleTutor:
		profile, err := u.tutorRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		view.Tutor = profile
	case entities.UserRoleInstitution:
		profile, err := u.institutionRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		view.Institution = profile
	case entities.UserRoleStudent:
		profile, err := u.studentRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		view.Student = profile
	}

	if user.Role.Moderatable() {
		request, err := u.requestRepo.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		var verified interface{}
		if view.Tutor != nil {
			verified = view.Tutor.Verified
		} else if view.Institution != nil {
			verified = view.Institution.Verified
		}
		// a user viewing their own profile has no session overrides
		view.VerificationStatus = ResolveVerificationStatus(SessionOverrides{}, verified, request)
	}

	return view, nil
}

// UpdateTutorProfile applies a tutor's edits to their own profile.
func (u *ProfileUsecase) UpdateTutorProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateTutorProfileInput) (*entities.TutorProfile, error) {
	profile, err := u.tutorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("tutor profile not found")
		}
		return nil, err
	}

	if input.Headline != "" {
		profile.Headline = input.Headline
	}
	if input.Bio != "" {
		profile.Bio = null.StringFrom(input.Bio)
	}
	if input.Subjects != "" {
		profile.Subjects = input.Subjects
	}
	if input.City != "" {
		profile.City = input.City
	}
	if input.TeachingMode != "" {
		profile.TeachingMode = entities.TeachingMode(input.TeachingMode)
	}
	if input.HourlyRate > 0 {
		profile.HourlyRate = input.HourlyRate
	}
	if input.ExperienceYears > 0 {
		profile.ExperienceYears = input.ExperienceYears
	}

	if err := u.tutorRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateInstitutionProfile applies an institution's edits to their own profile.
func (u *ProfileUsecase) UpdateInstitutionProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateInstitutionProfileInput) (*entities.InstitutionProfile, error) {
	profile, err := u.institutionRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("institution profile not found")
		}
		return nil, err
	}

	if input.InstitutionName != "" {
		profile.InstitutionName = input.InstitutionName
	}
	if input.InstitutionType != "" {
		profile.InstitutionType = input.InstitutionType
	}
	if input.EstablishedYear > 0 {
		profile.EstablishedYear = input.EstablishedYear
	}
	if input.Website != "" {
		profile.Website = null.StringFrom(input.Website)
	}
	if input.City != "" {
		profile.City = input.City
	}

	if err := u.institutionRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// BrowseTutors lists verified tutor profiles for the public directory.
func (u *ProfileUsecase) BrowseTutors(ctx context.Context, subject, city string) ([]*entities.TutorProfile, error) {
	return u.tutorRepo.ListVerified(ctx, subject, city)
}
