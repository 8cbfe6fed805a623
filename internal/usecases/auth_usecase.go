package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/domain/repositories"
	"tutorlink.backend/pkg/crypto"
	"tutorlink.backend/pkg/jwt"
	redispkg "tutorlink.backend/pkg/redis"
)

// SessionManager stores login sessions server-side. Satisfied by the Redis
// session store; nil disables session logins.
type SessionManager interface {
	CreateSession(ctx context.Context, sessionID string, data *redispkg.SessionData, expiration time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*redispkg.SessionData, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo        repositories.UserRepository
	tutorRepo       repositories.TutorProfileRepository
	institutionRepo repositories.InstitutionProfileRepository
	studentRepo     repositories.StudentProfileRepository
	jwtService      *jwt.JWTService
	sessions        SessionManager
	refreshExpiry   time.Duration
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	tutorRepo repositories.TutorProfileRepository,
	institutionRepo repositories.InstitutionProfileRepository,
	studentRepo repositories.StudentProfileRepository,
	jwtService *jwt.JWTService,
	sessions SessionManager,
	refreshExpiry time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:        userRepo,
		tutorRepo:       tutorRepo,
		institutionRepo: institutionRepo,
		studentRepo:     studentRepo,
		jwtService:      jwtService,
		sessions:        sessions,
		refreshExpiry:   refreshExpiry,
	}
}

// Register creates a user and the role-profile row for their chosen role.
// The role-profile write is best effort: a user whose profile insert fails
// still has an account and ends up on the lazily-backfilled moderation path.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	role := entities.UserRole(input.Role)
	if role != entities.UserRoleStudent && role != entities.UserRoleTutor && role != entities.UserRoleInstitution {
		return nil, domainerrors.BadRequest("unsupported role")
	}

	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	switch role {
	case entities.UserRoleStudent:
		err = u.studentRepo.Create(ctx, &entities.StudentProfile{
			UserID:     user.ID,
			GradeLevel: input.GradeLevel,
			School:     null.NewString(input.School, input.School != ""),
			City:       input.City,
		})
	case entities.UserRoleTutor:
		mode := entities.TeachingMode(input.TeachingMode)
		if mode == "" {
			mode = entities.TeachingModeBoth
		}
		err = u.tutorRepo.Create(ctx, &entities.TutorProfile{
			UserID:       user.ID,
			Subjects:     input.Subjects,
			City:         input.City,
			TeachingMode: mode,
			HourlyRate:   input.HourlyRate,
		})
	case entities.UserRoleInstitution:
		name := input.InstitutionName
		if name == "" {
			name = input.FullName
		}
		err = u.institutionRepo.Create(ctx, &entities.InstitutionProfile{
			UserID:          user.ID,
			InstitutionName: name,
			InstitutionType: input.InstitutionType,
			EstablishedYear: input.EstablishedYear,
			City:            input.City,
		})
	}
	if err != nil {
		// moderation backfills the profile later
		return user, nil
	}

	return user, nil
}

// Login authenticates a user and returns tokens, optionally binding them to
// a server-side session.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessions != nil {
		sessionID := uuid.New().String()
		err := u.sessions.CreateSession(ctx, sessionID, &redispkg.SessionData{
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}, u.refreshExpiry)
		if err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Logout deletes a server-side session.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if u.sessions == nil || sessionID == "" {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// ChangePassword verifies the current password and stores a new hash.
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckPassword(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.Unauthorized("current password is incorrect")
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	return u.userRepo.Update(ctx, user)
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}
