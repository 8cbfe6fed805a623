package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"tutorlink.backend/internal/domain/entities"
	"tutorlink.backend/internal/infrastructure/realtime"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, role entities.UserRole) ([]*entities.User, error) {
	args := m.Called(ctx, search, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(ctx context.Context) (map[entities.UserRole]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[entities.UserRole]int64), args.Error(1)
}

// Mock TutorProfileRepository
type MockTutorProfileRepository struct {
	mock.Mock
}

func (m *MockTutorProfileRepository) Create(ctx context.Context, profile *entities.TutorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockTutorProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.TutorProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.TutorProfile), args.Error(1)
}

func (m *MockTutorProfileRepository) Update(ctx context.Context, profile *entities.TutorProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockTutorProfileRepository) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	args := m.Called(ctx, userID, verified)
	return args.Error(0)
}

func (m *MockTutorProfileRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.TutorProfile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TutorProfile), args.Error(1)
}

func (m *MockTutorProfileRepository) ListVerified(ctx context.Context, subject, city string) ([]*entities.TutorProfile, error) {
	args := m.Called(ctx, subject, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.TutorProfile), args.Error(1)
}

// Mock InstitutionProfileRepository
type MockInstitutionProfileRepository struct {
	mock.Mock
}

func (m *MockInstitutionProfileRepository) Create(ctx context.Context, profile *entities.InstitutionProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockInstitutionProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.InstitutionProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.InstitutionProfile), args.Error(1)
}

func (m *MockInstitutionProfileRepository) Update(ctx context.Context, profile *entities.InstitutionProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockInstitutionProfileRepository) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	args := m.Called(ctx, userID, verified)
	return args.Error(0)
}

func (m *MockInstitutionProfileRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.InstitutionProfile, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.InstitutionProfile), args.Error(1)
}

// Mock StudentProfileRepository
type MockStudentProfileRepository struct {
	mock.Mock
}

func (m *MockStudentProfileRepository) Create(ctx context.Context, profile *entities.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockStudentProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.StudentProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.StudentProfile), args.Error(1)
}

func (m *MockStudentProfileRepository) Update(ctx context.Context, profile *entities.StudentProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// Mock VerificationRequestRepository
type MockVerificationRequestRepository struct {
	mock.Mock
}

func (m *MockVerificationRequestRepository) Create(ctx context.Context, req *entities.VerificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockVerificationRequestRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.VerificationRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRequestRepository) Update(ctx context.Context, req *entities.VerificationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockVerificationRequestRepository) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

func (m *MockVerificationRequestRepository) ListByStatus(ctx context.Context, status entities.VerificationRequestStatus) ([]*entities.VerificationRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.VerificationRequest), args.Error(1)
}

// Mock CourseRepository
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *entities.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Course), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, course *entities.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*entities.Course, error) {
	args := m.Called(ctx, tutorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Course), args.Error(1)
}

func (m *MockCourseRepository) ListActive(ctx context.Context, subject string, limit, offset int) ([]*entities.Course, int64, error) {
	args := m.Called(ctx, subject, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Course), args.Get(1).(int64), args.Error(2)
}

// Mock EnrollmentRepository
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Create(ctx context.Context, enrollment *entities.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) GetByCourseAndStudent(ctx context.Context, courseID, studentID uuid.UUID) (*entities.Enrollment, error) {
	args := m.Called(ctx, courseID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.EnrollmentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockEnrollmentRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID) ([]*entities.EnrolledStudent, error) {
	args := m.Called(ctx, tutorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.EnrolledStudent), args.Error(1)
}

func (m *MockEnrollmentRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Enrollment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Enrollment), args.Error(1)
}

// Mock RequirementRepository
type MockRequirementRepository struct {
	mock.Mock
}

func (m *MockRequirementRepository) Create(ctx context.Context, req *entities.Requirement) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequirementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Requirement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.RequirementStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRequirementRepository) ListOpen(ctx context.Context) ([]*entities.Requirement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.Requirement, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) GetExpiredOpen(ctx context.Context, limit int) ([]*entities.Requirement, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Requirement), args.Error(1)
}

func (m *MockRequirementRepository) ExpireRequirements(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// Mock ConversationRepository
type MockConversationRepository struct {
	mock.Mock
}

func (m *MockConversationRepository) Create(ctx context.Context, conv *entities.Conversation) error {
	args := m.Called(ctx, conv)
	return args.Error(0)
}

func (m *MockConversationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Conversation), args.Error(1)
}

func (m *MockConversationRepository) GetByPair(ctx context.Context, tutorID, studentID uuid.UUID) (*entities.Conversation, error) {
	args := m.Called(ctx, tutorID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Conversation), args.Error(1)
}

func (m *MockConversationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Conversation), args.Error(1)
}

func (m *MockConversationRepository) TouchLastMessage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, msg *entities.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*entities.Message, int64, error) {
	args := m.Called(ctx, conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Message), args.Get(1).(int64), args.Error(2)
}

func (m *MockMessageRepository) MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) error {
	args := m.Called(ctx, conversationID, readerID)
	return args.Error(0)
}

// Mock ScheduleRepository
type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, slot *entities.ScheduleSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ScheduleSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ScheduleSlot), args.Error(1)
}

func (m *MockScheduleRepository) Update(ctx context.Context, slot *entities.ScheduleSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockScheduleRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduleRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID, from, to time.Time) ([]*entities.ScheduleSlot, error) {
	args := m.Called(ctx, tutorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ScheduleSlot), args.Error(1)
}

func (m *MockScheduleRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*entities.ScheduleSlot, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.ScheduleSlot), args.Error(1)
}

// Mock ProfileNotifier
type MockProfileNotifier struct {
	mock.Mock
}

func (m *MockProfileNotifier) PublishProfileEvent(ctx context.Context, event realtime.ProfileEvent) {
	m.Called(ctx, event)
}
