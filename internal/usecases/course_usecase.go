package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/domain/repositories"
)

// CourseUsecase handles course and enrollment business logic
type CourseUsecase struct {
	courseRepo     repositories.CourseRepository
	enrollmentRepo repositories.EnrollmentRepository
	userRepo       repositories.UserRepository
}

// NewCourseUsecase creates a new course usecase
func NewCourseUsecase(
	courseRepo repositories.CourseRepository,
	enrollmentRepo repositories.EnrollmentRepository,
	userRepo repositories.UserRepository,
) *CourseUsecase {
	return &CourseUsecase{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
	}
}

// CreateCourse creates a course owned by the acting tutor.
func (u *CourseUsecase) CreateCourse(ctx context.Context, tutorID uuid.UUID, input *entities.CreateCourseInput) (*entities.Course, error) {
	course := &entities.Course{
		TutorID:       tutorID,
		Title:         input.Title,
		Subject:       input.Subject,
		Description:   input.Description,
		Level:         input.Level,
		Price:         input.Price,
		DurationWeeks: input.DurationWeeks,
		IsActive:      true,
	}
	if err := u.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// UpdateCourse applies edits to a course the acting tutor owns.
func (u *CourseUsecase) UpdateCourse(ctx context.Context, tutorID, courseID uuid.UUID, input *entities.UpdateCourseInput) (*entities.Course, error) {
	course, err := u.getOwnedCourse(ctx, tutorID, courseID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		course.Title = input.Title
	}
	if input.Subject != "" {
		course.Subject = input.Subject
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.Level != "" {
		course.Level = input.Level
	}
	if input.Price > 0 {
		course.Price = input.Price
	}
	if input.DurationWeeks > 0 {
		course.DurationWeeks = input.DurationWeeks
	}
	if input.IsActive != nil {
		course.IsActive = *input.IsActive
	}

	if err := u.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse soft deletes a course the acting tutor owns.
func (u *CourseUsecase) DeleteCourse(ctx context.Context, tutorID, courseID uuid.UUID) error {
	if _, err := u.getOwnedCourse(ctx, tutorID, courseID); err != nil {
		return err
	}
	return u.courseRepo.SoftDelete(ctx, courseID)
}

// ListMyCourses lists the acting tutor's courses.
func (u *CourseUsecase) ListMyCourses(ctx context.Context, tutorID uuid.UUID) ([]*entities.Course, error) {
	return u.courseRepo.ListByTutor(ctx, tutorID)
}

// BrowseCourses lists active courses for the catalog.
func (u *CourseUsecase) BrowseCourses(ctx context.Context, subject string, limit, offset int) ([]*entities.Course, int64, error) {
	return u.courseRepo.ListActive(ctx, subject, limit, offset)
}

// Enroll enrolls a student into an active course.
func (u *CourseUsecase) Enroll(ctx context.Context, studentID, courseID uuid.UUID) (*entities.Enrollment, error) {
	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("course not found")
		}
		return nil, err
	}
	if !course.IsActive {
		return nil, domainerrors.BadRequest("course is not open for enrollment")
	}

	existing, err := u.enrollmentRepo.GetByCourseAndStudent(ctx, courseID, studentID)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("already enrolled in this course")
	}

	enrollment := &entities.Enrollment{
		CourseID:  courseID,
		StudentID: studentID,
		Status:    entities.EnrollmentActive,
	}
	if err := u.enrollmentRepo.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// ListMyStudents lists enrollments across the acting tutor's courses.
func (u *CourseUsecase) ListMyStudents(ctx context.Context, tutorID uuid.UUID) ([]*entities.EnrolledStudent, error) {
	return u.enrollmentRepo.ListByTutor(ctx, tutorID)
}

// ListMyEnrollments lists the acting student's enrollments.
func (u *CourseUsecase) ListMyEnrollments(ctx context.Context, studentID uuid.UUID) ([]*entities.Enrollment, error) {
	return u.enrollmentRepo.ListByStudent(ctx, studentID)
}

func (u *CourseUsecase) getOwnedCourse(ctx context.Context, tutorID, courseID uuid.UUID) (*entities.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("course not found")
		}
		return nil, err
	}
	if course.TutorID != tutorID {
		return nil, domainerrors.Forbidden("course belongs to another tutor")
	}
	return course, nil
}
