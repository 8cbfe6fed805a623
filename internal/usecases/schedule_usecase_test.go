package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tutorlink.backend/internal/domain/entities"
	domainerrors "tutorlink.backend/internal/domain/errors"
	"tutorlink.backend/internal/usecases"
)

type scheduleFixture struct {
	scheduleRepo *MockScheduleRepository
	courseRepo   *MockCourseRepository
	usecase      *usecases.ScheduleUsecase
}

func newScheduleFixture() *scheduleFixture {
	f := &scheduleFixture{
		scheduleRepo: new(MockScheduleRepository),
		courseRepo:   new(MockCourseRepository),
	}
	f.usecase = usecases.NewScheduleUsecase(f.scheduleRepo, f.courseRepo)
	return f
}

func TestPublishSlot(t *testing.T) {
	ctx := context.Background()
	tutorID := uuid.New()
	starts := time.Now().Add(time.Hour)
	ends := starts.Add(time.Hour)

	t.Run("plain slot", func(t *testing.T) {
		f := newScheduleFixture()
		f.scheduleRepo.On("Create", ctx, mock.MatchedBy(func(s *entities.ScheduleSlot) bool {
			return s.TutorID == tutorID && s.Status == entities.SlotAvailable && !s.CourseID.Valid
		})).Return(nil)

		slot, err := f.usecase.PublishSlot(ctx, tutorID, &entities.CreateSlotInput{
			StartsAt: starts,
			EndsAt:   ends,
		})
		require.NoError(t, err)
		assert.Equal(t, entities.SlotAvailable, slot.Status)
	})

	t.Run("course-bound slot checks ownership", func(t *testing.T) {
		f := newScheduleFixture()
		course := &entities.Course{ID: uuid.New(), TutorID: uuid.New()}
		f.courseRepo.On("GetByID", ctx, course.ID).Return(course, nil)

		_, err := f.usecase.PublishSlot(ctx, tutorID, &entities.CreateSlotInput{
			CourseID: course.ID.String(),
			StartsAt: starts,
			EndsAt:   ends,
		})
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
		f.scheduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects inverted and past windows", func(t *testing.T) {
		f := newScheduleFixture()

		_, err := f.usecase.PublishSlot(ctx, tutorID, &entities.CreateSlotInput{StartsAt: ends, EndsAt: starts})
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)

		_, err = f.usecase.PublishSlot(ctx, tutorID, &entities.CreateSlotInput{
			StartsAt: time.Now().Add(-time.Hour),
			EndsAt:   time.Now().Add(time.Hour),
		})
		require.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	})
}

func TestBookSlot(t *testing.T) {
	ctx := context.Background()
	studentID := uuid.New()

	t.Run("books an available slot", func(t *testing.T) {
		f := newScheduleFixture()
		slot := &entities.ScheduleSlot{ID: uuid.New(), TutorID: uuid.New(), Status: entities.SlotAvailable}
		f.scheduleRepo.On("GetByID", ctx, slot.ID).Return(slot, nil)
		f.scheduleRepo.On("Update", ctx, mock.MatchedBy(func(s *entities.ScheduleSlot) bool {
			return s.Status == entities.SlotBooked && s.StudentID.Valid && s.StudentID.UUID == studentID
		})).Return(nil)

		booked, err := f.usecase.BookSlot(ctx, studentID, slot.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.SlotBooked, booked.Status)
	})

	t.Run("double booking conflicts", func(t *testing.T) {
		f := newScheduleFixture()
		slot := &entities.ScheduleSlot{ID: uuid.New(), Status: entities.SlotBooked}
		f.scheduleRepo.On("GetByID", ctx, slot.ID).Return(slot, nil)

		_, err := f.usecase.BookSlot(ctx, studentID, slot.ID)
		require.ErrorIs(t, err, domainerrors.ErrAlreadyExists)
		f.scheduleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestCancelSlot(t *testing.T) {
	ctx := context.Background()
	tutorID := uuid.New()
	studentID := uuid.New()

	slot := func() *entities.ScheduleSlot {
		return &entities.ScheduleSlot{
			ID:        uuid.New(),
			TutorID:   tutorID,
			StudentID: uuid.NullUUID{UUID: studentID, Valid: true},
			Status:    entities.SlotBooked,
		}
	}

	t.Run("tutor cancels", func(t *testing.T) {
		f := newScheduleFixture()
		s := slot()
		f.scheduleRepo.On("GetByID", ctx, s.ID).Return(s, nil)
		f.scheduleRepo.On("Update", ctx, mock.MatchedBy(func(u *entities.ScheduleSlot) bool {
			return u.Status == entities.SlotCancelled
		})).Return(nil)

		require.NoError(t, f.usecase.CancelSlot(ctx, tutorID, s.ID))
	})

	t.Run("booked student cancels", func(t *testing.T) {
		f := newScheduleFixture()
		s := slot()
		f.scheduleRepo.On("GetByID", ctx, s.ID).Return(s, nil)
		f.scheduleRepo.On("Update", ctx, mock.Anything).Return(nil)

		require.NoError(t, f.usecase.CancelSlot(ctx, studentID, s.ID))
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		f := newScheduleFixture()
		s := slot()
		f.scheduleRepo.On("GetByID", ctx, s.ID).Return(s, nil)

		err := f.usecase.CancelSlot(ctx, uuid.New(), s.ID)
		require.ErrorIs(t, err, domainerrors.ErrForbidden)
		f.scheduleRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
