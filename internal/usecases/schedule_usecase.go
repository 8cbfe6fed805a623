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

// ScheduleUsecase handles tutor calendars and student bookings
type ScheduleUsecase struct {
	scheduleRepo repositories.ScheduleRepository
	courseRepo   repositories.CourseRepository
}

// NewScheduleUsecase creates a new schedule usecase
func NewScheduleUsecase(
	scheduleRepo repositories.ScheduleRepository,
	courseRepo repositories.CourseRepository,
) *ScheduleUsecase {
	return &ScheduleUsecase{
		scheduleRepo: scheduleRepo,
		courseRepo:   courseRepo,
	}
}

// PublishSlot creates an available slot on the acting tutor's calendar.
func (u *ScheduleUsecase) PublishSlot(ctx context.Context, tutorID uuid.UUID, input *entities.CreateSlotInput) (*entities.ScheduleSlot, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return nil, domainerrors.BadRequest("slot must end after it starts")
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, domainerrors.BadRequest("slot cannot start in the past")
	}

	slot := &entities.ScheduleSlot{
		TutorID:  tutorID,
		StartsAt: input.StartsAt,
		EndsAt:   input.EndsAt,
		Status:   entities.SlotAvailable,
		Notes:    input.Notes,
	}

	if input.CourseID != "" {
		courseID, err := uuid.Parse(input.CourseID)
		if err != nil {
			return nil, domainerrors.BadRequest("invalid course id")
		}
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
		slot.CourseID = uuid.NullUUID{UUID: courseID, Valid: true}
	}

	if err := u.scheduleRepo.Create(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// BookSlot books an available slot for the acting student.
func (u *ScheduleUsecase) BookSlot(ctx context.Context, studentID, slotID uuid.UUID) (*entities.ScheduleSlot, error) {
	slot, err := u.scheduleRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("slot not found")
		}
		return nil, err
	}
	if slot.Status != entities.SlotAvailable {
		return nil, domainerrors.Conflict("slot is no longer available")
	}

	slot.Status = entities.SlotBooked
	slot.StudentID = uuid.NullUUID{UUID: studentID, Valid: true}
	if err := u.scheduleRepo.Update(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

// CancelSlot cancels a slot. The owning tutor or the booked student may
// cancel.
func (u *ScheduleUsecase) CancelSlot(ctx context.Context, actorID, slotID uuid.UUID) error {
	slot, err := u.scheduleRepo.GetByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("slot not found")
		}
		return err
	}
	if slot.TutorID != actorID && !(slot.StudentID.Valid && slot.StudentID.UUID == actorID) {
		return domainerrors.Forbidden("not allowed to cancel this slot")
	}

	slot.Status = entities.SlotCancelled
	return u.scheduleRepo.Update(ctx, slot)
}

// MySchedule lists the acting tutor's slots in a time range.
func (u *ScheduleUsecase) MySchedule(ctx context.Context, tutorID uuid.UUID, from, to time.Time) ([]*entities.ScheduleSlot, error) {
	return u.scheduleRepo.ListByTutor(ctx, tutorID, from, to)
}

// MyBookings lists the acting student's booked slots.
func (u *ScheduleUsecase) MyBookings(ctx context.Context, studentID uuid.UUID) ([]*entities.ScheduleSlot, error) {
	return u.scheduleRepo.ListByStudent(ctx, studentID)
}
