package jobs

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"tutorlink.backend/internal/domain/entities"
)

// requirementExpiryStore is the slice of the requirement repository the job needs
type requirementExpiryStore interface {
	GetExpiredOpen(ctx context.Context, limit int) ([]*entities.Requirement, error)
	ExpireRequirements(ctx context.Context, ids []uuid.UUID) error
}

// RequirementExpiryJob closes open tutoring requirements past their deadline
type RequirementExpiryJob struct {
	repo     requirementExpiryStore
	interval time.Duration
	stop     chan struct{}
}

func NewRequirementExpiryJob(repo requirementExpiryStore, interval time.Duration) *RequirementExpiryJob {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &RequirementExpiryJob{
		repo:     repo,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *RequirementExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting requirement expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Requirement expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Requirement expiry job stopped")
			return
		case <-ticker.C:
			j.processExpired(ctx)
		}
	}
}

func (j *RequirementExpiryJob) Stop() {
	close(j.stop)
}

func (j *RequirementExpiryJob) processExpired(ctx context.Context) {
	expired, err := j.repo.GetExpiredOpen(ctx, 100)
	if err != nil {
		log.Printf("❌ Error fetching expired requirements: %v", err)
		return
	}

	if len(expired) == 0 {
		return
	}

	var ids []uuid.UUID
	for _, req := range expired {
		ids = append(ids, req.ID)
	}

	if err := j.repo.ExpireRequirements(ctx, ids); err != nil {
		log.Printf("❌ Error expiring requirements: %v", err)
		return
	}

	log.Printf("✅ Expired %d requirements", len(expired))
}
