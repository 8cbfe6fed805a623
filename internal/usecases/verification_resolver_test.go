package usecases_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"tutorlink.backend/internal/domain/entities"
	"tutorlink.backend/internal/usecases"
)

func request(status entities.VerificationRequestStatus) *entities.VerificationRequest {
	return &entities.VerificationRequest{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: status,
	}
}

func TestResolveVerificationStatus_Totality(t *testing.T) {
	overrides := []usecases.SessionOverrides{
		{},
		{Approved: true},
		{Rejected: true},
	}
	verifiedFlags := []interface{}{
		nil,
		true,
		false,
		null.BoolFrom(true),
		null.BoolFrom(false),
		null.Bool{},
	}
	requests := []*entities.VerificationRequest{
		nil,
		request(entities.RequestStatusPending),
		request(entities.RequestStatusVerified),
		request(entities.RequestStatusRejected),
	}

	valid := map[entities.VerificationStatus]bool{
		entities.VerificationPending:  true,
		entities.VerificationApproved: true,
		entities.VerificationRejected: true,
	}

	for _, o := range overrides {
		for _, v := range verifiedFlags {
			for _, r := range requests {
				status := usecases.ResolveVerificationStatus(o, v, r)
				require.True(t, valid[status], "got %q for overrides=%+v verified=%v", status, o, v)
			}
		}
	}
}

func TestResolveVerificationStatus_SessionRejectionWinsOverEverything(t *testing.T) {
	status := usecases.ResolveVerificationStatus(
		usecases.SessionOverrides{Rejected: true},
		true,
		request(entities.RequestStatusVerified),
	)
	assert.Equal(t, entities.VerificationRejected, status)
}

func TestResolveVerificationStatus_SessionApprovalBeatsDurableRejection(t *testing.T) {
	status := usecases.ResolveVerificationStatus(
		usecases.SessionOverrides{Approved: true},
		false,
		request(entities.RequestStatusRejected),
	)
	assert.Equal(t, entities.VerificationApproved, status)
}

func TestResolveVerificationStatus_ProfileFlagBeatsRejectedRequest(t *testing.T) {
	status := usecases.ResolveVerificationStatus(
		usecases.SessionOverrides{},
		true,
		request(entities.RequestStatusRejected),
	)
	assert.Equal(t, entities.VerificationApproved, status)
}

func TestResolveVerificationStatus_RequestSignalAlone(t *testing.T) {
	assert.Equal(t, entities.VerificationApproved,
		usecases.ResolveVerificationStatus(usecases.SessionOverrides{}, nil, request(entities.RequestStatusVerified)))
	assert.Equal(t, entities.VerificationRejected,
		usecases.ResolveVerificationStatus(usecases.SessionOverrides{}, nil, request(entities.RequestStatusRejected)))
	assert.Equal(t, entities.VerificationPending,
		usecases.ResolveVerificationStatus(usecases.SessionOverrides{}, nil, request(entities.RequestStatusPending)))
}

func TestResolveVerificationStatus_DefaultsToPending(t *testing.T) {
	status := usecases.ResolveVerificationStatus(usecases.SessionOverrides{}, nil, nil)
	assert.Equal(t, entities.VerificationPending, status)
}

func TestResolveVerificationStatus_VerifiedFlagCoercion(t *testing.T) {
	approvedShapes := []interface{}{
		true,
		null.BoolFrom(true),
		"true",
		"TRUE",
		" 1 ",
		1,
		int64(1),
		float64(1),
	}
	for _, v := range approvedShapes {
		assert.Equal(t, entities.VerificationApproved,
			usecases.ResolveVerificationStatus(usecases.SessionOverrides{}, v, nil), "shape %#v", v)
	}

	noSignalShapes := []interface{}{
		nil,
		false,
		null.BoolFrom(false),
		null.Bool{},
		"false",
		"yes",
		0,
		2,
		struct{}{},
	}
	for _, v := range noSignalShapes {
		assert.Equal(t, entities.VerificationPending,
			usecases.ResolveVerificationStatus(usecases.SessionOverrides{}, v, nil), "shape %#v", v)
	}
}

func TestOverrideCache_MutualExclusion(t *testing.T) {
	cache := usecases.NewOverrideCache()
	id := uuid.New()

	cache.MarkApproved(id)
	overrides := cache.OverridesFor(id)
	assert.True(t, overrides.Approved)
	assert.False(t, overrides.Rejected)

	cache.MarkRejected(id)
	overrides = cache.OverridesFor(id)
	assert.False(t, overrides.Approved)
	assert.True(t, overrides.Rejected)

	cache.MarkApproved(id)
	overrides = cache.OverridesFor(id)
	assert.True(t, overrides.Approved)
	assert.False(t, overrides.Rejected)

	assert.Equal(t, 1, cache.Len())
}

func TestOverrideCache_Forget(t *testing.T) {
	cache := usecases.NewOverrideCache()
	id := uuid.New()

	cache.MarkApproved(id)
	cache.Forget(id)

	overrides := cache.OverridesFor(id)
	assert.False(t, overrides.Approved)
	assert.False(t, overrides.Rejected)
	assert.Zero(t, cache.Len())
}
