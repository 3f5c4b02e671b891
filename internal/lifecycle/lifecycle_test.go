package lifecycle

import (
	"testing"

	"github.com/shenikar/community_safety_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyVote_Insert(t *testing.T) {
	tr, err := ApplyVote(NoVote, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, Insert, tr.Action)
	assert.Equal(t, Upvoted, tr.Next)
	assert.Equal(t, 1, tr.UpDelta)
	assert.Equal(t, 0, tr.DownDelta)

	tr, err = ApplyVote(NoVote, models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, Insert, tr.Action)
	assert.Equal(t, Downvoted, tr.Next)
	assert.Equal(t, 0, tr.UpDelta)
	assert.Equal(t, 1, tr.DownDelta)
}

func TestApplyVote_Retract(t *testing.T) {
	tr, err := ApplyVote(Upvoted, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, Retract, tr.Action)
	assert.Equal(t, NoVote, tr.Next)
	assert.Equal(t, -1, tr.UpDelta)
	assert.Equal(t, 0, tr.DownDelta)
}

func TestApplyVote_Swap(t *testing.T) {
	tr, err := ApplyVote(Downvoted, models.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, Swap, tr.Action)
	assert.Equal(t, Upvoted, tr.Next)
	assert.Equal(t, 1, tr.UpDelta)
	assert.Equal(t, -1, tr.DownDelta)

	tr, err = ApplyVote(Upvoted, models.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, Swap, tr.Action)
	assert.Equal(t, Downvoted, tr.Next)
	assert.Equal(t, -1, tr.UpDelta)
	assert.Equal(t, 1, tr.DownDelta)
}

func TestApplyVote_InvalidKind(t *testing.T) {
	_, err := ApplyVote(NoVote, models.VoteKind("sideways"))
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}

// Голос тем же видом дважды подряд возвращает счетчики к исходным
func TestApplyVote_InsertThenRetractIsNoop(t *testing.T) {
	up, down := 2, 1

	tr1, err := ApplyVote(NoVote, models.VoteUp)
	require.NoError(t, err)
	up += tr1.UpDelta
	down += tr1.DownDelta

	tr2, err := ApplyVote(tr1.Next, models.VoteUp)
	require.NoError(t, err)
	up += tr2.UpDelta
	down += tr2.DownDelta

	assert.Equal(t, 2, up)
	assert.Equal(t, 1, down)
}

func TestEvaluatePromotion_VerifyAtThreeUpvotes(t *testing.T) {
	inc := &models.Incident{Status: models.StatusActive, Upvotes: 3}

	p := EvaluatePromotion(inc)
	assert.True(t, p.Verify)
	assert.False(t, p.Dismiss)
}

func TestEvaluatePromotion_VerifyIdempotent(t *testing.T) {
	// Уже подтвержденный инцидент повторно не продвигается
	inc := &models.Incident{Status: models.StatusVerified, Verified: true, Upvotes: 10}

	p := EvaluatePromotion(inc)
	assert.False(t, p.Verify)
}

func TestEvaluatePromotion_NoVerifyOnTerminalStatus(t *testing.T) {
	for _, st := range []models.Status{models.StatusResolved, models.StatusDismissed} {
		inc := &models.Incident{Status: st, Upvotes: 5}
		p := EvaluatePromotion(inc)
		assert.False(t, p.Verify, "status %s", st)
	}
}

func TestEvaluatePromotion_DismissAtFiveDownvotes(t *testing.T) {
	// downvotes=5 > 2*upvotes=2
	inc := &models.Incident{Status: models.StatusActive, Upvotes: 1, Downvotes: 5}

	p := EvaluatePromotion(inc)
	assert.True(t, p.Dismiss)
}

func TestEvaluatePromotion_NoDismissWhenUpvotesHigh(t *testing.T) {
	// downvotes=5, но не больше 2*upvotes=6
	inc := &models.Incident{Status: models.StatusActive, Upvotes: 3, Downvotes: 5}

	p := EvaluatePromotion(inc)
	assert.False(t, p.Dismiss)
}

func TestEvaluatePromotion_VerifyAndDismissTogether(t *testing.T) {
	// Оба порога выполнены одновременно: сначала подтверждение, затем
	// отклонение по тем же счетчикам - итоговый статус dismissed
	inc := &models.Incident{Status: models.StatusActive, Upvotes: 3, Downvotes: 7}

	p := EvaluatePromotion(inc)
	assert.True(t, p.Verify)
	assert.True(t, p.Dismiss)
}

func TestCanSetStatus_ReporterOnly(t *testing.T) {
	inc := &models.Incident{ReporterID: "user-1", Status: models.StatusActive}

	require.NoError(t, CanSetStatus(inc, "user-1", models.StatusResolved))

	err := CanSetStatus(inc, "user-2", models.StatusResolved)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)
}

func TestCanSetStatus_AllowedStatuses(t *testing.T) {
	inc := &models.Incident{ReporterID: "user-1"}

	for _, st := range []models.Status{models.StatusActive, models.StatusResolved, models.StatusDismissed} {
		assert.NoError(t, CanSetStatus(inc, "user-1", st))
	}

	err := CanSetStatus(inc, "user-1", models.StatusVerified)
	require.Error(t, err)
	assert.True(t, models.IsValidation(err))
}
