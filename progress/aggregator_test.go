package progress

import (
	courseModels "lms/models/course"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordModuleCompletionRounding(t *testing.T) {
	now := time.Now()
	enr := &courseModels.Enrollment{Status: courseModels.StatusEnrolled}

	err := RecordModuleCompletion(enr, 3, 0, 30, now)
	require.NoError(t, err)

	assert.Equal(t, 33, enr.CompletionPercentage)
	assert.Equal(t, 1, enr.CurrentModule)
	assert.Equal(t, 30, enr.TotalTimeSpent)
	assert.Equal(t, courseModels.StatusInProgress, enr.Status)
	assert.False(t, enr.IsCompleted)
}

func TestRecordModuleCompletionPolicyA(t *testing.T) {
	assert.Equal(t, PolicySimpleRatio, CompletionPolicy())

	now := time.Now()
	enr := &courseModels.Enrollment{Status: courseModels.StatusEnrolled}

	require.NoError(t, RecordModuleCompletion(enr, 2, 0, 10, now))
	assert.Equal(t, 50, enr.CompletionPercentage)
	assert.False(t, enr.IsCompleted)

	// Reaching 100% immediately completes the record under Policy A
	require.NoError(t, RecordModuleCompletion(enr, 2, 1, 10, now))
	assert.Equal(t, 100, enr.CompletionPercentage)
	assert.True(t, enr.IsCompleted)
	require.NotNil(t, enr.CompletionDate)
	assert.Equal(t, courseModels.StatusCompleted, enr.Status)
}

func TestRecordModuleCompletionMonotonic(t *testing.T) {
	now := time.Now()
	enr := &courseModels.Enrollment{Status: courseModels.StatusEnrolled}

	lastPct := 0
	lastTime := 0
	lastModules := 0
	events := []struct{ index, delta int }{
		{0, 10}, {1, 0}, {0, 5}, {2, 20}, {2, 0}, {1, 15},
	}
	for _, ev := range events {
		require.NoError(t, RecordModuleCompletion(enr, 3, ev.index, ev.delta, now))
		assert.GreaterOrEqual(t, enr.CompletionPercentage, lastPct)
		assert.GreaterOrEqual(t, enr.TotalTimeSpent, lastTime)
		assert.GreaterOrEqual(t, len(enr.ModulesCompleted), lastModules)
		lastPct = enr.CompletionPercentage
		lastTime = enr.TotalTimeSpent
		lastModules = len(enr.ModulesCompleted)
	}

	assert.Equal(t, 100, enr.CompletionPercentage)
	assert.Equal(t, 50, enr.TotalTimeSpent)
	assert.Len(t, enr.ModulesCompleted, 3)
}

func TestRecordModuleCompletionReplayAccruesTimeOnly(t *testing.T) {
	now := time.Now()
	enr := &courseModels.Enrollment{Status: courseModels.StatusEnrolled}

	require.NoError(t, RecordModuleCompletion(enr, 1, 0, 10, now))
	require.True(t, enr.IsCompleted)
	completedAt := *enr.CompletionDate

	// Replaying a known module on a completed record only accrues time
	later := now.Add(time.Hour)
	require.NoError(t, RecordModuleCompletion(enr, 1, 0, 7, later))

	assert.True(t, enr.IsCompleted)
	assert.Equal(t, completedAt, *enr.CompletionDate)
	assert.Equal(t, 100, enr.CompletionPercentage)
	assert.Len(t, enr.ModulesCompleted, 1)
	assert.Equal(t, 17, enr.TotalTimeSpent)
	assert.Equal(t, 17, enr.ModulesCompleted[0].TimeSpent)
}

func TestRecordModuleCompletionErrors(t *testing.T) {
	now := time.Now()
	enr := &courseModels.Enrollment{}

	err := RecordModuleCompletion(enr, 3, 5, 10, now)
	assert.True(t, IsNotFound(err))

	err = RecordModuleCompletion(enr, 3, -1, 10, now)
	assert.True(t, IsNotFound(err))

	err = RecordModuleCompletion(enr, 3, 0, -5, now)
	assert.True(t, IsValidation(err))

	err = RecordModuleCompletion(enr, 0, 0, 10, now)
	assert.True(t, IsValidation(err))

	// Failed calls leave the record untouched
	assert.Equal(t, 0, enr.TotalTimeSpent)
	assert.Empty(t, enr.ModulesCompleted)
}

func TestRecordModuleCompletionCurrentModuleNeverDecreases(t *testing.T) {
	now := time.Now()
	enr := &courseModels.Enrollment{}

	require.NoError(t, RecordModuleCompletion(enr, 5, 3, 0, now))
	assert.Equal(t, 4, enr.CurrentModule)

	require.NoError(t, RecordModuleCompletion(enr, 5, 1, 0, now))
	assert.Equal(t, 4, enr.CurrentModule)
}

func TestRecordContentProgress(t *testing.T) {
	items := []courseModels.ContentItem{
		{Model: gormModel(1), IsRequired: true, Duration: 10},
		{Model: gormModel(2), IsRequired: true, Duration: 20},
		{Model: gormModel(3), IsRequired: false, Duration: 5},
	}
	mp := &courseModels.ModuleProgress{UserID: 1, ModuleID: 7}

	require.NoError(t, RecordContentProgress(mp, items, 1, courseModels.ContentCompleted, 10, 0))
	// Optional items do not count toward the percentage
	assert.Equal(t, 50, mp.CompletionPercentage)

	require.NoError(t, RecordContentProgress(mp, items, 2, courseModels.ContentCompleted, 20, 0))
	assert.Equal(t, 100, mp.CompletionPercentage)

	// A completed item never regresses
	require.NoError(t, RecordContentProgress(mp, items, 1, courseModels.ContentInProgress, 3, 0))
	assert.Equal(t, courseModels.ContentCompleted, mp.ContentState(1).Status)
	assert.Equal(t, 13, mp.ContentState(1).TimeSpent)
	assert.Equal(t, 100, mp.CompletionPercentage)
}

func TestRecordContentProgressErrors(t *testing.T) {
	items := []courseModels.ContentItem{{Model: gormModel(1), IsRequired: true}}
	mp := &courseModels.ModuleProgress{}

	err := RecordContentProgress(mp, items, 99, courseModels.ContentCompleted, 0, 0)
	assert.True(t, IsNotFound(err))

	err = RecordContentProgress(mp, items, 1, "finished", 0, 0)
	assert.True(t, IsValidation(err))

	err = RecordContentProgress(mp, items, 1, courseModels.ContentCompleted, -1, 0)
	assert.True(t, IsValidation(err))
}

func TestModuleEstimatedDuration(t *testing.T) {
	items := []courseModels.ContentItem{
		{Duration: 10}, {Duration: 25}, {Duration: 0},
	}
	assert.Equal(t, 35, ModuleEstimatedDuration(items))
	assert.Equal(t, 0, ModuleEstimatedDuration(nil))
}
