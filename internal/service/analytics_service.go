package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sort"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/repository"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
)

const (
	DefaultReminderWindowDays = 30
	DefaultRiskWindowDays     = 14

	defaultReminderTime = "08:00"
)

// Risk labels by score, highest threshold first.
var riskLabels = []struct {
	Min   float64
	Label string
}{
	{0.6, "HIGH"},
	{0.3, "MEDIUM"},
	{0.0, "LOW"},
}

func riskLabelFor(risk float64) string {
	for _, band := range riskLabels {
		if risk >= band.Min {
			return band.Label
		}
	}
	return riskLabels[len(riskLabels)-1].Label
}

type AnalyticsService struct {
	habitsRepo   repository.HabitsRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewAnalyticsService(habitsRepo repository.HabitsRepositoryI, progressRepo repository.ProgressRepositoryI) *AnalyticsService {
	if habitsRepo == nil || progressRepo == nil {
		log.Fatal("on analytics service provided nil repos")
	}
	return &AnalyticsService{
		habitsRepo:   habitsRepo,
		progressRepo: progressRepo,
	}
}

// SuggestReminderTime estimates when the user actually completes the habit:
// the median completion hour over the trailing window, formatted "HH:00".
// Done entries without a usable timestamp are counted and skipped rather
// than failing the whole estimate.
func (serv *AnalyticsService) SuggestReminderTime(ctx context.Context, habitID uuid.UUID, windowDays int) (string, error) {
	if windowDays < 1 {
		windowDays = DefaultReminderWindowDays
	}
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return "", err
		}
		return "", errors.New("repository error: " + err.Error())
	}
	from := dateOnly(time.Now()).AddDate(0, 0, -windowDays)
	entries, err := serv.progressRepo.GetByHabitSince(ctx, habitID, from)
	if err != nil {
		return "", errors.New("repository error: " + err.Error())
	}
	hours := make([]int, 0, len(entries))
	malformed := 0
	for _, entry := range entries {
		if entry.Status != entity.StatusDone {
			continue
		}
		if entry.CompletedAt == nil {
			malformed++
			continue
		}
		hours = append(hours, entry.CompletedAt.Hour())
	}
	if malformed > 0 {
		slog.Warn("reminder estimate skipped entries without completion time",
			slog.String("habit_id", habitID.String()),
			slog.Int("skipped", malformed),
		)
	}
	if len(hours) > 0 {
		return fmt.Sprintf("%02d:00", medianInt(hours)), nil
	}
	if habit.TargetTime != nil && *habit.TargetTime != "" {
		return *habit.TargetTime, nil
	}
	return defaultReminderTime, nil
}

// medianInt floors the conventional median: for an even count the two
// middle values are averaged with integer division.
func medianInt(values []int) int {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// PredictDropoutRisk scores disengagement from the recent completion ratio.
// An unknown habit scores (0, "unknown") by contract, not an error.
func (serv *AnalyticsService) PredictDropoutRisk(ctx context.Context, habitID uuid.UUID, windowDays int) (float64, string, error) {
	if windowDays < 1 {
		windowDays = DefaultRiskWindowDays
	}
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return 0, "unknown", nil
		}
		return 0, "", errors.New("repository error: " + err.Error())
	}
	from := dateOnly(time.Now()).AddDate(0, 0, -windowDays)
	doneCount, err := serv.progressRepo.CountDoneByHabitSince(ctx, habitID, from)
	if err != nil {
		return 0, "", errors.New("repository error: " + err.Error())
	}
	expected := windowDays
	if habit.Frequency == entity.FrequencyWeekly {
		expected = windowDays / 7
		if expected < 1 {
			expected = 1
		}
	}
	ratio := float64(doneCount) / float64(expected)
	risk := 1 - ratio
	if risk < 0 {
		risk = 0
	}
	if risk > 1 {
		risk = 1
	}
	return risk, riskLabelFor(risk), nil
}
