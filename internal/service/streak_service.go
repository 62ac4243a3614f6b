package service

import (
	"context"
	"errors"
	"log"
	"time"

	errorvalues "github.com/duotrack/duotracker/internal/error_values"
	"github.com/duotrack/duotracker/internal/repository"
	"github.com/duotrack/duotracker/pkg/entity"
	"github.com/google/uuid"
)

// XP credited for every completion.
const XPPerCompletion = 10

// DefaultFreezeCost is the shop price of one streak freeze, in xp.
const DefaultFreezeCost = 50

// Badge tiers by lifetime done count, highest threshold first.
var badgeTiers = []struct {
	Min   int
	Label string
}{
	{50, "Platinum"},
	{30, "Gold"},
	{15, "Silver"},
	{5, "Bronze"},
	{0, "Beginner"},
}

func BadgeFor(doneCount int) string {
	for _, tier := range badgeTiers {
		if doneCount >= tier.Min {
			return tier.Label
		}
	}
	return badgeTiers[len(badgeTiers)-1].Label
}

type StreakService struct {
	usersRepo    repository.UsersRepositoryI
	habitsRepo   repository.HabitsRepositoryI
	progressRepo repository.ProgressRepositoryI
}

func NewStreakService(usersRepo repository.UsersRepositoryI, habitsRepo repository.HabitsRepositoryI, progressRepo repository.ProgressRepositoryI) *StreakService {
	if usersRepo == nil || habitsRepo == nil || progressRepo == nil {
		log.Fatal("on streak service provided nil repos")
	}
	return &StreakService{
		usersRepo:    usersRepo,
		habitsRepo:   habitsRepo,
		progressRepo: progressRepo,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b time.Time) bool {
	return dateOnly(a).Equal(dateOnly(b))
}

// MarkDone computes the new streak from the habit's last done date and hands
// the progress insert, streak counters and xp credit to one transactional
// repository call: a duplicate day rolls everything back.
func (serv *StreakService) MarkDone(ctx context.Context, habitID, userID uuid.UUID) (*MarkDoneResult, error) {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	now := time.Now()
	today := dateOnly(now)
	streak := 1
	if habit.LastDoneDate != nil && sameDay(*habit.LastDoneDate, today.AddDate(0, 0, -1)) {
		streak = habit.Streak + 1
	}
	longest := habit.LongestStreak
	if streak > longest {
		longest = streak
	}
	err = serv.progressRepo.CreateDoneEntry(ctx, &entity.ProgressEntry{
		UserID:      habit.UserID,
		HabitID:     habitID,
		LogDate:     today,
		Status:      entity.StatusDone,
		CompletedAt: &now,
	}, streak, longest, XPPerCompletion)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyLogged) || errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return &MarkDoneResult{
		Streak: streak,
		XPGain: XPPerCompletion,
	}, nil
}

func (serv *StreakService) MarkSkipped(ctx context.Context, habitID, userID uuid.UUID) error {
	habit, err := serv.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return errorvalues.ErrWrongOwner
	}
	err = serv.progressRepo.CreateEntry(ctx, &entity.ProgressEntry{
		UserID:  habit.UserID,
		HabitID: habitID,
		LogDate: dateOnly(time.Now()),
		Status:  entity.StatusSkipped,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrAlreadyLogged) || errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

// evaluateStreak walks expected calendar days backwards from today against
// the user's distinct done dates (newest first). A missed day is bridged by
// one banked freeze; the walk stops when a gap can't be covered or when no
// older done dates remain, so tokens are never burnt past the user's
// history. Pure: reports how many freezes the walk needed.
func evaluateStreak(today time.Time, doneDates []time.Time, banked int) (streak, consumed int) {
	idx := 0
	for expected := dateOnly(today); ; expected = expected.AddDate(0, 0, -1) {
		if idx < len(doneDates) && sameDay(doneDates[idx], expected) {
			streak++
			idx++
			continue
		}
		if idx >= len(doneDates) {
			return streak, consumed
		}
		if consumed < banked {
			consumed++
			streak++
			continue
		}
		return streak, consumed
	}
}

// DailyStreak evaluates the would-be streak first, then persists every
// consumed freeze through the guarded decrement. A token that vanished
// between evaluation and persistence (spent elsewhere) shrinks the result
// to what the surviving tokens cover.
func (serv *StreakService) DailyStreak(ctx context.Context, uid uuid.UUID) (int, error) {
	dates, err := serv.progressRepo.DistinctDoneDates(ctx, uid)
	if err != nil {
		return 0, errors.New("repository error: " + err.Error())
	}
	if len(dates) == 0 {
		return 0, nil
	}
	user, err := serv.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("repository error: " + err.Error())
	}
	streak, consumed := evaluateStreak(time.Now(), dates, user.StreakFreeze)
	applied := 0
	for i := 0; i < consumed; i++ {
		ok, err := serv.usersRepo.ConsumeStreakFreeze(ctx, uid)
		if err != nil {
			return 0, errors.New("repository error: " + err.Error())
		}
		if !ok {
			break
		}
		applied++
	}
	if applied < consumed {
		streak, _ = evaluateStreak(time.Now(), dates, applied)
	}
	return streak, nil
}

func (serv *StreakService) BuyFreeze(ctx context.Context, uid uuid.UUID, cost int) error {
	if cost < 1 {
		cost = DefaultFreezeCost
	}
	err := serv.usersRepo.BuyStreakFreeze(ctx, uid, cost)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInsufficientXP) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}
	return nil
}

func (serv *StreakService) ProgressCounts(ctx context.Context, uid uuid.UUID) (*entity.ProgressCount, error) {
	count, err := serv.progressRepo.CountByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return count, nil
}
