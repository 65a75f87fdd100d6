package study

import (
	"math"
	"time"

	"github.com/vadea/vadea-backend/internal/domain"
)

// SRSInput holds all data needed for one scheduling step. Pure value, no side effects.
type SRSInput struct {
	State        domain.CardState
	IntervalDays int
	EaseFactor   float64
	Repetitions  int
	Grade        domain.ReviewGrade
	Now          time.Time
	Config       domain.SRSConfig
}

// SRSOutput is the card's next scheduling state.
type SRSOutput struct {
	State        domain.CardState
	IntervalDays int
	EaseFactor   float64
	Repetitions  int
	DueAt        time.Time
}

// Schedule is a pure function. No DB, no context, no logger.
// The grade is assumed to be validated by the caller.
func Schedule(input SRSInput) SRSOutput {
	cfg := input.Config
	ease := currentEase(input.EaseFactor, cfg)

	if input.Grade == domain.ReviewGradeAgain {
		interval := max(cfg.AgainIntervalDays, 0)
		return SRSOutput{
			State:        domain.CardStateLearning,
			IntervalDays: interval,
			EaseFactor:   math.Max(ease-cfg.AgainEasePenalty, cfg.EaseFloor()),
			Repetitions:  0,
			DueAt:        dueAt(input.Now, interval),
		}
	}

	reps := max(input.Repetitions, 0) + 1

	var interval int
	switch reps {
	case 1:
		interval = cfg.FirstIntervalDays
	case 2:
		interval = cfg.SecondIntervalDays
	default:
		prev := max(input.IntervalDays, 1)
		// Growth uses the ease as it was before this review.
		grown := int(math.Round(float64(prev) * ease * gradeMultiplier(input.Grade, cfg)))
		interval = max(grown, prev+1)
	}
	if cfg.MaxIntervalDays > 0 {
		interval = min(interval, cfg.MaxIntervalDays)
	}
	interval = max(interval, 0)

	state := domain.CardStateLearning
	if reps >= 2 {
		state = domain.CardStateReview
	}

	return SRSOutput{
		State:        state,
		IntervalDays: interval,
		EaseFactor:   nudgeEase(ease, input.Grade, cfg),
		Repetitions:  reps,
		DueAt:        dueAt(input.Now, interval),
	}
}

// currentEase treats a missing ease as the default and enforces the floor.
func currentEase(ease float64, cfg domain.SRSConfig) float64 {
	if ease <= 0 {
		ease = cfg.DefaultEaseFactor
	}
	return math.Max(ease, cfg.EaseFloor())
}

func gradeMultiplier(grade domain.ReviewGrade, cfg domain.SRSConfig) float64 {
	switch grade {
	case domain.ReviewGradeHard:
		return cfg.HardIntervalModifier
	case domain.ReviewGradeEasy:
		return cfg.EasyBonus
	default:
		return 1.0
	}
}

func nudgeEase(ease float64, grade domain.ReviewGrade, cfg domain.SRSConfig) float64 {
	switch grade {
	case domain.ReviewGradeHard:
		return math.Max(ease-cfg.HardEasePenalty, cfg.EaseFloor())
	case domain.ReviewGradeEasy:
		return ease + cfg.EasyEaseBonus
	default:
		return ease
	}
}

func dueAt(now time.Time, intervalDays int) time.Time {
	return now.Add(time.Duration(intervalDays) * 24 * time.Hour)
}
