package overload

import (
	"math"

	"github.com/2beens/liftlog/internal/units"
)

const (
	// reps below this share of the previous set's reps, at the same or a heavier weight, is a crash
	repCrashRatio = 0.6
	// a load under this share of the last session's load is a regression
	regressionRatio = 0.98
	// conservative phrasing kicks in from this age
	seniorAge = 50
)

const (
	titleBaseline    = "New lift — establish your baseline"
	detailBaseline   = "Build a stable baseline over the next 2–3 sessions."
	detailBaseline50 = "Start conservatively and focus on flawless form this week."

	titleRegression  = "Below last session"
	detailRegression = "Not every day climbs. Focus on crisp form and nail recovery; progress resumes with consistency."

	titleProgression  = "Solid progression"
	detailProgression = "A disciplined increase with room for perfect form and strong recovery."

	titleRepCrash  = "Watch the rep drop"
	detailRepCrash = "This weight may be too aggressive today. Keep form pristine; consider 1–2 fewer reps or a small deload next set."

	titleCaution  = "Caution — jump exceeds safe range"
	detailCaution = "I'd caution against this jump right now. Build power at a slightly lower weight to avoid injury and preserve recovery."
)

// Evaluate classifies a proposed set against the lifter's recent history.
// It has no side effects and is safe to call concurrently.
func Evaluate(req Request) Verdict {
	if req.BestInWindow == nil && req.LastSet == nil {
		return baselineVerdict(req.Age)
	}

	weightKg := units.ToKg(req.EnteredWeight, req.UnitSystem)
	reps := max(1, req.EnteredReps)

	best := req.BestInWindow
	if best == nil {
		best = req.LastSet
	}
	last := req.LastSet
	if last == nil {
		last = best
	}

	lastLoad := last.WeightKg * float64(last.Reps)
	newLoad := weightKg * float64(reps)

	tier := ClassifyTier(req.RecentSessionCount)
	pctCap := PercentCap(req.Age, tier)
	absCapKg := AbsoluteCapKg(req.Age, tier)

	pctIncrease := 0.0
	if lastLoad > 0 {
		pctIncrease = (newLoad - lastLoad) / lastLoad
	}
	absIncreaseKg := weightKg - last.WeightKg
	crashBelow := max(1, int(math.Round(float64(last.Reps)*repCrashRatio)))
	repCrash := weightKg >= last.WeightKg && reps < crashBelow
	regression := newLoad < lastLoad*regressionRatio

	withinCaps := pctIncrease <= pctCap && absIncreaseKg <= absCapKg

	verdict := Verdict{
		Tier:               tier,
		PercentIncrease:    pctIncrease,
		AbsoluteIncreaseKg: absIncreaseKg,
	}

	if withinCaps && !repCrash {
		if regression {
			verdict.Level = LevelAmber
			verdict.Title = titleRegression
			verdict.Detail = detailRegression
			verdict.IsRegression = true
			return verdict
		}
		verdict.Level = LevelGreen
		verdict.Title = titleProgression
		verdict.Detail = detailProgression
		return verdict
	}

	suggestedKg := SuggestedWeightKg(*last, reps, pctCap, absCapKg)
	verdict.SuggestedWeightKg = &suggestedKg
	verdict.SuggestedWeightDisplay = units.FormatWeight(suggestedKg, req.UnitSystem)

	// a crash that also breaks a cap is reported as red
	if repCrash && withinCaps {
		verdict.Level = LevelAmber
		verdict.Title = titleRepCrash
		verdict.Detail = detailRepCrash
		return verdict
	}

	verdict.Level = LevelRed
	verdict.Title = titleCaution
	verdict.Detail = detailCaution
	return verdict
}

// SuggestedWeightKg is the heaviest weight for reps that stays inside both caps
// relative to last: the smaller of the percentage and the absolute ceiling.
// A zero-load last set (bodyweight work) yields 0. The result is never negative.
func SuggestedWeightKg(last HistoricalSet, reps int, pctCap, absCapKg float64) float64 {
	reps = max(1, reps)
	byPct := last.WeightKg * float64(last.Reps) * (1 + pctCap) / float64(reps)
	byAbs := last.WeightKg + absCapKg
	return math.Max(0, math.Min(byPct, byAbs))
}

func baselineVerdict(age *int) Verdict {
	detail := detailBaseline
	if a, ok := knownAge(age); ok && a >= seniorAge {
		detail = detailBaseline50
	}
	return Verdict{
		Level:  LevelAmber,
		Title:  titleBaseline,
		Detail: detail,
	}
}
