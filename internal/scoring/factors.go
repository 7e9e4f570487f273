package scoring

import (
	"math"
	"strings"
	"time"

	"github.com/rsoarez/planista/internal/studyplan"
)

// Factors are the multiplicative components of a subject's priority
// score. Each factor is ≥ 0 and centered near 1.
type Factors struct {
	Weight           float64
	Difficulty       float64
	TimeWithoutStudy float64
	ErrorRate        float64
	ExamProximity    float64
}

// PriorityScore is the product of all five factors, rounded to four
// decimal places.
func (f Factors) PriorityScore() float64 {
	p := f.Weight * f.Difficulty * f.TimeWithoutStudy * f.ErrorRate * f.ExamProximity
	return math.Round(p*10000) / 10000
}

// ComputeFactors converts subject metadata and the rolling profile into
// the factor set used for candidate ranking. Pure: same inputs, same
// output.
func ComputeFactors(subject studyplan.Subject, profile *Profile, now time.Time, examDate *time.Time, learnerLevel studyplan.Level) Factors {
	return Factors{
		Weight:           weightFactor(subject),
		Difficulty:       difficultyFactor(subject, learnerLevel),
		TimeWithoutStudy: stalenessFactor(profile, now),
		ErrorRate:        errorRateFactor(profile),
		ExamProximity:    examProximityFactor(now, examDate),
	}
}

// weightFactor uses the explicit exam weight when set, otherwise infers
// one from the subject's name and area.
func weightFactor(subject studyplan.Subject) float64 {
	if subject.ExamWeight > 0 {
		return clamp(subject.ExamWeight, 0.1, 1)
	}
	name := strings.ToLower(subject.Name)
	switch {
	case strings.Contains(name, "math") || strings.Contains(name, "quant"):
		return 1.0
	case strings.Contains(name, "language") || strings.Contains(name, "grammar") || strings.Contains(name, "reading"):
		return 0.95
	case strings.Contains(name, "writing") || strings.Contains(name, "essay"):
		return 0.9
	}
	switch studyplan.InferArea(subject) {
	case studyplan.AreaQuant:
		return 1.0
	case studyplan.AreaLanguage:
		return 0.95
	case studyplan.AreaWriting:
		return 0.9
	case studyplan.AreaScience:
		return 0.75
	case studyplan.AreaHumanities:
		return 0.7
	}
	return 0.5
}

func difficultyFactor(subject studyplan.Subject, learnerLevel studyplan.Level) float64 {
	mod := 1.0
	switch learnerLevel {
	case studyplan.LevelBasic:
		mod = 1.08
	case studyplan.LevelAdvanced:
		mod = 0.95
	}
	d := float64(studyplan.ClampScale(subject.Difficulty))
	return (0.7 + d/10) * mod
}

// stalenessFactor grows with days since the subject was last studied,
// saturating at two weeks. Never-studied subjects get a fixed boost.
func stalenessFactor(profile *Profile, now time.Time) float64 {
	if profile == nil || profile.LastStudiedAt == nil {
		return 1.35
	}
	days := now.Sub(*profile.LastStudiedAt).Hours() / 24
	if days < 0 {
		days = 0
	}
	return 1 + math.Min(days, 14)*0.08
}

func errorRateFactor(profile *Profile) float64 {
	err := 0.45
	if profile != nil && profile.SessionCount > 0 {
		err = profile.ErrorRate
		if err == 0 && profile.AccuracyRate > 0 {
			err = 1 - profile.AccuracyRate
		}
	}
	return 0.8 + clamp(err, 0.05, 1)*1.2
}

// examProximityFactor steps up as the exam approaches. A past or
// same-day exam date gets the maximum urgency.
func examProximityFactor(now time.Time, examDate *time.Time) float64 {
	if examDate == nil {
		return 1
	}
	days := studyplan.DaysBetween(now, *examDate)
	switch {
	case days <= 0:
		return 1.35
	case days <= 30:
		return 1.3
	case days <= 60:
		return 1.2
	case days <= 90:
		return 1.12
	case days <= 180:
		return 1.05
	}
	return 1
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
