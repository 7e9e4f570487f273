package studyplan

import "strings"

// Level is the learner's or a subject's depth level.
type Level string

const (
	LevelBasic        Level = "basic"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Area is a subject-matter category used for rotation and weighting.
type Area string

const (
	AreaQuant      Area = "quant"
	AreaLanguage   Area = "language"
	AreaWriting    Area = "writing"
	AreaScience    Area = "science"
	AreaHumanities Area = "humanities"
	AreaOther      Area = "other"
)

// Subject is a topic of study. Identity is immutable; the engines only
// read subjects and derive in-memory copies.
type Subject struct {
	ID                string
	Name              string
	Priority          int // 1-10
	Difficulty        int // 1-10
	WeeklyTargetHours float64
	Area              Area
	Level             Level
	ExamWeight        float64 // 0-1, importance to the target exam
	CompletedHours    float64
	SessionCount      int
	AverageScore      float64
}

// InferArea guesses a subject's area from its name when none is set.
func InferArea(s Subject) Area {
	if s.Area != "" {
		return s.Area
	}
	name := strings.ToLower(s.Name)
	switch {
	case containsAny(name, "math", "calculus", "algebra", "quant", "logic"):
		return AreaQuant
	case containsAny(name, "writing", "essay", "composition"):
		return AreaWriting
	case containsAny(name, "language", "grammar", "reading", "literature"):
		return AreaLanguage
	case containsAny(name, "physics", "chemistry", "biology", "science"):
		return AreaScience
	case containsAny(name, "history", "geography", "philosophy", "sociology", "civics"):
		return AreaHumanities
	}
	return AreaOther
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// ClampScale bounds a 1-10 scale value, absorbing out-of-range input.
func ClampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}
