package exam

import "fmt"

// Row status values written by the engine.
const (
	StatusInProgress = "IN_PROGRESS"
	StatusSubmitted  = "SUBMITTED"
	StatusCompleted  = "COMPLETED"
)

// Config carries every rule knob of the engine. Handlers build it once from the
// application config and hand it to the constructors.
type Config struct {
	PassThreshold           float64 // score needed to pass, percent
	AttemptsPerCycle        int
	MaxCycles               int
	UnlockThreshold         float64 // lesson completion percent
	MinQuestionBankSize     int     // subject-exam minimum bank
	SubjectQuestionCount    int
	LessonQuestionCount     int
	DefaultVideoDuration    float64 // seconds, fallback when no duration was ever reported
	RequireExamPassToUnlock bool    // stricter gate: previous lesson exam must be passed too
}

// DefaultConfig returns the production rule set.
func DefaultConfig() Config {
	return Config{
		PassThreshold:           70,
		AttemptsPerCycle:        3,
		MaxCycles:               2,
		UnlockThreshold:         90,
		MinQuestionBankSize:     10,
		SubjectQuestionCount:    10,
		LessonQuestionCount:     5,
		DefaultVideoDuration:    240,
		RequireExamPassToUnlock: false,
	}
}

// Scope identifies what an exam covers: a whole subject or a single lesson.
// Exactly one of the two ids is set.
type Scope struct {
	SubjectID *uint
	LessonID  *uint
}

// SubjectScope returns a scope covering every lesson of a subject.
func SubjectScope(subjectID uint) Scope {
	return Scope{SubjectID: &subjectID}
}

// LessonScope returns a scope covering one lesson.
func LessonScope(lessonID uint) Scope {
	return Scope{LessonID: &lessonID}
}

// IsSubject reports whether the scope covers a whole subject.
func (s Scope) IsSubject() bool {
	return s.SubjectID != nil
}

func (s Scope) String() string {
	if s.SubjectID != nil {
		return fmt.Sprintf("subject:%d", *s.SubjectID)
	}
	if s.LessonID != nil {
		return fmt.Sprintf("lesson:%d", *s.LessonID)
	}
	return "scope:empty"
}
