package exam

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/SSub-jun/edu-platform-sub001/models"
)

// Answer is one submitted choice for a question of an attempt.
type Answer struct {
	QuestionID  uint `json:"question_id"`
	ChoiceIndex int  `json:"choice_index"`
}

// QuestionView is a question as shown to the learner: stem and choice texts,
// never the answer index.
type QuestionView struct {
	ID      uint     `json:"id"`
	Stem    string   `json:"stem"`
	Choices []string `json:"choices"`
}

// StartResult is the outcome of starting an attempt.
type StartResult struct {
	AttemptID           uint           `json:"attempt_id"`
	Scope               Scope          `json:"-"`
	Cycle               int            `json:"cycle"`
	AttemptIndexInCycle int            `json:"attempt_index_in_cycle"`
	Questions           []QuestionView `json:"questions"`
}

// SubmitResult is the outcome of submitting an attempt.
type SubmitResult struct {
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}

// Machine runs the attempt lifecycle: IN_PROGRESS -> SUBMITTED, nothing else.
// Attempts are never cancelled or expired here; an abandoned attempt keeps
// occupying its cycle slot until an administrative delete.
type Machine struct {
	cfg       Config
	attempts  AttemptRepo
	questions QuestionRepo
	evaluator *Evaluator
	rng       *rand.Rand
}

// NewMachine builds an attempt machine. rng may be nil, in which case a
// time-seeded source is used.
func NewMachine(cfg Config, attempts AttemptRepo, questions QuestionRepo, evaluator *Evaluator, rng *rand.Rand) *Machine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Machine{cfg: cfg, attempts: attempts, questions: questions, evaluator: evaluator, rng: rng}
}

// CycleFor maps an attempt ordinal (1-based across all cycles) to its cycle
// and index within the cycle. Pure bookkeeping, no state.
func CycleFor(ordinal, attemptsPerCycle int) (cycle, indexInCycle int) {
	cycle = (ordinal-1)/attemptsPerCycle + 1
	indexInCycle = (ordinal-1)%attemptsPerCycle + 1
	return cycle, indexInCycle
}

// Start validates eligibility, draws the question set and creates one
// in-progress attempt. Creation is all-or-nothing: a failure anywhere leaves no
// attempt row behind.
func (m *Machine) Start(userID uint, scope Scope) (*StartResult, error) {
	verdict, err := m.evaluator.Evaluate(userID, scope)
	if err != nil {
		return nil, err
	}
	if !verdict.Eligible {
		if verdict.Code == CodeAttemptLimitExceeded {
			return nil, attemptLimitExceeded()
		}
		return nil, notEligible(verdict.Reason)
	}

	inProgress, err := m.attempts.HasInProgress(userID, scope)
	if err != nil {
		return nil, err
	}
	if inProgress {
		return nil, notEligible("an attempt is already in progress for this exam")
	}

	used, err := m.attempts.CountByScope(userID, scope)
	if err != nil {
		return nil, err
	}
	cycle, indexInCycle := CycleFor(used+1, m.cfg.AttemptsPerCycle)

	bank, err := m.questions.ActiveByScope(scope)
	if err != nil {
		return nil, err
	}
	required := m.cfg.LessonQuestionCount
	if scope.IsSubject() {
		required = m.cfg.SubjectQuestionCount
		if len(bank) < m.cfg.MinQuestionBankSize {
			return nil, unprocessable("question bank too small for this exam")
		}
	}
	if required < 1 {
		required = 1
	}
	if len(bank) < required {
		return nil, unprocessable("question bank too small for this exam")
	}

	sampled := SampleQuestions(bank, required, m.rng)
	questionIDs := make([]uint, len(sampled))
	for i, q := range sampled {
		questionIDs[i] = q.ID
	}
	encodedIDs, err := json.Marshal(questionIDs)
	if err != nil {
		return nil, err
	}

	attempt := models.ExamAttempt{
		UserID:              userID,
		SubjectID:           scope.SubjectID,
		LessonID:            scope.LessonID,
		Cycle:               cycle,
		AttemptIndexInCycle: indexInCycle,
		Status:              StatusInProgress,
		QuestionIDs:         string(encodedIDs),
		StartedAt:           time.Now(),
	}
	if err := m.attempts.Create(&attempt, m.cfg.AttemptsPerCycle*m.cfg.MaxCycles); err != nil {
		return nil, err
	}

	views, err := m.questionViews(sampled)
	if err != nil {
		return nil, err
	}

	return &StartResult{
		AttemptID:           attempt.ID,
		Scope:               scope,
		Cycle:               cycle,
		AttemptIndexInCycle: indexInCycle,
		Questions:           views,
	}, nil
}

// Submit validates the answer set against the stored question set, scores it
// and writes the terminal state. A second submission for the same attempt is
// rejected without re-scoring.
func (m *Machine) Submit(attemptID, userID uint, answers []Answer) (*SubmitResult, error) {
	attempt, err := m.attempts.AttemptByID(attemptID)
	if err != nil {
		return nil, err
	}
	if attempt == nil || attempt.UserID != userID {
		// Foreign attempts look identical to missing ones.
		return nil, notFound()
	}
	if attempt.Status == StatusSubmitted {
		return nil, duplicateSubmission()
	}

	var questionIDs []uint
	if err := json.Unmarshal([]byte(attempt.QuestionIDs), &questionIDs); err != nil {
		return nil, fmt.Errorf("corrupt question set on attempt %d: %w", attempt.ID, err)
	}

	// Exactly one answer per stored question, no extras, no omissions.
	if len(answers) != len(questionIDs) {
		return nil, unprocessable("answer set does not match the attempt's question set")
	}
	answerByQuestion := make(map[uint]int, len(answers))
	for _, a := range answers {
		if _, dup := answerByQuestion[a.QuestionID]; dup {
			return nil, unprocessable("answer set does not match the attempt's question set")
		}
		answerByQuestion[a.QuestionID] = a.ChoiceIndex
	}
	for _, id := range questionIDs {
		if _, ok := answerByQuestion[id]; !ok {
			return nil, unprocessable("answer set does not match the attempt's question set")
		}
	}

	stored, err := m.questions.ByIDs(questionIDs)
	if err != nil {
		return nil, err
	}
	if len(stored) != len(questionIDs) {
		return nil, fmt.Errorf("attempt %d references %d questions, found %d", attempt.ID, len(questionIDs), len(stored))
	}

	correct := 0
	for _, q := range stored {
		if answerByQuestion[q.ID] == q.AnswerIndex {
			correct++
		}
	}
	score := float64(correct) / float64(len(questionIDs)) * 100
	passed := score >= m.cfg.PassThreshold

	encodedAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	attempt.Answers = string(encodedAnswers)
	attempt.Score = &score
	attempt.Passed = &passed
	attempt.SubmittedAt = &now

	updated, err := m.attempts.Submit(attempt)
	if err != nil {
		return nil, err
	}
	if !updated {
		// Lost a race with another submission of the same attempt.
		return nil, duplicateSubmission()
	}

	return &SubmitResult{Score: score, Passed: passed}, nil
}

func (m *Machine) questionViews(questions []models.Question) ([]QuestionView, error) {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	choices, err := m.questions.ChoicesByQuestion(ids)
	if err != nil {
		return nil, err
	}
	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		texts := make([]string, 0, len(choices[q.ID]))
		for _, c := range choices[q.ID] {
			texts = append(texts, c.ChoiceText)
		}
		views[i] = QuestionView{ID: q.ID, Stem: q.Stem, Choices: texts}
	}
	return views, nil
}
