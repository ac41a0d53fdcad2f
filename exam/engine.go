package exam

import "gorm.io/gorm"

// Engine bundles the engine components over one store so handlers wire a
// single value.
type Engine struct {
	Config    Config
	Tracker   *Tracker
	Gate      *Gate
	Evaluator *Evaluator
	Machine   *Machine

	Lessons   LessonRepo
	Questions QuestionRepo
	Progress  ProgressRepo
	Attempts  AttemptRepo
}

// NewEngine builds the full engine on a GORM connection.
func NewEngine(db *gorm.DB, cfg Config) *Engine {
	store := NewGormStore(db)
	evaluator := NewEvaluator(cfg, store, store, store)
	return &Engine{
		Config:    cfg,
		Tracker:   NewTracker(cfg, store),
		Gate:      NewGate(cfg, store, store),
		Evaluator: evaluator,
		Machine:   NewMachine(cfg, store, store, evaluator, nil),
		Lessons:   store,
		Questions: store,
		Progress:  store,
		Attempts:  store,
	}
}
