package exam

import (
	"math/rand"

	"github.com/SSub-jun/edu-platform-sub001/models"
)

// SampleQuestions draws count questions from bank without bias: Fisher-Yates
// over a copy, then the first count elements. The caller's slice is never
// mutated. count must be <= len(bank); minimum-bank policy lives in the
// attempt machine, not here.
func SampleQuestions(bank []models.Question, count int, rng *rand.Rand) []models.Question {
	shuffled := make([]models.Question, len(bank))
	copy(shuffled, bank)

	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:count]
}
