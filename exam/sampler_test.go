package exam

import (
	"math/rand"
	"testing"

	"github.com/SSub-jun/edu-platform-sub001/models"
)

func questionBank(n int) []models.Question {
	bank := make([]models.Question, n)
	for i := range bank {
		bank[i].ID = uint(i + 1)
	}
	return bank
}

func TestSampleQuestionsCountAndDistinct(t *testing.T) {
	bank := questionBank(15)
	rng := rand.New(rand.NewSource(1))

	sampled := SampleQuestions(bank, 10, rng)
	if len(sampled) != 10 {
		t.Fatalf("expected 10 questions, got %d", len(sampled))
	}

	seen := make(map[uint]bool)
	for _, q := range sampled {
		if q.ID < 1 || q.ID > 15 {
			t.Fatalf("sampled question %d is not from the bank", q.ID)
		}
		if seen[q.ID] {
			t.Fatalf("question %d sampled twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSampleQuestionsDoesNotMutateBank(t *testing.T) {
	bank := questionBank(8)
	rng := rand.New(rand.NewSource(2))

	SampleQuestions(bank, 8, rng)

	for i, q := range bank {
		if q.ID != uint(i+1) {
			t.Fatalf("bank order changed at position %d: got id %d", i, q.ID)
		}
	}
}

func TestSampleQuestionsRoughlyUniform(t *testing.T) {
	bank := questionBank(5)
	rng := rand.New(rand.NewSource(3))

	const trials = 10000
	counts := make(map[uint]int)
	for i := 0; i < trials; i++ {
		sampled := SampleQuestions(bank, 1, rng)
		counts[sampled[0].ID]++
	}

	// Expect ~2000 each; a wide tolerance keeps the test deterministic enough.
	for id := uint(1); id <= 5; id++ {
		if counts[id] < 1600 || counts[id] > 2400 {
			t.Fatalf("question %d drawn %d times in %d trials, expected near %d", id, counts[id], trials, trials/5)
		}
	}
}
