package questions

import (
	"math/rand/v2"

	"github.com/ArushKhare/LockedInterview/internal/models"
)

type Service struct {
	sampleSize int
	// rng is nil in production; tests seed it for reproducible draws.
	rng *rand.Rand
}

// NewService returns a Service drawing sampleSize questions per request.
// Non-positive sizes fall back to models.DefaultSampleSize.
func NewService(sampleSize int) *Service {
	if sampleSize <= 0 {
		sampleSize = models.DefaultSampleSize
	}
	return &Service{sampleSize: sampleSize}
}

// GetQuestions picks the pool for f and draws a random subset from it.
// The returned pool name is informational.
func (s *Service) GetQuestions(f models.InterviewFilter) ([]models.Question, PoolName) {
	pool := SelectPool(f)
	return Sample(s.rng, pool.Questions(), s.sampleSize), pool.Name()
}

func (s *Service) ListPools() []models.PoolSummary {
	pools := Pools()
	out := make([]models.PoolSummary, 0, len(pools))
	for _, p := range pools {
		out = append(out, models.PoolSummary{Name: string(p.Name()), Count: p.Len()})
	}
	return out
}
