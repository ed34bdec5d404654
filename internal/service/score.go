package service

import (
	"fmt"
	"math"
	"sort"

	"github.com/dana/castmatch/internal/domain"
)

// CombineScore collapses the three sub-scores into one composite, rounded
// to the nearest integer. The division by 100 treats the weights as
// percentages; weights that do not sum to 100 scale the composite instead
// of being renormalized, and the result is not clamped.
func CombineScore(s domain.DetailedScores, w domain.WeightConfig) int {
	raw := (s.Personality*float64(w.Personality) +
		s.RoleExperience*float64(w.RoleExperience) +
		s.VisualMatch*float64(w.VisualMatch)) / 100
	return int(math.Round(raw))
}

// RankByWeights re-scores every recommendation with the given weights and
// returns a new slice ordered by composite score descending. The sort is
// stable, so equal composites keep their model-produced order.
func RankByWeights(recs []domain.Recommendation, w domain.WeightConfig) []domain.Recommendation {
	ranked := make([]domain.Recommendation, len(recs))
	copy(ranked, recs)
	for i := range ranked {
		ranked[i].Score = float64(CombineScore(ranked[i].DetailedScores, w))
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// WeightAdvisory returns a human-readable notice when the weights do not
// sum to 100, and the empty string otherwise. The sum is never enforced.
func WeightAdvisory(w domain.WeightConfig) string {
	if sum := w.Sum(); sum != 100 {
		return fmt.Sprintf("가중치 합계가 %d%%입니다. 100%%를 권장합니다.", sum)
	}
	return ""
}
