package service

import (
	"testing"

	"github.com/dana/castmatch/internal/domain"
)

func TestCombineScore(t *testing.T) {
	tests := []struct {
		name     string
		scores   domain.DetailedScores
		weights  domain.WeightConfig
		expected int
	}{
		{
			name:     "uniform scores unchanged by 100-sum weights",
			scores:   domain.DetailedScores{Personality: 50, RoleExperience: 50, VisualMatch: 50},
			weights:  domain.WeightConfig{Personality: 40, RoleExperience: 35, VisualMatch: 25},
			expected: 50,
		},
		{
			name:     "weighted mix",
			scores:   domain.DetailedScores{Personality: 80, RoleExperience: 60, VisualMatch: 40},
			weights:  domain.WeightConfig{Personality: 40, RoleExperience: 35, VisualMatch: 25},
			expected: 63,
		},
		{
			name:     "rounds to nearest",
			scores:   domain.DetailedScores{Personality: 51, RoleExperience: 50, VisualMatch: 50},
			weights:  domain.WeightConfig{Personality: 50, RoleExperience: 25, VisualMatch: 25},
			expected: 51,
		},
		{
			name:     "zero weights give zero",
			scores:   domain.DetailedScores{Personality: 100, RoleExperience: 100, VisualMatch: 100},
			weights:  domain.WeightConfig{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CombineScore(tt.scores, tt.weights); got != tt.expected {
				t.Errorf("CombineScore = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestCombineScoreNoClamping(t *testing.T) {
	// Weights summing over 100 legitimately push the composite past 100;
	// renormalizing or clamping here would be a behavior change.
	scores := domain.DetailedScores{Personality: 100, RoleExperience: 100, VisualMatch: 100}
	weights := domain.WeightConfig{Personality: 40, RoleExperience: 40, VisualMatch: 30}

	if got := CombineScore(scores, weights); got != 110 {
		t.Errorf("expected unclamped 110, got %d", got)
	}
}

func TestRankByWeights(t *testing.T) {
	recs := []domain.Recommendation{
		{ActorName: "A", DetailedScores: domain.DetailedScores{Personality: 40, RoleExperience: 90, VisualMatch: 50}},
		{ActorName: "B", DetailedScores: domain.DetailedScores{Personality: 90, RoleExperience: 40, VisualMatch: 50}},
	}

	// Personality-heavy weights should put B first
	ranked := RankByWeights(recs, domain.WeightConfig{Personality: 80, RoleExperience: 10, VisualMatch: 10})
	if ranked[0].ActorName != "B" {
		t.Errorf("expected B first, got %s", ranked[0].ActorName)
	}

	// Role-heavy weights should put A first
	ranked = RankByWeights(recs, domain.WeightConfig{Personality: 10, RoleExperience: 80, VisualMatch: 10})
	if ranked[0].ActorName != "A" {
		t.Errorf("expected A first, got %s", ranked[0].ActorName)
	}

	// Input slice must not be reordered
	if recs[0].ActorName != "A" || recs[1].ActorName != "B" {
		t.Error("input slice was mutated")
	}
}

func TestRankByWeightsStableTies(t *testing.T) {
	same := domain.DetailedScores{Personality: 70, RoleExperience: 70, VisualMatch: 70}
	recs := []domain.Recommendation{
		{ActorName: "first", DetailedScores: same},
		{ActorName: "second", DetailedScores: same},
		{ActorName: "third", DetailedScores: same},
	}

	ranked := RankByWeights(recs, domain.DefaultWeights())
	for i, expected := range []string{"first", "second", "third"} {
		if ranked[i].ActorName != expected {
			t.Fatalf("tie order not preserved: %v", ranked)
		}
	}
}

func TestWeightAdvisory(t *testing.T) {
	if msg := WeightAdvisory(domain.DefaultWeights()); msg != "" {
		t.Errorf("expected no advisory for default weights, got %q", msg)
	}
	if msg := WeightAdvisory(domain.WeightConfig{Personality: 50, RoleExperience: 40, VisualMatch: 20}); msg == "" {
		t.Error("expected advisory for weights summing to 110")
	}
}
