package domain

import (
	"encoding/json"
	"testing"
)

func TestReasonUnmarshalUnion(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedHeadline string
		expectedDetail   string
	}{
		{
			name:             "structured pair",
			input:            `{"headline":"차가운 카리스마","detail":"절제된 감정 연기가 캐릭터와 맞습니다"}`,
			expectedHeadline: "차가운 카리스마",
			expectedDetail:   "절제된 감정 연기가 캐릭터와 맞습니다",
		},
		{
			name:           "bare string",
			input:          `"성격이 캐릭터와 잘 맞습니다"`,
			expectedDetail: "성격이 캐릭터와 잘 맞습니다",
		},
		{
			name:  "empty object",
			input: `{}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Reason
			if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.Headline != tt.expectedHeadline {
				t.Errorf("headline = %q, expected %q", r.Headline, tt.expectedHeadline)
			}
			if r.Detail != tt.expectedDetail {
				t.Errorf("detail = %q, expected %q", r.Detail, tt.expectedDetail)
			}
		})
	}
}

func TestReasonMarshalAlwaysStructured(t *testing.T) {
	// Round-tripping a bare string must emit the structured shape
	var r Reason
	if err := json.Unmarshal([]byte(`"설명만 있는 사유"`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `{"headline":"","detail":"설명만 있는 사유"}`
	if string(out) != expected {
		t.Errorf("marshal = %s, expected %s", out, expected)
	}
}

func TestRecommendationDecodeMixedReasons(t *testing.T) {
	input := `{
		"recommendations": [
			{
				"actorName": "김배우",
				"score": 88,
				"detailedScores": {"personality": 90, "roleExperience": 85, "visualMatch": 88},
				"reasons": {
					"personality": {"headline": "강렬함", "detail": "강렬한 인상"},
					"roleExperience": "유사 역할 경험 많음",
					"visualMatch": {"headline": "적합", "detail": "나이대가 맞음"}
				},
				"summary": "전반적으로 높은 적합도"
			}
		]
	}`

	var list RecommendationList
	if err := json.Unmarshal([]byte(input), &list); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(list.Recommendations))
	}

	rec := list.Recommendations[0]
	if rec.Reasons.Personality.Headline != "강렬함" {
		t.Errorf("unexpected personality headline %q", rec.Reasons.Personality.Headline)
	}
	if rec.Reasons.RoleExperience.Detail != "유사 역할 경험 많음" {
		t.Errorf("bare-string reason not folded into detail: %q", rec.Reasons.RoleExperience.Detail)
	}
	if rec.Reasons.RoleExperience.Headline != "" {
		t.Errorf("expected empty headline for bare-string reason, got %q", rec.Reasons.RoleExperience.Headline)
	}
}

func TestWeightConfigSum(t *testing.T) {
	if got := DefaultWeights().Sum(); got != 100 {
		t.Errorf("default weights sum = %d, expected 100", got)
	}
	w := WeightConfig{Personality: 50, RoleExperience: 40, VisualMatch: 20}
	if got := w.Sum(); got != 110 {
		t.Errorf("sum = %d, expected 110", got)
	}
}
