package domain

import "encoding/json"

// WeightConfig holds the relative importance of the three scoring axes as
// percentages. The values are intended to sum to 100 but this is not
// enforced anywhere in the scoring path; a mismatched sum is surfaced to
// the caller as an advisory only.
type WeightConfig struct {
	Personality    int `json:"personality"`
	RoleExperience int `json:"roleExperience"`
	VisualMatch    int `json:"visualMatch"`
}

// Sum returns the total of the three weights.
func (w WeightConfig) Sum() int {
	return w.Personality + w.RoleExperience + w.VisualMatch
}

// DefaultWeights is the initial weight split offered when selecting actors.
func DefaultWeights() WeightConfig {
	return WeightConfig{Personality: 40, RoleExperience: 35, VisualMatch: 25}
}

// DetailedScores are the three independent sub-scores, each in [0,100].
type DetailedScores struct {
	Personality    float64 `json:"personality" jsonschema_description:"성격/이미지 유사도 점수 (0-100)"`
	RoleExperience float64 `json:"roleExperience" jsonschema_description:"역할 경험 적합도 점수 (0-100)"`
	VisualMatch    float64 `json:"visualMatch" jsonschema_description:"나이대/비주얼 조건 점수 (0-100)"`
}

// Reason explains one scoring axis. The response schema asks the model for
// the structured {headline, detail} shape, but earlier payloads carried a
// bare string; both decode into this type, with bare strings landing in
// Detail.
type Reason struct {
	Headline string `json:"headline" jsonschema_description:"핵심 요약 (10자 이내의 임팩트 있는 키워드나 문구)"`
	Detail   string `json:"detail" jsonschema_description:"구체적인 평가 설명"`
}

// UnmarshalJSON resolves the bare-string/structured union once at the
// ingestion boundary.
func (r *Reason) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reason{Detail: s}
		return nil
	}
	type plain Reason
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Reason(p)
	return nil
}

// ReasonSet carries one Reason per scoring axis.
type ReasonSet struct {
	Personality    Reason `json:"personality" jsonschema_description:"성격/이미지 유사도 평가"`
	RoleExperience Reason `json:"roleExperience" jsonschema_description:"역할 경험 적합도 평가"`
	VisualMatch    Reason `json:"visualMatch" jsonschema_description:"나이대/비주얼 조건 평가"`
}

// Recommendation is one scored casting suggestion. ActorName joins back to
// an ActorRecord by name only; the join is not guaranteed to resolve and
// consumers must tolerate a missing actor.
type Recommendation struct {
	ActorName      string         `json:"actorName" jsonschema_description:"배우 이름"`
	Score          float64        `json:"score" jsonschema_description:"종합 적합도 점수 (0-100)"`
	DetailedScores DetailedScores `json:"detailedScores" jsonschema_description:"세 축의 세부 점수"`
	Reasons        ReasonSet      `json:"reasons" jsonschema_description:"축별 평가 사유"`
	Summary        string         `json:"summary" jsonschema_description:"종합 추천 사유 (1-2문장)"`
}

// RecommendationList is the full structured response for one
// recommendation call, nominally already ordered by the model.
type RecommendationList struct {
	Recommendations []Recommendation `json:"recommendations" jsonschema_description:"후보 배우별 추천 결과"`
}
