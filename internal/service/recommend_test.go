package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dana/castmatch/internal/domain"
)

const recommendationJSON = `{
	"recommendations": [
		{
			"actorName": "김배우",
			"score": 88,
			"detailedScores": {"personality": 90, "roleExperience": 85, "visualMatch": 88},
			"reasons": {
				"personality": {"headline": "적합", "detail": "성격이 맞음"},
				"roleExperience": {"headline": "경험 풍부", "detail": "유사 역할 다수"},
				"visualMatch": {"headline": "일치", "detail": "나이대가 맞음"}
			},
			"summary": "높은 적합도"
		}
	]
}`

func testRequest() *RecommendRequest {
	return &RecommendRequest{
		CharacterInfo: "이름: 강태오\n차가운 형사",
		ActorDatasets: []domain.ActorRecord{
			{
				Name:       "김배우",
				AgeRange:   "30대",
				Gender:     "남성",
				Impression: "차가운 인상",
				NarrativeRoles: domain.NarrativeRoleList{
					{WorkTitle: "수사반장", RoleType: "주연"},
					{WorkTitle: "야행", RoleType: "조연"},
				},
			},
		},
		Weights: domain.DefaultWeights(),
	}
}

func TestRecommendNoActorsSelected(t *testing.T) {
	svc := NewRecommendService(&fakeGenerator{response: recommendationJSON}, RecommendConfig{Model: "rec-model"})

	req := testRequest()
	req.ActorDatasets = nil

	_, err := svc.Recommend(context.Background(), req)
	if err == nil {
		t.Fatal("expected error for empty selection")
	}
	if !domain.IsValidation(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}

func TestRecommendPromptContents(t *testing.T) {
	gen := &fakeGenerator{response: recommendationJSON}
	svc := NewRecommendService(gen, RecommendConfig{Model: "rec-model"})

	if _, err := svc.Recommend(context.Background(), testRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prompt := gen.lastReq.Prompt
	for _, expected := range []string{
		"[김배우] 30대/남성, 차가운 인상, 주요작품: 수사반장(주연), 야행(조연)",
		"성격/이미지: 40%",
		"역할 경험: 35%",
		"비주얼: 25%",
	} {
		if !strings.Contains(prompt, expected) {
			t.Errorf("prompt missing %q:\n%s", expected, prompt)
		}
	}
	if gen.lastReq.Model != "rec-model" {
		t.Errorf("unexpected model %q", gen.lastReq.Model)
	}
}

func TestRecommendPrefersProcessedCharacter(t *testing.T) {
	gen := &fakeGenerator{response: recommendationJSON}
	svc := NewRecommendService(gen, RecommendConfig{Model: "rec-model"})

	req := testRequest()
	req.ProcessedCharacter = &domain.CharacterProfile{
		OuterImage:          "30대 남성",
		PersonalitySpectrum: "냉철함",
		NarrativeRole:       "형사",
		EmotionSpectrum:     "절제",
	}

	if _, err := svc.Recommend(context.Background(), req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(gen.lastReq.Prompt, "외적: 30대 남성") {
		t.Error("expected structured profile in prompt")
	}
	if strings.Contains(gen.lastReq.Prompt, "이름: 강태오") {
		t.Error("expected raw character info to be replaced by structured profile")
	}
}

func TestRecommendUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("model overloaded")}
	svc := NewRecommendService(gen, RecommendConfig{Model: "rec-model"})

	_, err := svc.Recommend(context.Background(), testRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
}

func TestExtractCharacterName(t *testing.T) {
	tests := []struct {
		name     string
		info     string
		expected string
	}{
		{name: "labeled name", info: "이름: 강태오\n차가운 형사", expected: "강태오"},
		{name: "labeled name with comma", info: "이름: 강태오, 35세", expected: "강태오"},
		{name: "bare korean name", info: "강태오는 형사다", expected: "강태오는 형사다"},
		{name: "english name capped", info: "John Smith is a detective", expected: "John Smith is a dete"},
		{name: "no extractable name", info: "1997년생", expected: "캐릭터"},
		{name: "empty input", info: "", expected: "캐릭터"},
		{
			name:     "caps at 20 characters",
			info:     "이름: 아주아주아주아주아주아주아주아주아주아주긴이름",
			expected: "아주아주아주아주아주아주아주아주아주아주",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCharacterName(tt.info); got != tt.expected {
				t.Errorf("ExtractCharacterName(%q) = %q, expected %q", tt.info, got, tt.expected)
			}
		})
	}
}
