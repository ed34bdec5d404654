package prompts

import (
	"fmt"
	"strings"

	"github.com/dana/castmatch/internal/domain"
)

// ============================================================================
// 캐릭터 분석 (Character Analysis)
// ============================================================================

// CharacterAnalysis builds the prompt that structures a free-form character
// description into the four profile fields. When an image accompanies the
// request the model is told to use it for appearance analysis.
func CharacterAnalysis(rawText string, hasImage bool) string {
	var b strings.Builder
	b.WriteString("캐릭터 설명을 분석하여 4가지 영역으로 구조화해주세요.\n")
	if hasImage {
		b.WriteString("이미지가 제공된 경우 외모 분석에 활용하세요.\n")
	}
	b.WriteString("텍스트에 없는 정보는 \"확인할 수 없음\"으로 표기하세요.\n\n")
	b.WriteString("## 캐릭터 설명\n")
	b.WriteString(rawText)
	return b.String()
}

// ============================================================================
// 배우 추천 (Actor Recommendation)
// ============================================================================

// Recommendation builds the casting prompt: the character section, the
// candidate list, and the weight breakdown the model should apply.
func Recommendation(characterSection, actorList string, w domain.WeightConfig) string {
	return fmt.Sprintf(`캐스팅 전문가로서 캐릭터에 맞는 배우를 추천해주세요.

## 캐릭터
%s

## 후보 배우
%s

## 가중치
- 성격/이미지: %d%%
- 역할 경험: %d%%
- 비주얼: %d%%

각 배우별로 점수(0-100)와 간단한 평가를 해주세요. headline은 10자 이내로 작성.`,
		characterSection, actorList, w.Personality, w.RoleExperience, w.VisualMatch)
}

// FormatCharacter renders a structured profile as the four labeled lines
// used in the recommendation prompt.
func FormatCharacter(p *domain.CharacterProfile) string {
	return fmt.Sprintf("외적: %s\n성격: %s\n역할: %s\n감정: %s",
		p.OuterImage, p.PersonalitySpectrum, p.NarrativeRole, p.EmotionSpectrum)
}

// FormatActor renders one candidate as a single prompt line. At most three
// past roles are listed; an actor with none shows "없음".
func FormatActor(a *domain.ActorRecord) string {
	roles := "없음"
	if len(a.NarrativeRoles) > 0 {
		limit := len(a.NarrativeRoles)
		if limit > 3 {
			limit = 3
		}
		parts := make([]string, 0, limit)
		for _, r := range a.NarrativeRoles[:limit] {
			parts = append(parts, fmt.Sprintf("%s(%s)", r.WorkTitle, r.RoleType))
		}
		roles = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("[%s] %s/%s, %s, 주요작품: %s",
		a.Name, a.AgeRange, a.Gender, a.Impression, roles)
}
