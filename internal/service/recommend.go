package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/dana/castmatch/internal/domain"
	"github.com/dana/castmatch/internal/llm"
	"github.com/dana/castmatch/internal/logger"
	"github.com/dana/castmatch/internal/prompts"
)

// RecommendConfig selects the model used for recommendation scoring.
type RecommendConfig struct {
	Model string
}

// RecommendService scores a set of candidate actors against a character
// profile with a single model call.
type RecommendService struct {
	gen llm.Generator
	cfg RecommendConfig
}

// NewRecommendService creates a new RecommendService.
// Parameters:
//   - gen: structured-output generator for model calls.
//   - cfg: model selection configuration.
// Returns:
//   - *RecommendService: initialized service.
func NewRecommendService(gen llm.Generator, cfg RecommendConfig) *RecommendService {
	return &RecommendService{gen: gen, cfg: cfg}
}

// RecommendRequest is the full input of one recommendation call. Field
// order matters: the cache key is derived from the JSON serialization of
// this struct in declaration order.
type RecommendRequest struct {
	CharacterInfo      string                   `json:"characterInfo"`
	ProcessedCharacter *domain.CharacterProfile `json:"processedCharacter"`
	ActorDatasets      []domain.ActorRecord     `json:"actorDatasets"`
	Weights            domain.WeightConfig      `json:"weights"`
}

// Recommend runs the scoring model call over the selected actors.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - req: character, candidates, and weights; candidates must be non-empty.
// Returns:
//   - *domain.RecommendationList: scored recommendations in model order.
//   - error: ValidationError for bad input, UpstreamError for model failures.
func (s *RecommendService) Recommend(ctx context.Context, req *RecommendRequest) (*domain.RecommendationList, error) {
	if len(req.ActorDatasets) == 0 {
		return nil, domain.NewValidationError("최소 1명 이상의 배우를 선택해주세요.")
	}

	characterSection := req.CharacterInfo
	if req.ProcessedCharacter != nil {
		characterSection = prompts.FormatCharacter(req.ProcessedCharacter)
	}

	lines := make([]string, 0, len(req.ActorDatasets))
	for i := range req.ActorDatasets {
		lines = append(lines, prompts.FormatActor(&req.ActorDatasets[i]))
	}

	genReq := &llm.Request{
		Model:      s.cfg.Model,
		Prompt:     prompts.Recommendation(characterSection, strings.Join(lines, "\n"), req.Weights),
		SchemaName: "actor_recommendations",
		Schema:     llm.RecommendationListSchema,
		MaxTokens:  8192,
	}

	start := time.Now()
	var list domain.RecommendationList
	if err := s.gen.GenerateObject(ctx, genReq, &list); err != nil {
		return nil, &domain.UpstreamError{Op: "actor recommendation", Err: err}
	}
	logger.With(logger.Fields{
		logger.FieldModel:      s.cfg.Model,
		logger.FieldCount:      len(list.Recommendations),
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info(ctx, "actor recommendation completed")

	return &list, nil
}

var (
	namePattern     = regexp.MustCompile(`이름[:\s]*([^\n,]+)`)
	fallbackPattern = regexp.MustCompile(`^([가-힣a-zA-Z\s]+)`)
)

// ExtractCharacterName pulls a display name from the first line of a
// free-form character description, capped at 20 characters. Descriptions
// that start with neither a name label nor a plain name fall back to
// "캐릭터".
func ExtractCharacterName(info string) string {
	firstLine, _, _ := strings.Cut(info, "\n")
	m := namePattern.FindStringSubmatch(firstLine)
	if m == nil {
		m = fallbackPattern.FindStringSubmatch(firstLine)
	}
	if m == nil {
		return "캐릭터"
	}
	name := strings.TrimSpace(m[1])
	if runes := []rune(name); len(runes) > 20 {
		name = string(runes[:20])
	}
	if name == "" {
		return "캐릭터"
	}
	return name
}
