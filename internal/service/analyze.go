package service

import (
	"context"
	"encoding/base64"
	"regexp"
	"strings"
	"time"

	"github.com/dana/castmatch/internal/domain"
	"github.com/dana/castmatch/internal/llm"
	"github.com/dana/castmatch/internal/logger"
	"github.com/dana/castmatch/internal/prompts"
)

// dataURLPattern splits a browser-produced data URL into media type and
// base64 payload.
var dataURLPattern = regexp.MustCompile(`^data:([^;]+);base64,(.+)$`)

// supportedImageTypes are the media types the vision models accept. Other
// types are coerced to jpeg rather than rejected.
var supportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AnalysisConfig selects the models used for character analysis.
type AnalysisConfig struct {
	TextModel   string
	VisionModel string
}

// AnalysisService turns a free-form character description, optionally with
// a reference image, into a structured four-field profile.
type AnalysisService struct {
	gen llm.Generator
	cfg AnalysisConfig
}

// NewAnalysisService creates a new AnalysisService.
// Parameters:
//   - gen: structured-output generator for model calls.
//   - cfg: model selection configuration.
// Returns:
//   - *AnalysisService: initialized service.
func NewAnalysisService(gen llm.Generator, cfg AnalysisConfig) *AnalysisService {
	return &AnalysisService{gen: gen, cfg: cfg}
}

// ParseImageData decodes a data URL (or a bare base64 string) into an
// image part. Unsupported media types are coerced to jpeg.
// Parameters:
//   - imageBase64: data URL or raw base64 payload.
// Returns:
//   - *llm.ImagePart: decoded image bytes with media type.
//   - error: non-nil if the payload is not valid base64.
func ParseImageData(imageBase64 string) (*llm.ImagePart, error) {
	mediaType := "image/jpeg"
	payload := imageBase64
	if m := dataURLPattern.FindStringSubmatch(imageBase64); m != nil {
		if supportedImageTypes[m[1]] {
			mediaType = m[1]
		}
		payload = m[2]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domain.NewValidationError("이미지 데이터가 올바르지 않습니다.")
	}
	return &llm.ImagePart{MediaType: mediaType, Data: data}, nil
}

// Analyze runs the character analysis model call.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - rawText: free-form character description; must be non-blank.
//   - imageBase64: optional reference image as a data URL; empty for none.
// Returns:
//   - *domain.CharacterProfile: structured profile.
//   - error: ValidationError for bad input, UpstreamError for model failures.
func (s *AnalysisService) Analyze(ctx context.Context, rawText, imageBase64 string) (*domain.CharacterProfile, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, domain.NewValidationError("캐릭터 텍스트가 비어있습니다.")
	}

	hasImage := imageBase64 != ""
	model := s.cfg.TextModel
	var image *llm.ImagePart
	if hasImage {
		model = s.cfg.VisionModel
		var err error
		image, err = ParseImageData(imageBase64)
		if err != nil {
			return nil, err
		}
	}

	req := &llm.Request{
		Model:      model,
		Prompt:     prompts.CharacterAnalysis(rawText, hasImage),
		Image:      image,
		SchemaName: "character_profile",
		Schema:     llm.CharacterProfileSchema,
		MaxTokens:  2048,
	}

	start := time.Now()
	var profile domain.CharacterProfile
	if err := s.gen.GenerateObject(ctx, req, &profile); err != nil {
		return nil, &domain.UpstreamError{Op: "character analysis", Err: err}
	}
	logger.With(logger.Fields{
		logger.FieldModel:      model,
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info(ctx, "character analysis completed")

	return &profile, nil
}
