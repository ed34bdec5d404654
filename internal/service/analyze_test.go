package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dana/castmatch/internal/domain"
	"github.com/dana/castmatch/internal/llm"
)

// fakeGenerator records the last request and replies with canned JSON.
type fakeGenerator struct {
	lastReq  *llm.Request
	response string
	err      error
}

func (f *fakeGenerator) GenerateObject(ctx context.Context, req *llm.Request, out any) error {
	f.lastReq = req
	if f.err != nil {
		return f.err
	}
	return json.Unmarshal([]byte(f.response), out)
}

const profileJSON = `{
	"outer_image": "30대 남성, 차가운 첫인상",
	"personality_spectrum": "겉은 냉정하나 내면은 따뜻함",
	"narrative_role": "주인공, 형사",
	"emotion_spectrum": "절제된 감정 표현"
}`

func TestAnalyzeEmptyInput(t *testing.T) {
	svc := NewAnalysisService(&fakeGenerator{response: profileJSON}, AnalysisConfig{TextModel: "text-model"})

	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "whitespace only", text: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tt.text, "")
			if err == nil {
				t.Fatal("expected error for blank input")
			}
			if !domain.IsValidation(err) {
				t.Errorf("expected ValidationError, got %T", err)
			}
		})
	}
}

func TestAnalyzeModelSelection(t *testing.T) {
	gen := &fakeGenerator{response: profileJSON}
	svc := NewAnalysisService(gen, AnalysisConfig{TextModel: "text-model", VisionModel: "vision-model"})

	if _, err := svc.Analyze(context.Background(), "차가운 형사", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastReq.Model != "text-model" {
		t.Errorf("expected text model for text-only input, got %q", gen.lastReq.Model)
	}
	if gen.lastReq.Image != nil {
		t.Error("expected no image part for text-only input")
	}

	image := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("img"))
	if _, err := svc.Analyze(context.Background(), "차가운 형사", image); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.lastReq.Model != "vision-model" {
		t.Errorf("expected vision model for image input, got %q", gen.lastReq.Model)
	}
	if gen.lastReq.Image == nil || gen.lastReq.Image.MediaType != "image/png" {
		t.Errorf("expected png image part, got %+v", gen.lastReq.Image)
	}
}

func TestAnalyzeUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("rate limited")}
	svc := NewAnalysisService(gen, AnalysisConfig{TextModel: "text-model"})

	_, err := svc.Analyze(context.Background(), "차가운 형사", "")
	if err == nil {
		t.Fatal("expected error")
	}
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %T", err)
	}
	if !errors.Is(err, gen.err) {
		t.Error("expected cause to be preserved")
	}
}

func TestAnalyzeResult(t *testing.T) {
	svc := NewAnalysisService(&fakeGenerator{response: profileJSON}, AnalysisConfig{TextModel: "text-model"})

	profile, err := svc.Analyze(context.Background(), "차가운 형사", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.OuterImage != "30대 남성, 차가운 첫인상" {
		t.Errorf("unexpected outer image %q", profile.OuterImage)
	}
	if profile.EmotionSpectrum != "절제된 감정 표현" {
		t.Errorf("unexpected emotion spectrum %q", profile.EmotionSpectrum)
	}
}

func TestParseImageData(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("fake image bytes"))

	tests := []struct {
		name         string
		input        string
		expectedType string
	}{
		{name: "webp data url", input: "data:image/webp;base64," + payload, expectedType: "image/webp"},
		{name: "jpeg data url", input: "data:image/jpeg;base64," + payload, expectedType: "image/jpeg"},
		{name: "unsupported type coerced", input: "data:image/tiff;base64," + payload, expectedType: "image/jpeg"},
		{name: "bare base64 defaults to jpeg", input: payload, expectedType: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			part, err := ParseImageData(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if part.MediaType != tt.expectedType {
				t.Errorf("media type = %q, expected %q", part.MediaType, tt.expectedType)
			}
			if string(part.Data) != "fake image bytes" {
				t.Errorf("unexpected payload %q", part.Data)
			}
		})
	}
}

func TestParseImageDataInvalidBase64(t *testing.T) {
	_, err := ParseImageData("data:image/png;base64,@@not base64@@")
	if err == nil {
		t.Fatal("expected error for invalid base64")
	}
	if !domain.IsValidation(err) {
		t.Errorf("expected ValidationError, got %T", err)
	}
}
