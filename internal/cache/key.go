package cache

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Namespace tags keep the two cache families apart even on a hash
// collision.
const (
	NamespaceAnalysis  = "char_analysis_"
	NamespaceRecommend = "recommend_cache_"
)

// hashString computes the 32-bit rolling hash h = h*31 + c over the code
// points of s, truncated to a signed 32-bit accumulator on every step.
// Not cryptographic; collisions are an accepted cache-incorrectness risk.
func hashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = (h << 5) - h + int32(r)
	}
	return h
}

// DeriveKey serializes payload to its canonical JSON form (struct field
// order, not key-sorted) and returns the namespaced hash key. Callers must
// construct payloads with consistent field order for cache hits to be
// reliable.
func DeriveKey(namespace string, payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to serialize cache payload: %w", err)
	}
	return fmt.Sprintf("%s%d", namespace, hashString(string(raw))), nil
}

// AnalysisKey derives the cache key for a profile-analysis request from the
// normalized input text and whether an image was attached. The text is
// trimmed, lowercased, and truncated to 500 code points before hashing.
func AnalysisKey(rawText string, hasImage bool) string {
	normalized := strings.ToLower(strings.TrimSpace(rawText))
	if runes := []rune(normalized); len(runes) > 500 {
		normalized = string(runes[:500])
	}
	return fmt.Sprintf("%s%d_%t", NamespaceAnalysis, hashString(normalized), hasImage)
}
