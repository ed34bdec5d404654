package llm

import (
	"github.com/invopop/jsonschema"

	"github.com/dana/castmatch/internal/domain"
)

func generateSchema[T any]() any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return r.Reflect(v)
}

var (
	// CharacterProfileSchema constrains character analysis output.
	CharacterProfileSchema = generateSchema[domain.CharacterProfile]()

	// RecommendationListSchema constrains actor scoring output.
	RecommendationListSchema = generateSchema[domain.RecommendationList]()
)
