package domain

// Fixed session keys carrying hand-off payloads between pipeline stages.
// Everything stored under them is JSON-serialized and lives only for the
// session.
const (
	SessionKeyAnalysis  = "characterAnalysisResult"
	SessionKeyCharacter = "characterData"
	SessionKeyResults   = "resultsData"
)

// CharacterData is the hand-off payload written after analysis and read by
// the matching stage.
type CharacterData struct {
	CharacterInfo      string            `json:"characterInfo"`
	ProcessedCharacter *CharacterProfile `json:"processedCharacter"`
	CharacterImageURL  string            `json:"characterImageUrl,omitempty"`
}

// ResultsData is the hand-off payload written after a recommendation call
// and read by the results stage, which re-ranks it whenever the weights
// change.
type ResultsData struct {
	Recommendations   []Recommendation `json:"recommendations"`
	ActorDatasets     []ActorRecord    `json:"actorDatasets"`
	CharacterName     string           `json:"characterName"`
	CharacterImageURL string           `json:"characterImageUrl,omitempty"`
	Weights           WeightConfig     `json:"weights"`
}
