package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/api/middleware"
	"github.com/dana/castmatch/internal/domain"
	"github.com/dana/castmatch/internal/service"
)

const defaultPageSize = 10

// ResultsHandler re-ranks and pages the stored recommendation results.
type ResultsHandler struct{}

// NewResultsHandler creates a new results handler.
func NewResultsHandler() *ResultsHandler {
	return &ResultsHandler{}
}

// ResultEntry joins one recommendation with its roster record. Actor is
// null when the name join does not resolve.
type ResultEntry struct {
	domain.Recommendation
	Actor *domain.ActorRecord `json:"actor"`
}

// ResultsResponse is the GET /api/v1/results reply.
type ResultsResponse struct {
	CharacterName     string              `json:"characterName"`
	CharacterImageURL string              `json:"characterImageUrl,omitempty"`
	Weights           domain.WeightConfig `json:"weights"`
	Total             int                 `json:"total"`
	Page              int                 `json:"page"`
	PageSize          int                 `json:"pageSize"`
	Results           []ResultEntry       `json:"results"`
}

// Results handles GET /api/v1/results. The stored recommendation list is
// re-scored with the effective weights on every call, so weight edits
// after the model call reorder results without another model round trip.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ResultsHandler) Results(c *gin.Context) {
	store := middleware.GetStore(c)

	raw, ok := store.Get(domain.SessionKeyResults)
	if !ok {
		respondError(c, &domain.ParseError{Key: domain.SessionKeyResults})
		return
	}

	var results domain.ResultsData
	if err := json.Unmarshal(raw, &results); err != nil {
		respondError(c, &domain.ParseError{Key: domain.SessionKeyResults, Err: err})
		return
	}

	weights := effectiveWeights(c, results.Weights)
	ranked := service.RankByWeights(results.Recommendations, weights)

	page, pageSize := pagination(c, len(ranked))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(ranked) {
		start = len(ranked)
	}
	if end > len(ranked) {
		end = len(ranked)
	}

	byName := make(map[string]*domain.ActorRecord, len(results.ActorDatasets))
	for i := range results.ActorDatasets {
		byName[results.ActorDatasets[i].Name] = &results.ActorDatasets[i]
	}

	entries := make([]ResultEntry, 0, end-start)
	for _, rec := range ranked[start:end] {
		entries = append(entries, ResultEntry{
			Recommendation: rec,
			Actor:          byName[rec.ActorName],
		})
	}

	characterName := results.CharacterName
	if characterName == "" {
		characterName = "캐릭터"
	}

	c.JSON(http.StatusOK, ResultsResponse{
		CharacterName:     characterName,
		CharacterImageURL: results.CharacterImageURL,
		Weights:           weights,
		Total:             len(ranked),
		Page:              page,
		PageSize:          pageSize,
		Results:           entries,
	})
}

// effectiveWeights resolves the weights for this view: query overrides
// beat stored weights, and an absent or zero stored configuration falls
// back to the display default.
func effectiveWeights(c *gin.Context, stored domain.WeightConfig) domain.WeightConfig {
	if stored.Sum() == 0 {
		stored = domain.WeightConfig{Personality: 34, RoleExperience: 33, VisualMatch: 33}
	}

	p, pErr := strconv.Atoi(c.Query("personality"))
	r, rErr := strconv.Atoi(c.Query("roleExperience"))
	v, vErr := strconv.Atoi(c.Query("visualMatch"))
	if pErr == nil && rErr == nil && vErr == nil && p >= 0 && r >= 0 && v >= 0 {
		return domain.WeightConfig{Personality: p, RoleExperience: r, VisualMatch: v}
	}
	return stored
}

func pagination(c *gin.Context, total int) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(defaultPageSize)))
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	return page, pageSize
}
