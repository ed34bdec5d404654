package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/api/middleware"
	"github.com/dana/castmatch/internal/cache"
	"github.com/dana/castmatch/internal/domain"
	"github.com/dana/castmatch/internal/logger"
	"github.com/dana/castmatch/internal/service"
)

// RecommendHandler handles the actor recommendation endpoint.
type RecommendHandler struct {
	svc *service.RecommendService
}

// NewRecommendHandler creates a new recommend handler.
// Parameters:
//   - svc: recommendation service.
// Returns:
//   - *RecommendHandler: initialized handler.
func NewRecommendHandler(svc *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// RecommendResponse is the POST /api/v1/recommend reply. Advisory is set
// only when the weights do not sum to 100.
type RecommendResponse struct {
	Recommendations []domain.Recommendation `json:"recommendations"`
	Advisory        string                  `json:"advisory,omitempty"`
}

// Recommend handles POST /api/v1/recommend. The full request payload is
// the cache key, so repeating an identical selection returns the cached
// list without a model call. Concurrent identical requests are not
// coalesced; both run and the later result overwrites the earlier one.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *RecommendHandler) Recommend(c *gin.Context) {
	var req service.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	store := middleware.GetStore(c)
	ctx := c.Request.Context()

	key, err := cache.DeriveKey(cache.NamespaceRecommend, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	var list *domain.RecommendationList
	if cached, ok := store.Get(key); ok {
		var decoded domain.RecommendationList
		if err := json.Unmarshal(cached, &decoded); err == nil {
			logger.CtxInfo(ctx, "recommendation cache hit: key=%s", key)
			list = &decoded
		} else {
			store.Delete(key)
		}
	}

	if list == nil {
		list, err = h.svc.Recommend(ctx, &req)
		if err != nil {
			respondError(c, err)
			return
		}
		if encoded, err := json.Marshal(list); err == nil {
			store.Set(key, encoded)
		}
	}

	h.storeResults(store, &req, list)

	c.JSON(http.StatusOK, RecommendResponse{
		Recommendations: list.Recommendations,
		Advisory:        service.WeightAdvisory(req.Weights),
	})
}

// storeResults writes the hand-off payload the results endpoint re-ranks.
// The character image URL is carried over from the analysis stage when one
// was stored.
func (h *RecommendHandler) storeResults(store cache.Store, req *service.RecommendRequest, list *domain.RecommendationList) {
	results := domain.ResultsData{
		Recommendations: list.Recommendations,
		ActorDatasets:   req.ActorDatasets,
		CharacterName:   service.ExtractCharacterName(req.CharacterInfo),
		Weights:         req.Weights,
	}

	if raw, ok := store.Get(domain.SessionKeyCharacter); ok {
		var characterData domain.CharacterData
		if err := json.Unmarshal(raw, &characterData); err == nil {
			results.CharacterImageURL = characterData.CharacterImageURL
		}
	}

	if encoded, err := json.Marshal(results); err == nil {
		store.Set(domain.SessionKeyResults, encoded)
	}
}
