package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/roster"
)

// ActorsHandler serves the curated actor roster.
type ActorsHandler struct {
	loader roster.Loader
}

// NewActorsHandler creates a new actors handler.
// Parameters:
//   - loader: configured roster source.
// Returns:
//   - *ActorsHandler: initialized handler.
func NewActorsHandler(loader roster.Loader) *ActorsHandler {
	return &ActorsHandler{loader: loader}
}

// List handles GET /api/v1/actors. An optional agency query parameter
// narrows the roster to one agency bucket.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ActorsHandler) List(c *gin.Context) {
	actors, err := h.loader.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	actors = roster.FilterByAgency(actors, c.Query("agency"))
	c.JSON(http.StatusOK, actors)
}

// agencySummary is one entry of the agency listing.
type agencySummary struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Agencies handles GET /api/v1/actors/agencies. The listing is ordered by
// the Korean collation of the display names.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *ActorsHandler) Agencies(c *gin.Context) {
	actors, err := h.loader.Load(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	grouped := roster.GroupByAgency(actors)
	codes := roster.SortedAgencies(grouped)

	summaries := make([]agencySummary, 0, len(codes))
	for _, code := range codes {
		summaries = append(summaries, agencySummary{
			Code:  code,
			Label: roster.AgencyLabel(code),
			Count: len(grouped[code]),
		})
	}

	c.JSON(http.StatusOK, gin.H{"agencies": summaries, "total": len(actors)})
}
