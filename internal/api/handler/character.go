package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dana/castmatch/internal/api/middleware"
	"github.com/dana/castmatch/internal/cache"
	"github.com/dana/castmatch/internal/domain"
	"github.com/dana/castmatch/internal/logger"
	"github.com/dana/castmatch/internal/service"
	"github.com/dana/castmatch/internal/storage"
)

// CharacterHandler handles character analysis and image upload endpoints.
type CharacterHandler struct {
	analysis *service.AnalysisService
	store    storage.ObjectStorage
}

// NewCharacterHandler creates a new character handler.
// Parameters:
//   - analysis: character analysis service.
//   - store: image storage backend; nil disables uploads.
// Returns:
//   - *CharacterHandler: initialized handler.
func NewCharacterHandler(analysis *service.AnalysisService, store storage.ObjectStorage) *CharacterHandler {
	return &CharacterHandler{analysis: analysis, store: store}
}

// AnalyzeRequest is the POST /api/v1/character/analyze body.
type AnalyzeRequest struct {
	RawText     string `json:"rawText"`
	ImageBase64 string `json:"imageBase64"`
}

// Analyze handles POST /api/v1/character/analyze. Results are cached per
// session under a key derived from the normalized input, so re-analyzing
// the same description skips the model call.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *CharacterHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	store := middleware.GetStore(c)
	key := cache.AnalysisKey(req.RawText, req.ImageBase64 != "")

	if cached, ok := store.Get(key); ok {
		var profile domain.CharacterProfile
		if err := json.Unmarshal(cached, &profile); err == nil {
			logger.CtxInfo(c.Request.Context(), "analysis cache hit: key=%s", key)
			store.Set(domain.SessionKeyAnalysis, cached)
			c.JSON(http.StatusOK, profile)
			return
		}
		// Unreadable cache entry; fall through to a fresh call
		store.Delete(key)
	}

	profile, err := h.analysis.Analyze(c.Request.Context(), req.RawText, req.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}

	if encoded, err := json.Marshal(profile); err == nil {
		store.Set(key, encoded)
		store.Set(domain.SessionKeyAnalysis, encoded)
	}

	c.JSON(http.StatusOK, profile)
}

// UploadImage handles POST /api/v1/character/image. The image travels as a
// multipart form file and the response carries its public URL.
// Parameters:
//   - c: Gin request context.
// Returns: none (writes JSON response).
func (h *CharacterHandler) UploadImage(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "이미지 업로드가 비활성화되어 있습니다."})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이미지 파일이 필요합니다."})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이미지 파일을 열 수 없습니다."})
		return
	}
	defer src.Close()

	data := make([]byte, 0, file.Size)
	buf := bytes.NewBuffer(data)
	if _, err := buf.ReadFrom(src); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "이미지 파일을 읽을 수 없습니다."})
		return
	}

	info, err := storage.InspectImage(buf.Bytes())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "지원하지 않는 이미지 형식입니다."})
		return
	}

	key := storage.CharacterImageKey(info.Format)
	if err := h.store.Upload(c.Request.Context(), key, bytes.NewReader(buf.Bytes()), int64(buf.Len()), info.ContentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "이미지 업로드에 실패했습니다."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": h.store.GetURL(key)})
}
