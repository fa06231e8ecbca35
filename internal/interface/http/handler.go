package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitalink/wellness-backend/internal/domain/dailytips"
	"github.com/vitalink/wellness-backend/internal/domain/vitals"
	apperrors "github.com/vitalink/wellness-backend/pkg/errors"
)

// Handler wires the HTTP transport to the daily tips service.
type Handler struct {
	tipsSvc dailytips.Service
	logger  *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(tipsSvc dailytips.Service, logger *slog.Logger) *Handler {
	return &Handler{
		tipsSvc: tipsSvc,
		logger:  logger.With("component", "http.handler"),
	}
}

// DailyTips returns the cached-or-generated tip set for the user's current
// day window.
func (h *Handler) DailyTips(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	tips, err := h.tipsSvc.GetDailyTips(c.Request.Context(), userID)
	if err != nil {
		status := http.StatusInternalServerError
		code := "daily_tips_failed"
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			status = http.StatusNotFound
			code = "no_test_results"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "tips": tips})
}

// Recommendations returns the static catalog list matching the user's latest
// risk level.
func (h *Handler) Recommendations(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	items, err := h.tipsSvc.RecommendationsFor(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "recommendations_failed", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID, "recommendations": items})
}

// RecommendationsByRisk returns the catalog list for an explicit risk level.
func (h *Handler) RecommendationsByRisk(c *gin.Context) {
	raw := c.Query("riskLevel")
	if raw == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "riskLevel query parameter is required", nil))
		return
	}
	risk := vitals.ParseRiskLevel(raw)
	if !risk.Known() {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "unknown risk level: "+raw, nil))
		return
	}

	c.JSON(http.StatusOK, gin.H{"riskLevel": risk, "recommendations": h.tipsSvc.RecommendationsByRisk(risk)})
}

// Pregenerate triggers the batch cache warm-up on demand and reports per
// outcome counts.
func (h *Handler) Pregenerate(c *gin.Context) {
	summary, err := h.tipsSvc.PregenerateAll(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "pregenerate_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Cleanup removes expired cache entries on demand.
func (h *Handler) Cleanup(c *gin.Context) {
	removed, err := h.tipsSvc.Cleanup(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "cleanup_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// Healthz is a liveness probe.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func pathUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "user id must be a positive integer", err))
		return 0, false
	}
	return id, true
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
