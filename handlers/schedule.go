package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"dbsa/middleware"
	"dbsa/services/schedule"
	"dbsa/utils"
)

// ScheduleHandler serves the schedule proxy endpoint.
type ScheduleHandler struct {
	Service      schedule.ScheduleService
	Limiter      *middleware.RateLimiter
	CacheControl string
}

func NewScheduleHandler(service schedule.ScheduleService, limiter *middleware.RateLimiter, cacheControl string) *ScheduleHandler {
	return &ScheduleHandler{
		Service:      service,
		Limiter:      limiter,
		CacheControl: cacheControl,
	}
}

// GetScheduleHandler runs the request sequence: sanitize, rate limit, fetch,
// normalize, respond. Each failure exits immediately with its own status;
// upstream trouble degrades to the fallback envelope instead of a bare 5xx.
func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	requestID := uuid.New().String()
	logger := utils.GetLogger().With(zap.String("requestId", requestID))
	startedAt := time.Now()

	params, err := schedule.SanitizeParams(c.Request.URL.Query(), startedAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	identity := middleware.ClientIdentity(c)
	if !h.Limiter.Admit(identity) {
		logger.Warn("rate limit exceeded", zap.String("identity", identity))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests. Please slow down."})
		return
	}

	payload, err := h.Service.GetSchedule(c.Request.Context(), params)
	if err != nil {
		var upstreamErr *schedule.UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.Code == schedule.CodeUpstreamUnavailable {
			logger.Warn("mindbody non-2xx", zap.Int("status", upstreamErr.Status))
			c.JSON(http.StatusServiceUnavailable, schedule.NewFallbackPayload("Mindbody service unavailable. Loading widget fallback."))
			return
		}
		logger.Error("mindbody fetch error", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, schedule.NewFallbackPayload("Mindbody request failed. Loading widget fallback."))
		return
	}

	logger.Info("schedule served",
		zap.Int64("durationMs", time.Since(startedAt).Milliseconds()),
		zap.Int("sessions", len(payload.Sessions)),
	)

	c.Header("Cache-Control", h.CacheControl)
	c.JSON(http.StatusOK, payload)
}
