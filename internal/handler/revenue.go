package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"shopstock/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// revenueCacheTTL keeps aggregate responses hot without letting them go
// stale for longer than a minute.
const revenueCacheTTL = 60 * time.Second

type RevenueHandler struct {
	svc service.RevenueService
	rdb *redis.Client
}

func NewRevenueHandler(svc service.RevenueService, rdb *redis.Client) *RevenueHandler {
	return &RevenueHandler{svc: svc, rdb: rdb}
}

// Summary godoc
// @Summary  Revenue totals grouped by period
// @Tags     revenue
// @Produce  json
// @Param    period query string false "daily, weekly, monthly or annual (default weekly)"
// @Success  200 {array} dto.RevenueBucket
// @Router   /v1/revenue/summary [get]
func (h *RevenueHandler) Summary(c *gin.Context) {
	period := c.DefaultQuery("period", service.PeriodWeekly)

	key := "revenue:summary:" + period
	if h.serveCached(c, key) {
		return
	}
	resp, err := h.svc.Summary(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}
	h.cacheAndRespond(c, key, resp)
}

// Comparison godoc
// @Summary  Revenue per period versus the previous period
// @Tags     revenue
// @Produce  json
// @Param    period query string false "daily, weekly, monthly or annual (default weekly)"
// @Success  200 {array} dto.RevenueComparisonRow
// @Router   /v1/revenue/comparison [get]
func (h *RevenueHandler) Comparison(c *gin.Context) {
	period := c.DefaultQuery("period", service.PeriodWeekly)

	key := "revenue:comparison:" + period
	if h.serveCached(c, key) {
		return
	}
	resp, err := h.svc.Comparison(c.Request.Context(), period)
	if err != nil {
		respondError(c, err)
		return
	}
	h.cacheAndRespond(c, key, resp)
}

// serveCached replies from Redis when a fresh copy of the aggregate exists.
// Cache errors are logged and treated as misses, never surfaced.
func (h *RevenueHandler) serveCached(c *gin.Context, key string) bool {
	if h.rdb == nil {
		return false
	}
	cached, err := h.rdb.Get(c.Request.Context(), key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("key", key).Msg("revenue cache read failed")
		}
		return false
	}
	c.Data(http.StatusOK, "application/json", []byte(cached))
	return true
}

func (h *RevenueHandler) cacheAndRespond(c *gin.Context, key string, resp interface{}) {
	if h.rdb != nil {
		if body, err := json.Marshal(resp); err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := h.rdb.Set(ctx, key, body, revenueCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Str("key", key).Msg("revenue cache write failed")
			}
		}
	}
	c.JSON(http.StatusOK, resp)
}
