package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/internal/analytics"
	"github.com/fastygo/dashboard/pkg/currency"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/usecase/dashboard"
)

// AnalyticsHandler serves the read-only views derived from the collections.
type AnalyticsHandler struct {
	baseHandler
	store *dashboard.Store
}

func NewAnalyticsHandler(store *dashboard.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary Dashboard snapshot
// @Tags dashboard
// @Router /api/v1/snapshot [get]
func (h *AnalyticsHandler) Snapshot(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.store.Snapshot())
}

// @Summary Headline statistics
// @Tags dashboard
// @Router /api/v1/stats [get]
func (h *AnalyticsHandler) Stats(ctx *fasthttp.RequestCtx) {
	stats := h.store.Stats()
	h.respondSuccess(ctx, http.StatusOK, transport.StatsResponse{
		Tents:    statView(stats.Tents),
		Catering: statView(stats.Catering),
		Combined: statView(stats.Combined),
	})
}

// @Summary Booking heatmap
// @Tags dashboard
// @Router /api/v1/heatmap [get]
func (h *AnalyticsHandler) Heatmap(ctx *fasthttp.RequestCtx) {
	bookings := h.store.Bookings(repository.BookingFilter{})
	h.respondSuccess(ctx, http.StatusOK, transport.HeatmapResponse{
		Slots:      analytics.Slots,
		Days:       analytics.Days,
		Grid:       h.store.Heatmap(),
		Highlight:  h.store.Highlight(),
		Unbucketed: analytics.Unbucketed(bookings, h.store.Location()),
	})
}

// @Summary Monthly revenue per line
// @Tags analytics
// @Router /api/v1/analytics/monthly [get]
func (h *AnalyticsHandler) Monthly(ctx *fasthttp.RequestCtx) {
	months := parseInt(string(ctx.QueryArgs().Peek("months")), analytics.DefaultMonths)
	if months < 1 || months > 36 {
		h.badRequest(ctx, "months must be between 1 and 36")
		return
	}
	h.respondSuccess(ctx, http.StatusOK, h.store.MonthlyRevenue(months))
}

// @Summary Attendance summary
// @Tags analytics
// @Router /api/v1/analytics/attendance [get]
func (h *AnalyticsHandler) Attendance(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.store.Attendance())
}

// @Summary Customers
// @Tags customers
// @Router /api/v1/customers [get]
func (h *AnalyticsHandler) Customers(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.store.Customers(string(ctx.QueryArgs().Peek("search"))))
}

func statView(v domain.StatValue) transport.StatView {
	return transport.StatView{
		Title:     v.Title,
		Type:      string(v.Line),
		Value:     v.Value,
		Display:   currency.FormatINR(v.Value),
		Change:    v.Change,
		Highlight: v.Highlight,
	}
}
