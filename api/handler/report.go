package handler

import (
	"bytes"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/internal/analytics"
	"github.com/fastygo/dashboard/internal/report"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/usecase/dashboard"
)

const busiestCells = 5

type ReportHandler struct {
	baseHandler
	store *dashboard.Store
}

func NewReportHandler(store *dashboard.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary Revenue report PDF
// @Tags reports
// @Router /api/v1/reports/revenue.pdf [get]
func (h *ReportHandler) Revenue(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	snapshot := h.store.Snapshot()
	var buf bytes.Buffer
	err := report.RevenueReport(&buf, report.RevenueInput{
		Stats:       snapshot.Stats,
		Monthly:     h.store.MonthlyRevenue(analytics.DefaultMonths),
		Busiest:     analytics.BusiestCells(snapshot.Heatmap, busiestCells),
		Attendance:  h.store.Attendance(),
		GeneratedAt: snapshot.GeneratedAt,
		Location:    h.store.Location(),
	})
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondPDF(ctx, "revenue-report.pdf", buf.Bytes())
}

// @Summary Booking slip PDF
// @Tags reports
// @Router /api/v1/bookings/{id}/slip [get]
func (h *ReportHandler) BookingSlip(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	booking, err := h.store.Booking(id)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	var buf bytes.Buffer
	if err := report.BookingSlip(&buf, booking, h.store.Location()); err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondPDF(ctx, "booking-"+booking.ID+".pdf", buf.Bytes())
}
