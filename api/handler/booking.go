package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/usecase/dashboard"
)

type BookingHandler struct {
	baseHandler
	store *dashboard.Store
}

func NewBookingHandler(store *dashboard.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List bookings
// @Tags bookings
// @Router /api/v1/bookings [get]
func (h *BookingHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.BookingFilter{
		Search: string(ctx.QueryArgs().Peek("search")),
	}
	if raw := string(ctx.QueryArgs().Peek("line")); raw != "" {
		line, ok := domain.ParseBusinessLine(raw)
		if !ok {
			h.badRequest(ctx, "unknown business line")
			return
		}
		filter.Line = line
	}
	if raw := string(ctx.QueryArgs().Peek("status")); raw != "" {
		filter.Status = domain.BookingStatus(strings.ToLower(raw))
		if !filter.Status.Valid() {
			h.badRequest(ctx, "unknown booking status")
			return
		}
	}
	h.respondSuccess(ctx, http.StatusOK, h.store.Bookings(filter))
}

// @Summary Create booking
// @Tags bookings
// @Router /api/v1/bookings [post]
func (h *BookingHandler) Create(ctx *fasthttp.RequestCtx) {
	booking, ok := h.parseBooking(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.store.AddBooking(stdCtx, booking)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update booking status
// @Tags bookings
// @Router /api/v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.BookingStatusRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	applied, err := h.store.UpdateBookingStatus(stdCtx, id, domain.BookingStatus(strings.ToLower(req.Status)))
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.MutationResult{Applied: applied, ID: id})
}

// @Summary Delete booking
// @Tags bookings
// @Router /api/v1/bookings/{id} [delete]
func (h *BookingHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	applied := h.store.DeleteBooking(stdCtx, id)
	h.respondSuccess(ctx, http.StatusOK, transport.MutationResult{Applied: applied, ID: id})
}

func (h *BookingHandler) parseBooking(ctx *fasthttp.RequestCtx) (domain.Booking, bool) {
	var req transport.BookingRequest
	if !h.decode(ctx, &req) {
		return domain.Booking{}, false
	}

	line, ok := domain.ParseBusinessLine(req.Type)
	if !ok {
		h.badRequest(ctx, "unknown business line")
		return domain.Booking{}, false
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		h.badRequest(ctx, "date must be RFC 3339")
		return domain.Booking{}, false
	}

	booking := domain.Booking{
		Title:           strings.TrimSpace(req.Title),
		Type:            line,
		Date:            date,
		Status:          domain.BookingStatus(strings.ToLower(req.Status)),
		CustomerName:    strings.TrimSpace(req.CustomerName),
		Amount:          req.Amount,
		Venue:           req.Venue,
		Notes:           req.Notes,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerCompany: req.CustomerCompany,
		CustomerAddress: req.CustomerAddress,
		EventType:       req.EventType,
		GuestCount:      req.GuestCount,
		ReferralSource:  req.ReferralSource,
	}
	if booking.Status == "" {
		booking.Status = domain.BookingPending
	}
	return booking, true
}
