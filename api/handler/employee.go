package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/dashboard/api/transport"
	"github.com/fastygo/dashboard/domain"
	"github.com/fastygo/dashboard/pkg/httpcontext"
	"github.com/fastygo/dashboard/repository"
	"github.com/fastygo/dashboard/usecase/dashboard"
)

type EmployeeHandler struct {
	baseHandler
	store *dashboard.Store
}

func NewEmployeeHandler(store *dashboard.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       store,
	}
}

// @Summary List employees
// @Tags employees
// @Router /api/v1/employees [get]
func (h *EmployeeHandler) List(ctx *fasthttp.RequestCtx) {
	filter := repository.EmployeeFilter{
		Department: domain.Department(ctx.QueryArgs().Peek("department")),
		Status:     domain.EmployeeStatus(ctx.QueryArgs().Peek("status")),
		Search:     string(ctx.QueryArgs().Peek("search")),
	}
	h.respondSuccess(ctx, http.StatusOK, h.store.Employees(filter))
}

// @Summary Create employee
// @Tags employees
// @Router /api/v1/employees [post]
func (h *EmployeeHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.EmployeeRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.store.AddEmployee(stdCtx, employeeFromRequest(req))
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update employee
// @Tags employees
// @Router /api/v1/employees/{id} [put]
func (h *EmployeeHandler) Update(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.EmployeeRequest
	if !h.decode(ctx, &req) {
		return
	}

	update := employeeFromRequest(req)
	update.ID = id

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	applied, err := h.store.UpdateEmployee(stdCtx, update)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.MutationResult{Applied: applied, ID: id})
}

// @Summary Update employee attendance
// @Tags employees
// @Router /api/v1/employees/{id}/status [patch]
func (h *EmployeeHandler) UpdateStatus(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}
	var req transport.EmployeeStatusRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	applied, err := h.store.UpdateEmployeeStatus(stdCtx, id, domain.EmployeeStatus(req.Status), req.CheckInTime)
	if err != nil {
		h.respondError(stdCtx, ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.MutationResult{Applied: applied, ID: id})
}

// @Summary Delete employee
// @Tags employees
// @Router /api/v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, ok := h.pathID(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	applied := h.store.DeleteEmployee(stdCtx, id)
	h.respondSuccess(ctx, http.StatusOK, transport.MutationResult{Applied: applied, ID: id})
}

func employeeFromRequest(req transport.EmployeeRequest) domain.Employee {
	return domain.Employee{
		Name:        req.Name,
		AvatarURL:   req.AvatarURL,
		Department:  domain.Department(req.Department),
		Role:        req.Role,
		Status:      domain.EmployeeStatus(req.Status),
		CheckInTime: req.CheckInTime,
		Email:       req.Email,
		Phone:       req.Phone,
	}
}
