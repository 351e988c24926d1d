package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/AIMANKHANN123/pulse-backend/internal/domain"
)

// metricsRequest 是两个指标接口共用的请求参数
// user_id 只在 manager 和 employee 语义下才是必填的
type metricsRequest struct {
	Role      string `validate:"required,oneof=admin manager employee"`
	CompanyID int64  `validate:"required"`
	UserID    int64  `validate:"required_unless=Role admin"`
}

// GetDashboardMetrics 处理 GET /analytics/phase2/dashboard/{role}
func (h *Handler) GetDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseMetricsRequest(r, chi.URLParam(r, "role"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	data, err := h.aggregator.ComputeDashboard(r.Context(), role, req.CompanyID, req.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, data)
}

// GetAnalyticsMetrics 处理 GET /analytics/metrics，返回不分角色的扁平指标
func (h *Handler) GetAnalyticsMetrics(w http.ResponseWriter, r *http.Request) {
	req, err := h.parseMetricsRequest(r, r.URL.Query().Get("role"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	data, err := h.aggregator.ComputeFlat(r.Context(), role, req.CompanyID, req.UserID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, data)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "ok")
}

// parseMetricsRequest 解析并校验查询参数
// role 和 company_id 缺失时必须返回约定的固定提示语
func (h *Handler) parseMetricsRequest(r *http.Request, roleParam string) (*metricsRequest, error) {
	companyIDParam := r.URL.Query().Get("company_id")
	if roleParam == "" || companyIDParam == "" {
		return nil, errors.New("role and company_id are required")
	}

	companyID, err := strconv.ParseInt(companyIDParam, 10, 64)
	if err != nil || companyID <= 0 {
		return nil, errors.New("role and company_id are required")
	}

	// user_id 是否必填由下面的结构体校验决定，这里解析失败按缺失处理
	userID, _ := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)

	req := &metricsRequest{
		Role:      roleParam,
		CompanyID: companyID,
		UserID:    userID,
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, err
	}

	return req, nil
}
