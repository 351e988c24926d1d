package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func (h *Handler) logInternalServerError(r *http.Request, err error) {
	slog.Error("服务器内部错误", "method", r.Method, "path", r.URL.Path, "error", err)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logInternalServerError(r, err)
	}
}

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	msg := err.Error()
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		msg = validationErrors[0].Translate(h.translator)
	}

	h.writeJSON(w, r, http.StatusBadRequest, Response{
		Success: false,
		Message: msg,
	})
}

// internalServerError 对外只暴露固定的提示语，内部原因只记录日志
func (h *Handler) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	h.logInternalServerError(r, err)
	h.writeJSON(w, r, http.StatusInternalServerError, Response{
		Success: false,
		Message: "Dashboard metrics failed",
	})
}

func (h *Handler) successResponse(w http.ResponseWriter, r *http.Request, data any) {
	h.writeJSON(w, r, http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}
