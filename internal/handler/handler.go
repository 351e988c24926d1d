package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/AIMANKHANN123/pulse-backend/internal/config"
	"github.com/AIMANKHANN123/pulse-backend/internal/metrics"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	aggregator *metrics.Aggregator
	translator ut.Translator

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, aggregator *metrics.Aggregator) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		aggregator: aggregator,
		translator: trans,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/healthz", h.Healthz)

	h.Mux.Route("/analytics", func(r chi.Router) {
		r.Get("/metrics", h.GetAnalyticsMetrics)
		r.Route("/phase2", func(r chi.Router) {
			r.Get("/dashboard/{role}", h.GetDashboardMetrics)
		})
	})
}
