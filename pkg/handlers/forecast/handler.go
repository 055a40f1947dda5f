package forecast

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/de-tools/liquidity-atlas/pkg/adapters"
	"github.com/de-tools/liquidity-atlas/pkg/models/api"
	"github.com/de-tools/liquidity-atlas/pkg/models/domain"
	"github.com/de-tools/liquidity-atlas/pkg/services/forecast"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const dateLayout = "2006-01-02"

type Handler struct {
	controller      forecast.Controller
	defaultCurrency string
}

func NewHandler(controller forecast.Controller, defaultCurrency string) *Handler {
	return &Handler{
		controller:      controller,
		defaultCurrency: defaultCurrency,
	}
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	companies, err := h.controller.Companies(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list companies")
		http.Error(w, "failed to list companies", http.StatusInternalServerError)
		return
	}

	response := make([]api.Company, 0, len(companies))
	for _, c := range companies {
		response = append(response, adapters.MapCompanyDomainToApi(c))
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode companies")
	}
}

func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	company := chi.URLParam(r, "company")

	filters, err := h.parseFilters(r, company)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report, err := h.controller.GenerateForecast(ctx, filters)
	if err != nil {
		logger.Error().
			Err(err).
			Str("company", company).
			Msg("forecast generation failed")
		http.Error(w, "forecast generation failed", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(report)); err != nil {
		logger.Error().
			Err(err).
			Str("company", company).
			Msg("failed to encode forecast report")
	}
}

func (h *Handler) parseFilters(r *http.Request, company string) (domain.Filters, error) {
	query := r.URL.Query()

	from, err := time.Parse(dateLayout, query.Get("from"))
	if err != nil {
		return domain.Filters{}, errInvalidParam("from", err)
	}
	to, err := time.Parse(dateLayout, query.Get("to"))
	if err != nil {
		return domain.Filters{}, errInvalidParam("to", err)
	}

	periodicity := domain.Periodicity(query.Get("periodicity"))
	if periodicity == "" {
		periodicity = domain.PeriodicityMonthly
	}

	currency := query.Get("currency")
	if currency == "" {
		currency = h.defaultCurrency
	}

	f := domain.Filters{
		FromDate:             from,
		ToDate:               to,
		Periodicity:          periodicity,
		Company:              company,
		PresentationCurrency: currency,
	}
	if err := f.Validate(); err != nil {
		return domain.Filters{}, err
	}
	return f, nil
}

type paramError struct {
	name string
	err  error
}

func errInvalidParam(name string, err error) error {
	return &paramError{name: name, err: err}
}

func (p *paramError) Error() string {
	return "invalid " + p.name + " parameter: expected YYYY-MM-DD"
}

func (p *paramError) Unwrap() error {
	return p.err
}
