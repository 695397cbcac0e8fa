package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"ecb-rates/internal/domain/model"
	"ecb-rates/internal/domain/ports"
	"ecb-rates/pkg/logger"
	"ecb-rates/pkg/utils"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

type Handler struct {
	service ports.ExchangeService
	log     *logger.Logger
}

func NewHandler(service ports.ExchangeService, log *logger.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

func parseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(dateStr)
}

// GetRateHandler serves /api/v1/rates?currency=JPY/BGN&date=2024-01-05&exact=true.
func (h *Handler) GetRateHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	currency := strings.ToUpper(strings.TrimSpace(query.Get("currency")))
	if currency == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameter: currency")
		return
	}

	date, err := parseDate(query.Get("date"))
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	spec := model.Detailed{Date: date, Currency: currency}
	for name, dst := range map[string]*bool{
		"exact":            &spec.ExactDate,
		"ignore_cache":     &spec.IgnoreCache,
		"dont_store_cache": &spec.DontStoreCache,
	} {
		if *dst, err = utils.ParseBool(query.Get(name)); err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid "+name+" parameter")
			return
		}
	}

	quote, err := h.service.Quote(r.Context(), spec)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, quote)
}

func (h *Handler) ConvertCurrencyHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from := model.Currency(strings.ToUpper(query.Get("from")))
	to := model.Currency(strings.ToUpper(query.Get("to")))
	if from == "" || to == "" {
		h.sendErrorResponse(w, http.StatusBadRequest, "missing required parameters: from and to")
		return
	}

	amount := 1.0
	if amountStr := query.Get("amount"); amountStr != "" {
		var err error
		amount, err = strconv.ParseFloat(amountStr, 64)
		if err != nil {
			h.sendErrorResponse(w, http.StatusBadRequest, "invalid amount parameter")
			return
		}
	}

	date, err := parseDate(query.Get("date"))
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid date format, use YYYY-MM-DD")
		return
	}

	exact, err := utils.ParseBool(query.Get("exact"))
	if err != nil {
		h.sendErrorResponse(w, http.StatusBadRequest, "invalid exact parameter")
		return
	}

	result, err := h.service.ConvertCurrency(r.Context(), model.ConversionRequest{
		FromCurrency: from,
		ToCurrency:   to,
		Amount:       amount,
		Date:         date,
		ExactDate:    exact,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendSuccessResponse(w, result)
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (h *Handler) sendSuccessResponse(w http.ResponseWriter, data interface{}) {
	response := Response{
		Success: true,
		Data:    data,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode response", "error", err)
	}
}

func (h *Handler) sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := Response{
		Success: false,
		Error:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.log.Error("Failed to encode error response", "error", err)
	}
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	errorMessage := "internal server error"

	var unknown *model.UnknownCurrencyError
	switch {
	case errors.As(err, &unknown):
		statusCode = http.StatusNotFound
		errorMessage = "unknown currency " + unknown.Code
	case errors.Is(err, model.ErrInvalidCurrencySpec):
		statusCode = http.StatusBadRequest
		errorMessage = "invalid currency, use CODE or CODE/CODE"
	case errors.Is(err, model.ErrInvalidAmount):
		statusCode = http.StatusBadRequest
		errorMessage = "invalid amount"
	case errors.Is(err, model.ErrNoData):
		statusCode = http.StatusNotFound
		errorMessage = "no exchange rate data for date"
	case errors.Is(err, model.ErrParse):
		statusCode = http.StatusBadGateway
		errorMessage = "malformed rate feed"
	case errors.Is(err, model.ErrTransport):
		statusCode = http.StatusServiceUnavailable
		errorMessage = "rate feed unavailable"
	}

	h.log.Error("Service error", "error", err, "status_code", statusCode)
	h.sendErrorResponse(w, statusCode, errorMessage)
}
