package handlers

import (
	"net/http"

	"go-payment/internal/payment"
	"go-payment/pkg/logging"

	"go.uber.org/zap"
)

type BrandsGettingHandler struct {
	logger *logging.ZapLogger
}

func NewBrandsGettingHandler(logger *logging.ZapLogger) *BrandsGettingHandler {
	return &BrandsGettingHandler{
		logger: logger,
	}
}

func (h *BrandsGettingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	brands := payment.Brands()
	names := make([]string, len(brands))
	for i, brand := range brands {
		names[i] = brand.String()
	}
	if err := tryWriteResponseJSON(w, http.StatusOK, names); err != nil {
		h.logger.ErrorCtx(r.Context(), "Error writing response", zap.Error(err))
	}
}
