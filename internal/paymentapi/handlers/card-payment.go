package handlers

import (
	"errors"
	"net/http"

	"go-payment/internal/common/paymentprotocol"
	"go-payment/internal/payment"
	"go-payment/internal/processor"
	"go-payment/pkg/logging"

	"go.uber.org/zap"
)

var errBrandRequired = errors.New("brand is required")

type CardPaymentHandler struct {
	processor PaymentProcessor
	logger    *logging.ZapLogger
}

func NewCardPaymentHandler(processor PaymentProcessor, logger *logging.ZapLogger) *CardPaymentHandler {
	return &CardPaymentHandler{
		processor: processor,
		logger:    logger,
	}
}

func (h *CardPaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	input, err := decodeJSON[paymentprotocol.CardPaymentRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		writeError(r.Context(), w, h.logger, http.StatusBadRequest, paymentprotocol.BadRequest, err.Error())
		return
	}

	if input.Brand == "" {
		writeError(r.Context(), w, h.logger, http.StatusBadRequest, paymentprotocol.BadRequest, errBrandRequired.Error())
		return
	}
	brand, err := payment.ParseBrand(input.Brand)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "unknown brand", zap.String("brand", input.Brand))
		writeError(r.Context(), w, h.logger, http.StatusBadRequest, paymentprotocol.UnknownBrand, err.Error())
		return
	}

	outcome := h.processor.ProcessOne(r.Context(), processor.CardRequest(input.Amount, brand))
	writeOutcome(r.Context(), w, h.logger, outcome)
}
