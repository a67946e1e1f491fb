package handlers

import (
	"net/http"

	"go-payment/internal/common/paymentprotocol"
	"go-payment/internal/processor"
	"go-payment/pkg/logging"

	"go.uber.org/zap"
)

type SlipPaymentHandler struct {
	processor PaymentProcessor
	logger    *logging.ZapLogger
}

func NewSlipPaymentHandler(processor PaymentProcessor, logger *logging.ZapLogger) *SlipPaymentHandler {
	return &SlipPaymentHandler{
		processor: processor,
		logger:    logger,
	}
}

func (h *SlipPaymentHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer closeBody(r.Context(), r.Body, h.logger)

	input, err := decodeJSON[paymentprotocol.SlipPaymentRequest](r.Body)
	if err != nil {
		h.logger.DebugCtx(r.Context(), "input decoding error", zap.Error(err))
		writeError(r.Context(), w, h.logger, http.StatusBadRequest, paymentprotocol.BadRequest, err.Error())
		return
	}

	outcome := h.processor.ProcessOne(r.Context(), processor.SlipRequest(input.Amount, input.Barcode))
	writeOutcome(r.Context(), w, h.logger, outcome)
}
