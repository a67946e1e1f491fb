package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go-payment/internal/common/paymentprotocol"
	"go-payment/internal/payment"
	"go-payment/internal/processor"
	"go-payment/pkg/logging"

	"go.uber.org/zap"
)

type PaymentProcessor interface {
	ProcessOne(ctx context.Context, request processor.Request) processor.Outcome
}

func closeBody(ctx context.Context, body io.ReadCloser, logger *logging.ZapLogger) {
	err := body.Close()
	if err != nil {
		logger.ErrorCtx(ctx, "failed to close body", zap.Error(err))
	}
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	err := decoder.Decode(&out)
	return out, err
}

func tryWriteResponseJSON(w http.ResponseWriter, statusCode int, responseItem any) error {
	res, err := json.Marshal(responseItem)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, err = w.Write(res)
	return err
}

func writeError(
	ctx context.Context,
	w http.ResponseWriter,
	logger *logging.ZapLogger,
	statusCode int,
	code paymentprotocol.ErrorCode,
	message string,
) {
	err := tryWriteResponseJSON(w, statusCode, paymentprotocol.ErrorResponse{
		Code:  code,
		Error: message,
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Error writing error response", zap.Error(err))
	}
}

// writeOutcome answers with the receipt of an approved payment or maps the
// outcome error to a status code.
func writeOutcome(ctx context.Context, w http.ResponseWriter, logger *logging.ZapLogger, outcome processor.Outcome) {
	if outcome.Err != nil {
		switch {
		case errors.Is(outcome.Err, payment.ErrInvalidAmount):
			writeError(ctx, w, logger, http.StatusUnprocessableEntity, paymentprotocol.InvalidAmount, outcome.Err.Error())
		case errors.Is(outcome.Err, payment.ErrInvalidBarcode):
			writeError(ctx, w, logger, http.StatusUnprocessableEntity, paymentprotocol.InvalidBarcode, outcome.Err.Error())
		case errors.Is(outcome.Err, context.Canceled), errors.Is(outcome.Err, context.DeadlineExceeded):
			logger.DebugCtx(ctx, "payment interrupted", zap.Error(outcome.Err))
			writeError(ctx, w, logger, http.StatusServiceUnavailable, paymentprotocol.Unavailable, "payment interrupted")
		default:
			logger.ErrorCtx(ctx, "payment handler error", zap.Error(outcome.Err))
			writeError(ctx, w, logger, http.StatusInternalServerError, paymentprotocol.Internal, "internal error")
		}
		return
	}

	pay := outcome.Payment
	err := tryWriteResponseJSON(w, http.StatusOK, paymentprotocol.PaymentResponse{
		ID:      pay.ID(),
		Message: outcome.Message,
		Status:  string(pay.Status()),
		Details: pay.Details(),
	})
	if err != nil {
		logger.ErrorCtx(ctx, "Error writing response", zap.Error(err))
	}
}
