package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-payment/internal/payment"
	"go-payment/internal/processor"
	"go-payment/pkg/logging"

	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

func main() {
	logger, err := logging.NewZapLogger(zapcore.ErrorLevel, logging.WithConsoleEncoding())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancelCtx := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancelCtx()

	p := processor.New(os.Stdout, os.Stderr, logger, nil)
	p.Process(ctx, sampleRequests())
}

func sampleRequests() []processor.Request {
	return []processor.Request{
		processor.CardRequest(decimal.NewFromInt(150), payment.Visa),
		processor.SlipRequest(decimal.NewFromInt(200), "1234567890"),
		processor.SlipRequest(decimal.NewFromInt(50), "123456789"),
		processor.CardRequest(decimal.Zero, payment.Visa),
		processor.SlipRequest(decimal.Zero, "1234567896"),
	}
}
