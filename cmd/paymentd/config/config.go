package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go-payment/internal/payment"
	"go-payment/internal/paymentapi"

	"go.uber.org/zap/zapcore"
)

const (
	serverAddressFlag     = "a"
	serverAddressEnv      = "RUN_ADDRESS"
	serverAddressDefault  = "localhost:8080"
	paymentLatencyFlag    = "l"
	paymentLatencyEnv     = "PAYMENT_LATENCY"
	paymentLatencyDefault = payment.DefaultLatency
	logLevelFlag          = "v"
	logLevelEnv           = "LOG_LEVEL"
	logLevelDefault       = "info"

	shutdownTimeout = time.Second * 5
)

type Config struct {
	Server          paymentapi.Config
	PaymentLatency  time.Duration
	LogLevel        zapcore.Level
	ShutdownTimeout time.Duration
}

func Load() (*Config, error) {
	return load(flag.CommandLine, os.Args[1:], os.LookupEnv)
}

func load(fs *flag.FlagSet, args []string, lookupEnv func(string) (string, bool)) (*Config, error) {
	serverAddress := fs.String(
		serverAddressFlag,
		serverAddressDefault,
		"Server address host:port",
	)

	paymentLatency := fs.Duration(
		paymentLatencyFlag,
		paymentLatencyDefault,
		"Simulated processing time of a payment",
	)

	logLevel := fs.String(
		logLevelFlag,
		logLevelDefault,
		"Log level: debug, info, warn, error",
	)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if valStr, ok := lookupEnv(serverAddressEnv); ok {
		*serverAddress = valStr
	}

	if valStr, ok := lookupEnv(paymentLatencyEnv); ok {
		val, err := time.ParseDuration(valStr)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", paymentLatencyEnv, err)
		}
		*paymentLatency = val
	}

	if valStr, ok := lookupEnv(logLevelEnv); ok {
		*logLevel = valStr
	}

	if *paymentLatency < 0 {
		return nil, fmt.Errorf("payment latency must not be negative, got %s", *paymentLatency)
	}

	level, err := zapcore.ParseLevel(*logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return &Config{
		Server: paymentapi.Config{
			ServerAddress:   *serverAddress,
			ShutdownTimeout: shutdownTimeout,
		},
		PaymentLatency:  *paymentLatency,
		LogLevel:        level,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}
