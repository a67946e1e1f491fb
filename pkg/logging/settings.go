package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	initialSampling    = 100
	thereafterSampling = 100

	jsonEncoding    = "json"
	consoleEncoding = "console"
)

type settings struct {
	config *zap.Config
	opts   []zap.Option
}

type Option func(s *settings)

// WithConsoleEncoding switches the encoder to zap's human readable console format.
func WithConsoleEncoding() Option {
	return func(s *settings) {
		s.config.Encoding = consoleEncoding
		s.config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
}

func WithOutputPaths(paths ...string) Option {
	return func(s *settings) {
		s.config.OutputPaths = paths
	}
}

func WithoutSampling() Option {
	return func(s *settings) {
		s.config.Sampling = nil
	}
}

func defaultSettings(level zap.AtomicLevel) *settings {
	config := &zap.Config{
		Level:       level,
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    initialSampling,
			Thereafter: thereafterSampling,
		},
		Encoding: jsonEncoding,
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:     "message",
			LevelKey:       "level",
			TimeKey:        "@timestamp",
			NameKey:        "logger",
			CallerKey:      "caller",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return &settings{
		config: config,
		opts: []zap.Option{
			zap.AddCallerSkip(wrapperFrames),
		},
	}
}
