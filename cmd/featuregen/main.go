package main

import (
	"errors"
	"fmt"
	"os"

	"featuregen/internal/config"
	"featuregen/internal/generator"
	"featuregen/internal/metrics"
	"featuregen/internal/random"
	"featuregen/internal/writer"
	"featuregen/pkg/logger"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(realMain(os.Args[1:]))
}

func realMain(args []string) int {
	// 1. Load Configuration
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	// Initialize logger
	logger.InitLogger(cfg.LogEnv)
	defer logger.Sync()

	if err := run(cfg); err != nil {
		logger.Error("generation failed", zap.Error(err))
		return exitFailed
	}
	return exitOK
}

func run(cfg *config.Config) error {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	if cfg.FeaturesCount == 0 {
		log.Info("features-count is 0, nothing to generate")
		return nil
	}

	// 2. Generate the whole dataset in memory
	src := random.NewSource(cfg.Seed)

	var observer metrics.GeneratorObserver = metrics.NewNopObserver()
	var prom *metrics.PrometheusObserver
	if cfg.MetricsFile != "" {
		prom = metrics.NewPrometheusObserver(runID)
		observer = prom
	}

	gen := generator.NewGenerator(src, cfg.MaxStrategiesPerFeature, generator.WithObserver(observer))
	log.Info("generating features",
		zap.Int("features_count", cfg.FeaturesCount),
		zap.Int("max_strategies_per_feature", cfg.MaxStrategiesPerFeature),
		zap.Uint64("seed", src.Seed()))

	features := gen.Generate(cfg.FeaturesCount)
	sum := generator.Summarize(features)
	log.Info("features generated",
		zap.Int("features", sum.Features),
		zap.Int("enabled", sum.Enabled),
		zap.Int("without_strategies", sum.WithoutStrategies),
		zap.Int("strategies", sum.Strategies()),
		zap.Any("strategies_by_kind", sum.StrategiesByKind))

	// 3. Write once
	var opts []writer.Option
	if cfg.Pretty {
		opts = append(opts, writer.WithIndent())
	}
	res, err := writer.WriteFile(cfg.Output, features, opts...)
	if err != nil {
		return err
	}
	observer.ObserveWrite(res.Bytes, res.Duration)

	log.Info("dataset written",
		zap.String("path", res.Path),
		zap.String("size", humanize.Bytes(uint64(res.Bytes))),
		zap.String("xxhash64", fmt.Sprintf("%016x", res.Checksum)),
		zap.Duration("duration", res.Duration))

	if prom != nil {
		if err := prom.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("failed to write metrics %s: %w", cfg.MetricsFile, err)
		}
		log.Debug("metrics written", zap.String("path", cfg.MetricsFile))
	}
	return nil
}
