// Package service provides the installer's top-level operations.
package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ZebulonRouseFrantzich/mambastrap/internal/artifact"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/config"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/download"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/logger"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/platform"
	"github.com/ZebulonRouseFrantzich/mambastrap/internal/shell"
)

// Fetcher downloads a URL into a sink.
type Fetcher interface {
	Fetch(ctx context.Context, url string, sink download.Sink) (download.Outcome, error)
}

// ShellInitiator runs shell init with the downloaded binary.
type ShellInitiator interface {
	Run(ctx context.Context, exePath, rootPrefix string, sh *string) (shell.ExitStatus, error)
}

// InstallService orchestrates one installation run.
type InstallService struct {
	collector config.Collector
	detector  platform.Detector
	fetcher   Fetcher
	initiator ShellInitiator
	clock     Clock
	out       io.Writer
	logger    logger.Logger
}

// NewInstallService creates a new install service with dependency injection.
// out receives the human-readable progress lines.
func NewInstallService(
	collector config.Collector,
	detector platform.Detector,
	fetcher Fetcher,
	initiator ShellInitiator,
	clock Clock,
	out io.Writer,
	log logger.Logger,
) *InstallService {
	if clock == nil {
		clock = RealClock{}
	}
	if out == nil {
		out = os.Stdout
	}
	if log == nil {
		log = logger.Nop()
	}
	return &InstallService{
		collector: collector,
		detector:  detector,
		fetcher:   fetcher,
		initiator: initiator,
		clock:     clock,
		out:       out,
		logger:    log,
	}
}

// InstallRequest contains the per-run parameters.
type InstallRequest struct {
	// BaseURL is the release URL prefix; empty means download.DefaultBaseURL.
	BaseURL string
	// Reporter receives progress; nil picks one for out.
	Reporter artifact.ProgressReporter
}

// InstallResult describes a completed run.
type InstallResult struct {
	Config  *config.Configuration
	Target  platform.Target
	URL     string
	Outcome download.Outcome
	Elapsed time.Duration
	// ShellExit is nil when shell init was not requested.
	ShellExit *shell.ExitStatus
}

// Execute runs the pipeline: resolve the platform, collect answers, download
// the artifact, mark it executable and optionally run shell init. The first
// error stops the run. Nothing is cleaned up on failure.
func (s *InstallService) Execute(ctx context.Context, req InstallRequest) (*InstallResult, error) {
	// 1. Resolve the platform before asking anything
	info, err := s.detector.Detect(ctx)
	if err != nil {
		return nil, fmt.Errorf("detect platform: %w", err)
	}
	target, err := info.Resolve()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("resolved platform", "os", info.OS, "arch", info.Arch, "token", target.Token())

	// 2. Collect the configuration
	cfg, err := config.Collect(s.collector, target.Platform)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("collected configuration",
		"exe_path", cfg.ExePath,
		"root_prefix", cfg.RootPrefix,
		"shell", cfg.Shell.String(),
	)

	baseURL := req.BaseURL
	if baseURL == "" {
		baseURL = download.DefaultBaseURL
	}
	result := &InstallResult{
		Config: cfg,
		Target: target,
		URL:    download.ArtifactURL(baseURL, target),
	}

	// 3. Download into the destination
	outcome, elapsed, err := s.download(ctx, result.URL, cfg.ExePath, req.Reporter)
	result.Outcome = outcome
	result.Elapsed = elapsed
	if err != nil {
		return nil, err
	}

	// 4. Make it runnable
	if err := artifact.SetExecutable(cfg.ExePath); err != nil {
		return nil, err
	}
	fmt.Fprintf(s.out, "Installed micromamba to %s\n", cfg.ExePath)

	// 5. Optional shell init
	if !cfg.InitShell() {
		s.logger.Debug("shell init not requested")
		return result, nil
	}
	status, err := s.initiator.Run(ctx, cfg.ExePath, cfg.RootPrefix, cfg.Shell.Name())
	if err != nil {
		return nil, fmt.Errorf("shell init: %w", err)
	}
	result.ShellExit = &status

	return result, nil
}

// download streams url into path and reports the final status. The writer
// is closed on every path.
func (s *InstallService) download(ctx context.Context, url, path string, reporter artifact.ProgressReporter) (download.Outcome, time.Duration, error) {
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		s.logger.Warn("replacing existing file", "path", path, "size", fi.Size())
	}

	if reporter == nil {
		reporter = artifact.NewReporter(s.out, "micromamba")
	}
	w, err := artifact.Open(path, artifact.WithReporter(reporter))
	if err != nil {
		return download.Outcome{}, 0, err
	}
	defer w.Close()

	fmt.Fprintf(s.out, "Sending request to %s\n", url)
	start := s.clock.Now()
	outcome, fetchErr := s.fetcher.Fetch(ctx, url, w)
	elapsed := s.clock.Now().Sub(start)

	closeErr := w.Close()

	if outcome.Status != 0 {
		fmt.Fprintf(s.out, "HTTP status %d\n", outcome.Status)
	}
	s.logger.Info("download finished",
		"url", url,
		"outcome", outcome.String(),
		"elapsed", elapsed,
	)

	if fetchErr != nil {
		return outcome, elapsed, fetchErr
	}
	if closeErr != nil {
		return outcome, elapsed, &artifact.IOFailureError{Path: path, Written: w.Written(), Err: closeErr}
	}
	return outcome, elapsed, nil
}
