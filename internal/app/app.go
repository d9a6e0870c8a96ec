// Package app implements the application layer for memo.
package app

import (
	"context"

	"go.trai.ch/memo/internal/adapters/fs"  //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/sdk" //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/engine/evaluation"
	"go.trai.ch/zerr"
)

// ToolsetReaderFactory creates a reader for the toolset definition file at
// path.
type ToolsetReaderFactory func(path string) ports.ToolsetReader

// App exposes the inspection operations the CLI is built on.
type App struct {
	logger   ports.Logger
	tracker  *evaluation.Tracker
	toolsets ToolsetReaderFactory
}

// New creates a new App instance.
func New(logger ports.Logger, tracker *evaluation.Tracker, toolsets ToolsetReaderFactory) *App {
	return &App{
		logger:   logger,
		tracker:  tracker,
		toolsets: toolsets,
	}
}

// ExpandGlob expands pattern from baseDir through the context tracked for
// that directory and returns the ordered matches with their fingerprint.
// Repeated calls for the same directory reuse the same context, so repeated
// expansions are served from cache.
func (a *App) ExpandGlob(baseDir, pattern string) ([]string, string, error) {
	evalCtx := a.tracker.ContextFor(baseDir)

	matches, err := evalCtx.Globs().Expand(pattern, baseDir)
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to expand pattern")
	}
	fingerprint, err := evalCtx.Globs().Fingerprint(pattern, baseDir)
	if err != nil {
		return nil, "", err
	}
	return matches, fingerprint, nil
}

// Toolsets reads the toolset definition file at path.
func (a *App) Toolsets(path string) (*domain.ToolsetTable, error) {
	table, err := a.toolsets(path).ReadToolsets()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load toolsets")
	}
	return table, nil
}

// ResolveSdk resolves an SDK by name and version against the given search
// roots, going through a fresh isolated evaluation context.
func (a *App) ResolveSdk(ctx context.Context, name, version string, roots []string) (*domain.SdkResult, error) {
	evalCtx, err := evaluation.New(domain.SharingPolicyIsolated)
	if err != nil {
		return nil, err
	}

	resolver := sdk.NewDirectoryResolver(fs.New(), roots)
	service := evaluation.NewSdkResolverService(resolver, nil)
	return service.Resolve(ctx, evalCtx, name, version)
}
