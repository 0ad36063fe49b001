package commands

import (
	"context"
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	infraRepos "github.com/rios0rios0/docsentinel/internal/infrastructure/repositories"
)

// CheckDependencies is the interface for the check-dependencies command.
type CheckDependencies interface {
	Execute(ctx context.Context, opts CheckDependenciesOptions) (*entities.Report, error)
}

// CheckDependenciesOptions holds runtime options for a dependency check.
type CheckDependenciesOptions struct {
	ManifestPath string
	OutputPath   string
	DryRun       bool
	Limit        int // 0 checks every item
}

// CheckDependenciesCommand compares every pinned manifest version with the latest
// release published on the item's registry.
type CheckDependenciesCommand struct {
	registries *infraRepos.RegistryRegistry
}

// NewCheckDependenciesCommand creates a new CheckDependenciesCommand.
func NewCheckDependenciesCommand(registries *infraRepos.RegistryRegistry) *CheckDependenciesCommand {
	return &CheckDependenciesCommand{registries: registries}
}

// Execute builds the outdated report. Lookup failures are logged and the item is
// left out; only an unreadable manifest or report file fails the run.
func (it *CheckDependenciesCommand) Execute(
	ctx context.Context,
	opts CheckDependenciesOptions,
) (*entities.Report, error) {
	manifest, err := entities.LoadManifest(opts.ManifestPath)
	if err != nil {
		return nil, err
	}

	tracked := manifest.Flatten()
	if opts.Limit > 0 && len(tracked) > opts.Limit {
		tracked = tracked[:opts.Limit]
	}
	logger.Infof("Checking %d tracked dependencies from %q", len(tracked), opts.ManifestPath)

	var outdated []entities.OutdatedDependency
	failed := 0
	for _, dep := range tracked {
		entry, isOutdated, checkErr := it.check(ctx, dep)
		if checkErr != nil {
			logger.Warnf("[%s] %s: %v", dep.Category, dep.Key, checkErr)
			failed++
			continue
		}
		if isOutdated {
			logger.Infof("[%s] %s: %s -> %s", dep.Category, dep.Key, entry.CurrentVersion, entry.LatestVersion)
			outdated = append(outdated, entry)
		} else {
			logger.Debugf("[%s] %s is up to date (%s)", dep.Category, dep.Key, dep.Item.Version)
		}
	}

	report := entities.NewReport(outdated)
	logger.Infof("Check complete: %d outdated, %d lookups failed", report.OutdatedCount, failed)

	if opts.DryRun {
		logger.Infof("[dry-run] Not writing %q", opts.OutputPath)
		return report, nil
	}
	if writeErr := report.Write(opts.OutputPath); writeErr != nil {
		return nil, writeErr
	}
	logger.Infof("Report written to %q", opts.OutputPath)
	return report, nil
}

func (it *CheckDependenciesCommand) check(
	ctx context.Context,
	dep entities.TrackedDependency,
) (entities.OutdatedDependency, bool, error) {
	registry := it.registries.Get(dep.Category)
	if registry == nil {
		return entities.OutdatedDependency{}, false, fmt.Errorf("unsupported category %q", dep.Category)
	}
	if dep.Item.Version == "" {
		return entities.OutdatedDependency{}, false, errors.New("no pinned version")
	}

	release, err := registry.LatestRelease(ctx, dep.Item)
	if err != nil {
		return entities.OutdatedDependency{}, false, err
	}
	if release.Version == "" || release.Version == dep.Item.Version {
		return entities.OutdatedDependency{}, false, nil
	}

	return entities.OutdatedDependency{
		Name:             dep.Key,
		Category:         dep.Category,
		CurrentVersion:   dep.Item.Version,
		LatestVersion:    release.Version,
		LatestReleaseURL: release.URL,
	}, true, nil
}
