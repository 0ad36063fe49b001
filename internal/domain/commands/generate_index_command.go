package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateIndex is the interface for the generate-index command.
type GenerateIndex interface {
	Execute(ctx context.Context, cfg *entities.PipelineConfig, opts GenerateIndexOptions) (GenerateIndexResult, error)
}

// GenerateIndexOptions holds runtime options for site index generation.
type GenerateIndexOptions struct {
	DryRun         bool
	Limit          int
	Sections       bool
	PreviewChars   int
	MaxDepth       int
	TokenEstimator string
}

// GenerateIndexResult holds what was (or would have been) written.
type GenerateIndexResult struct {
	Records  []entities.SiteIndexRecord
	Sections []entities.SectionRecord
}

// GenerateIndexCommand summarizes every page artifact into site-index.json and,
// optionally, one JSON line per heading section.
type GenerateIndexCommand struct{}

// NewGenerateIndexCommand creates a new GenerateIndexCommand.
func NewGenerateIndexCommand() *GenerateIndexCommand {
	return &GenerateIndexCommand{}
}

func (it *GenerateIndexCommand) Execute(
	_ context.Context,
	cfg *entities.PipelineConfig,
	opts GenerateIndexOptions,
) (GenerateIndexResult, error) {
	result := GenerateIndexResult{
		Records:  []entities.SiteIndexRecord{},
		Sections: []entities.SectionRecord{},
	}

	estimator := entities.NewTokenEstimator(opts.TokenEstimator)
	if !estimator.Known() {
		logger.Warnf("Unknown token estimator %q, counting with %s", estimator.Label(), entities.HeuristicEstimator)
	}
	indexOpts := entities.IndexOptions{
		PreviewChars: opts.PreviewChars,
		MaxDepth:     opts.MaxDepth,
		Estimator:    estimator,
	}
	if indexOpts.PreviewChars <= 0 {
		indexOpts.PreviewChars = entities.DefaultPreviewChars
	}
	if indexOpts.MaxDepth <= 0 {
		indexOpts.MaxDepth = entities.DefaultMaxDepth
	}

	artifacts, err := loadArtifacts(cfg.PagesDir(), opts.Limit)
	if err != nil {
		return result, err
	}

	rawBase := cfg.RawBase()
	for _, a := range artifacts {
		record, sections := entities.BuildSiteIndexRecord(a.Page, rawBase, a.Modified, indexOpts)
		result.Records = append(result.Records, record)
		if opts.Sections {
			result.Sections = append(result.Sections, sections...)
		}
	}

	if opts.DryRun {
		logger.Infof("[dry-run] ai_dir=%s", cfg.PagesDir())
		logger.Infof("[dry-run] pages=%d", len(result.Records))
		logger.Infof("[dry-run] would write: %s", cfg.SiteIndexPath())
		if opts.Sections {
			logger.Infof("[dry-run] would write: %s (lines=%d)", cfg.SectionsPath(), len(result.Sections))
		}
		return result, nil
	}

	data, err := marshalJSON(result.Records)
	if err != nil {
		return result, err
	}
	if writeErr := writeArtifact(cfg.SiteIndexPath(), data); writeErr != nil {
		return result, writeErr
	}
	logger.Infof("site-index.json written: %s (pages=%d)", cfg.SiteIndexPath(), len(result.Records))

	if opts.Sections {
		lines, marshalErr := marshalJSONLines(result.Sections)
		if marshalErr != nil {
			return result, marshalErr
		}
		if writeErr := writeArtifact(cfg.SectionsPath(), lines); writeErr != nil {
			return result, writeErr
		}
		logger.Infof("llms-full.jsonl written: %s (lines=%d)", cfg.SectionsPath(), len(result.Sections))
	}
	logger.Infof("raw base: %s", rawBase)
	return result, nil
}
