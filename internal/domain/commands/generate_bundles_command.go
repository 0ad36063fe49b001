package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// GenerateBundles is the interface for the generate-bundles command.
type GenerateBundles interface {
	Execute(ctx context.Context, cfg *entities.PipelineConfig, opts GenerateBundlesOptions) ([]entities.Bundle, error)
}

// GenerateBundlesOptions holds runtime options for category bundling.
type GenerateBundlesOptions struct {
	Format         string
	DryRun         bool
	Limit          int
	TokenEstimator string
}

// GenerateBundlesCommand concatenates page artifacts per configured category.
type GenerateBundlesCommand struct{}

// NewGenerateBundlesCommand creates a new GenerateBundlesCommand.
func NewGenerateBundlesCommand() *GenerateBundlesCommand {
	return &GenerateBundlesCommand{}
}

// Execute writes one bundle per content.categories_order entry. Without any ordered
// category nothing is written and no error is returned.
func (it *GenerateBundlesCommand) Execute(
	_ context.Context,
	cfg *entities.PipelineConfig,
	opts GenerateBundlesOptions,
) ([]entities.Bundle, error) {
	formats, err := entities.BundleFormats(opts.Format)
	if err != nil {
		return nil, err
	}
	if len(cfg.Content.CategoriesOrder) == 0 {
		logger.Warn(entities.ErrNoCategories.Error())
		return nil, nil
	}

	estimator := entities.NewTokenEstimator(opts.TokenEstimator)
	artifacts, err := loadArtifacts(cfg.PagesDir(), opts.Limit)
	if err != nil {
		return nil, err
	}

	bundles := entities.BuildBundles(cfg.Content.CategoriesOrder, cfg.Content.BaseContextCategories, artifactPages(artifacts))
	rawBase := cfg.RawBase()
	outDir := cfg.CategoriesDir()

	for _, bundle := range bundles {
		if opts.DryRun {
			logger.Infof("[dry-run] bundle %s (%d pages, includes base: %t)", bundle.Category, len(bundle.Pages), bundle.IncludesBase)
			continue
		}
		for _, format := range formats {
			if writeErr := writeBundle(outDir, bundle, format, rawBase, estimator); writeErr != nil {
				return bundles, writeErr
			}
		}
	}

	if opts.DryRun {
		logger.Infof("[dry-run] token_estimator=%s output_dir=%s", estimator.Label(), outDir)
		logger.Info("[dry-run] No files were written.")
	} else {
		logger.Infof("Category bundles written to: %s", outDir)
	}
	return bundles, nil
}

func writeBundle(outDir string, bundle entities.Bundle, format, rawBase string, estimator entities.TokenEstimator) error {
	base := filepath.Join(outDir, bundle.Slug)
	switch format {
	case entities.BundleFormatMarkdown:
		return writeArtifact(base+".md", []byte(bundle.RenderMarkdown(rawBase)))
	case entities.BundleFormatJSON:
		data, err := marshalJSON(bundle.Manifest(rawBase, estimator))
		if err != nil {
			return err
		}
		return writeArtifact(base+".manifest.json", data)
	case entities.BundleFormatJSONL:
		data, err := marshalJSONLines(bundle.Records(rawBase, estimator))
		if err != nil {
			return err
		}
		return writeArtifact(base+".bundle.jsonl", data)
	default:
		return fmt.Errorf("%w: %q", entities.ErrUnknownBundleFormat, format)
	}
}
