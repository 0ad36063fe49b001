//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/docsentinel/internal/domain/commands"
	"github.com/rios0rios0/docsentinel/internal/domain/entities"
	"github.com/rios0rios0/docsentinel/test/domain/commanddoubles"
)

type llmsPipeline struct {
	calls   []string
	pages   *commanddoubles.StubGeneratePagesCommand
	llmsTxt *commanddoubles.StubGenerateLLMSTxtCommand
	index   *commanddoubles.StubGenerateIndexCommand
	bundles *commanddoubles.StubGenerateBundlesCommand
}

func newLLMSPipeline() *llmsPipeline {
	p := &llmsPipeline{}
	p.pages = &commanddoubles.StubGeneratePagesCommand{Calls: &p.calls}
	p.llmsTxt = &commanddoubles.StubGenerateLLMSTxtCommand{Calls: &p.calls}
	p.index = &commanddoubles.StubGenerateIndexCommand{Calls: &p.calls}
	p.bundles = &commanddoubles.StubGenerateBundlesCommand{Calls: &p.calls}
	return p
}

func (p *llmsPipeline) command() *commands.GenerateLLMSCommand {
	return commands.NewGenerateLLMSCommand(p.pages, p.llmsTxt, p.index, p.bundles)
}

func TestGenerateLLMSCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should run every stage in order with shared options", func(t *testing.T) {
		t.Parallel()

		// given
		pipeline := newLLMSPipeline()
		cfg := &entities.PipelineConfig{}

		// when
		err := pipeline.command().Execute(context.Background(), cfg, commands.GenerateLLMSOptions{
			DryRun:         true,
			NoRemote:       true,
			TokenEstimator: entities.CL100KEstimator,
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"pages", "llms.txt", "index", "bundles"}, pipeline.calls)
		assert.Same(t, cfg, pipeline.pages.LastConfig)
		assert.True(t, pipeline.pages.LastOpts.DryRun)
		assert.True(t, pipeline.pages.LastOpts.NoRemote)
		assert.True(t, pipeline.llmsTxt.LastOpts.DryRun)
		assert.True(t, pipeline.index.LastOpts.Sections)
		assert.Equal(t, entities.CL100KEstimator, pipeline.index.LastOpts.TokenEstimator)
		assert.Equal(t, entities.BundleFormatMarkdown, pipeline.bundles.LastOpts.Format)
		assert.Equal(t, entities.CL100KEstimator, pipeline.bundles.LastOpts.TokenEstimator)
	})

	t.Run("should keep going after page failures and report them at the end", func(t *testing.T) {
		t.Parallel()

		// given
		pipeline := newLLMSPipeline()
		pageErr := errors.New("docs/broken.md: circular include")
		pipeline.pages.ExecuteErr = multierror.Append(nil, pageErr)

		// when
		err := pipeline.command().Execute(context.Background(), &entities.PipelineConfig{}, commands.GenerateLLMSOptions{})

		// then
		require.ErrorIs(t, err, pageErr)
		assert.Equal(t, []string{"pages", "llms.txt", "index", "bundles"}, pipeline.calls)
	})

	t.Run("should stop when a stage fails outright", func(t *testing.T) {
		t.Parallel()

		// given
		pipeline := newLLMSPipeline()
		stageErr := errors.New("disk full")
		pipeline.index.ExecuteErr = stageErr

		// when
		err := pipeline.command().Execute(context.Background(), &entities.PipelineConfig{}, commands.GenerateLLMSOptions{})

		// then
		require.ErrorIs(t, err, stageErr)
		assert.Equal(t, []string{"pages", "llms.txt", "index"}, pipeline.calls)
		assert.Zero(t, pipeline.bundles.ExecuteCallCount)
	})

	t.Run("should stop when pages fail for a reason other than a page", func(t *testing.T) {
		t.Parallel()

		// given
		pipeline := newLLMSPipeline()
		pipeline.pages.ExecuteErr = commands.ErrSlugCollision

		// when
		err := pipeline.command().Execute(context.Background(), &entities.PipelineConfig{}, commands.GenerateLLMSOptions{})

		// then
		require.ErrorIs(t, err, commands.ErrSlugCollision)
		assert.Equal(t, []string{"pages"}, pipeline.calls)
	})
}
