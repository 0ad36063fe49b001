package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []any{
		NewCheckDependenciesController,
		NewCheckSnippetsController,
		NewCreateIssuesController,
		NewGeneratePagesController,
		NewGenerateLLMSTxtController,
		NewGenerateIndexController,
		NewGenerateBundlesController,
		NewGenerateLLMSController,
		NewNormalizeSnippetsController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal,
// in the order the subcommands are listed.
func NewControllers(
	checkDependencies *CheckDependenciesController,
	checkSnippets *CheckSnippetsController,
	createIssues *CreateIssuesController,
	generatePages *GeneratePagesController,
	generateLLMSTxt *GenerateLLMSTxtController,
	generateIndex *GenerateIndexController,
	generateBundles *GenerateBundlesController,
	generateLLMS *GenerateLLMSController,
	normalizeSnippets *NormalizeSnippetsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		checkDependencies,
		checkSnippets,
		createIssues,
		generatePages,
		generateLLMSTxt,
		generateIndex,
		generateBundles,
		generateLLMS,
		normalizeSnippets,
	}
}
