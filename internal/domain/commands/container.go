package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []any{
		NewCheckDependenciesCommand,
		NewCheckSnippetsCommand,
		NewCreateIssuesCommand,
		NewGeneratePagesCommand,
		NewGenerateLLMSTxtCommand,
		NewGenerateIndexCommand,
		NewGenerateBundlesCommand,
		NewGenerateLLMSCommand,
		NewNormalizeSnippetsCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *CheckDependenciesCommand) CheckDependencies { return impl },
		func(impl *CheckSnippetsCommand) CheckSnippets { return impl },
		func(impl *CreateIssuesCommand) CreateIssues { return impl },
		func(impl *GeneratePagesCommand) GeneratePages { return impl },
		func(impl *GenerateLLMSTxtCommand) GenerateLLMSTxt { return impl },
		func(impl *GenerateIndexCommand) GenerateIndex { return impl },
		func(impl *GenerateBundlesCommand) GenerateBundles { return impl },
		func(impl *GenerateLLMSCommand) GenerateLLMS { return impl },
		func(impl *NormalizeSnippetsCommand) NormalizeSnippets { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
