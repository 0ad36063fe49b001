//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/docsentinel/internal/domain/entities"
)

func TestClassifyUpdate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  string
		latest   string
		expected entities.UpdateType
	}{
		{name: "should detect a major update", current: "v1.9.0", latest: "v2.0.0", expected: entities.UpdateMajor},
		{name: "should detect a minor update without v prefix", current: "0.40.0", latest: "0.41.0", expected: entities.UpdateMinor},
		{name: "should detect a patch update", current: "1.2.3", latest: "v1.2.4", expected: entities.UpdatePatch},
		{name: "should detect a downgrade", current: "1.2.3", latest: "1.2.0", expected: entities.UpdateDowngrade},
		{name: "should report unknown for non-semver tags", current: "polkadot-stable2503", latest: "polkadot-stable2506", expected: entities.UpdateUnknown},
		{name: "should report unknown for equal versions", current: "1.0.0", latest: "v1.0.0", expected: entities.UpdateUnknown},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// when
			result := entities.ClassifyUpdate(tt.current, tt.latest)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	t.Run("should add the v prefix once", func(t *testing.T) {
		t.Parallel()

		// when
		withPrefix := entities.NormalizeVersion("v1.0.0")
		withoutPrefix := entities.NormalizeVersion(" 1.0.0 ")

		// then
		assert.Equal(t, "v1.0.0", withPrefix)
		assert.Equal(t, "v1.0.0", withoutPrefix)
	})
}
