package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// UpdateType classifies a version transition.
type UpdateType string

const (
	UpdateMajor     UpdateType = "major"
	UpdateMinor     UpdateType = "minor"
	UpdatePatch     UpdateType = "patch"
	UpdateDowngrade UpdateType = "downgrade"
	UpdateUnknown   UpdateType = "unknown"
)

// ClassifyUpdate compares two versions semantically. Outdatedness itself is decided by
// plain string inequality; this is only used to annotate issues.
func ClassifyUpdate(currentVersion, latestVersion string) UpdateType {
	current := normalizeVersion(currentVersion)
	latest := normalizeVersion(latestVersion)

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return UpdateUnknown
	}

	switch cmp := semver.Compare(latest, current); {
	case cmp < 0:
		return UpdateDowngrade
	case cmp == 0:
		return UpdateUnknown
	}

	if semver.Major(latest) != semver.Major(current) {
		return UpdateMajor
	}
	if semver.MajorMinor(latest) != semver.MajorMinor(current) {
		return UpdateMinor
	}
	return UpdatePatch
}

// normalizeVersion ensures version has a 'v' prefix for semver compatibility.
// Tags such as "polkadot-stable2503" stay invalid and classify as unknown.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
