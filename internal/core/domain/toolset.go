package domain

import (
	"strconv"
	"strings"
)

// PropertyVisualStudioVersion is the global property consulted first when
// generating a sub-toolset version.
const PropertyVisualStudioVersion = "VisualStudioVersion"

// SubToolset is a named property overlay layered on top of a base toolset.
type SubToolset struct {
	Version    string
	Properties map[string]string
}

// Toolset is a base property set plus zero or more named sub-toolset overlays.
type Toolset struct {
	Version     string
	ToolsPath   string
	Properties  map[string]string
	SubToolsets map[string]SubToolset

	// AmbientVersion stands in for the process-wide VisualStudioVersion
	// setting. It is captured explicitly at construction instead of being
	// read from the environment at lookup time.
	AmbientVersion string
}

// ToolsetTable is the result of reading a set of toolset definitions.
type ToolsetTable struct {
	Toolsets map[string]Toolset
	// Default names the toolset version to use when the caller does not pick
	// one. Empty when the definitions declare no default.
	Default string
	// OverrideTasksPath and DefaultOverrideToolsVersion are optional
	// engine-wide settings carried alongside the toolset table.
	OverrideTasksPath           string
	DefaultOverrideToolsVersion string
}

// GetProperty returns the property under name, preferring the sub-toolset
// overlay selected by subToolsetVersion over the base set. An overlay value
// wins even when it is explicitly empty. The second return reports whether
// the property exists at all.
func (t *Toolset) GetProperty(name, subToolsetVersion string) (string, bool) {
	if st, ok := t.SubToolsets[subToolsetVersion]; ok {
		if v, ok := st.Properties[name]; ok {
			return v, true
		}
	}
	v, ok := t.Properties[name]
	return v, ok
}

// GenerateSubToolsetVersion picks the sub-toolset version to evaluate with.
// Precedence, highest first: an explicitly supplied VisualStudioVersion
// global property, the ambient version captured at construction, the
// solution-declared version minus one when a matching sub-toolset exists,
// and finally the numerically highest known sub-toolset version.
// solutionVersion is zero when no solution declared one. Returns the empty
// string when nothing applies.
func (t *Toolset) GenerateSubToolsetVersion(globalProperties map[string]string, solutionVersion int) string {
	if v, ok := globalProperties[PropertyVisualStudioVersion]; ok && v != "" {
		return v
	}
	if t.AmbientVersion != "" {
		return t.AmbientVersion
	}
	if solutionVersion > 0 {
		want := strconv.Itoa(solutionVersion-1) + ".0"
		if _, ok := t.SubToolsets[want]; ok {
			return want
		}
		if _, ok := t.SubToolsets["v"+want]; ok {
			return "v" + want
		}
	}
	return t.DefaultSubToolsetVersion()
}

// DefaultSubToolsetVersion returns the highest known sub-toolset version
// name, or the empty string when no sub-toolsets exist. Names are ordered
// numerically where they parse as versions; names that do not parse sort
// below every parsable one.
func (t *Toolset) DefaultSubToolsetVersion() string {
	highest := ""
	for name := range t.SubToolsets {
		if highest == "" || CompareVersionNames(name, highest) > 0 {
			highest = name
		}
	}
	return highest
}

// CompareVersionNames orders toolset-style version names. Versions compare
// numerically by major then minor; a "v" or "V" prefix is ignored.
// Unparsable names rank below parsable ones and order lexically among
// themselves.
func CompareVersionNames(a, b string) int {
	aMaj, aMin, aOK := parseToolsetVersion(a)
	bMaj, bMin, bOK := parseToolsetVersion(b)

	switch {
	case aOK && !bOK:
		return 1
	case !aOK && bOK:
		return -1
	case !aOK && !bOK:
		return strings.Compare(a, b)
	}

	if aMaj != bMaj {
		return aMaj - bMaj
	}
	if aMin != bMin {
		return aMin - bMin
	}
	return strings.Compare(a, b)
}

func parseToolsetVersion(name string) (major, minor int, ok bool) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(name, "v"), "V")
	majorPart, minorPart, found := strings.Cut(trimmed, ".")

	major, err := strconv.Atoi(majorPart)
	if err != nil {
		return 0, 0, false
	}
	if !found {
		return major, 0, true
	}
	minor, err = strconv.Atoi(minorPart)
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}
