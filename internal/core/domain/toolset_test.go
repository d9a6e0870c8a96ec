package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/memo/internal/core/domain"
)

func exampleToolset() *domain.Toolset {
	return &domain.Toolset{
		Version: "4.0",
		Properties: map[string]string{
			"a": "a1",
			"b": "b1",
		},
		SubToolsets: map[string]domain.SubToolset{
			"v11.0": {
				Version: "v11.0",
				Properties: map[string]string{
					"b": "b2",
					"c": "c2",
				},
			},
		},
	}
}

func TestToolset_GetProperty(t *testing.T) {
	ts := exampleToolset()

	v, ok := ts.GetProperty("a", "v11.0")
	assert.True(t, ok)
	assert.Equal(t, "a1", v)

	v, ok = ts.GetProperty("b", "v11.0")
	assert.True(t, ok)
	assert.Equal(t, "b2", v)

	v, ok = ts.GetProperty("c", "v11.0")
	assert.True(t, ok)
	assert.Equal(t, "c2", v)

	_, ok = ts.GetProperty("d", "v11.0")
	assert.False(t, ok)
}

func TestToolset_GetProperty_EmptyOverlayWins(t *testing.T) {
	ts := exampleToolset()
	ts.SubToolsets["v11.0"].Properties["a"] = ""

	v, ok := ts.GetProperty("a", "v11.0")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestToolset_GetProperty_UnknownSubToolsetFallsBack(t *testing.T) {
	ts := exampleToolset()

	v, ok := ts.GetProperty("b", "v99.0")
	assert.True(t, ok)
	assert.Equal(t, "b1", v)
}

func TestGenerateSubToolsetVersion_ExplicitPropertyWins(t *testing.T) {
	ts := exampleToolset()
	ts.AmbientVersion = "10.0"

	got := ts.GenerateSubToolsetVersion(map[string]string{
		domain.PropertyVisualStudioVersion: "12.0",
	}, 12)
	assert.Equal(t, "12.0", got)
}

func TestGenerateSubToolsetVersion_AmbientSecond(t *testing.T) {
	ts := exampleToolset()
	ts.AmbientVersion = "10.0"

	got := ts.GenerateSubToolsetVersion(nil, 12)
	assert.Equal(t, "10.0", got)
}

func TestGenerateSubToolsetVersion_SolutionVersionMinusOne(t *testing.T) {
	ts := exampleToolset()

	// Solution declares 12, so 11.0 is wanted; only "v11.0" exists.
	got := ts.GenerateSubToolsetVersion(nil, 12)
	assert.Equal(t, "v11.0", got)
}

func TestGenerateSubToolsetVersion_DefaultIsNumericallyHighest(t *testing.T) {
	ts := &domain.Toolset{
		SubToolsets: map[string]domain.SubToolset{
			"v11.0":          {Version: "v11.0"},
			"12.0":           {Version: "12.0"},
			"v13.0":          {Version: "v13.0"},
			"FakeSubToolset": {Version: "FakeSubToolset"},
		},
	}

	got := ts.GenerateSubToolsetVersion(nil, 0)
	assert.Equal(t, "v13.0", got)
}

func TestGenerateSubToolsetVersion_NothingApplies(t *testing.T) {
	ts := &domain.Toolset{}

	assert.Empty(t, ts.GenerateSubToolsetVersion(nil, 0))
}

func TestCompareVersionNames(t *testing.T) {
	assert.Positive(t, domain.CompareVersionNames("10.0", "2.0"))
	assert.Positive(t, domain.CompareVersionNames("v13.0", "12.0"))
	assert.Negative(t, domain.CompareVersionNames("FakeSubToolset", "2.0"))
	assert.Zero(t, domain.CompareVersionNames("11.0", "11.0"))
	assert.Positive(t, domain.CompareVersionNames("2.1", "2.0"))
}
