package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/memo/internal/core/domain"
)

func TestNormalizeSharingPolicy(t *testing.T) {
	assert.Equal(t, domain.SharingPolicyShared, domain.NormalizeSharingPolicy("shared"))
	assert.Equal(t, domain.SharingPolicyShared, domain.NormalizeSharingPolicy("Shared"))
	assert.Equal(t, domain.SharingPolicyIsolated, domain.NormalizeSharingPolicy("isolated"))
	// Unknown input falls back to isolated: no incidental pooling.
	assert.Equal(t, domain.SharingPolicyIsolated, domain.NormalizeSharingPolicy("bogus"))
}

func TestSharingPolicy_Valid(t *testing.T) {
	assert.True(t, domain.SharingPolicyShared.Valid())
	assert.True(t, domain.SharingPolicyIsolated.Valid())
	assert.False(t, domain.SharingPolicy("pooled").Valid())
}

func TestFingerprintPaths_OrderSensitive(t *testing.T) {
	a := domain.FingerprintPaths([]string{"/a/x.cs", "/a/y.cs"})
	b := domain.FingerprintPaths([]string{"/a/y.cs", "/a/x.cs"})

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, domain.FingerprintPaths([]string{"/a/x.cs", "/a/y.cs"}))
}

func TestFingerprintPaths_SeparatorAmbiguity(t *testing.T) {
	// "ab"+"c" and "a"+"bc" must not collide.
	assert.NotEqual(t,
		domain.FingerprintPaths([]string{"ab", "c"}),
		domain.FingerprintPaths([]string{"a", "bc"}))
}

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("/proj/app.csproj")
	b := domain.NewInternedString("/proj/app.csproj")
	c := domain.NewInternedString("/proj/other.csproj")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "/proj/app.csproj", a.String())
	assert.Equal(t, a.Value(), b.Value())
}
