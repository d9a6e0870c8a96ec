package evaluation_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.trai.ch/memo/internal/engine/evaluation"
	"go.uber.org/mock/gomock"
)

func TestNew_FileSystemOverrideRequiresSharedPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	fsys := mocks.NewMockFileSystem(ctrl)

	_, err := evaluation.New(domain.SharingPolicyIsolated, evaluation.WithFileSystem(fsys))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrFileSystemNotShared))

	_, err = evaluation.New(domain.SharingPolicyShared, evaluation.WithFileSystem(fsys))
	require.NoError(t, err)
}

func TestNew_UnknownPolicy(t *testing.T) {
	_, err := evaluation.New(domain.SharingPolicy("pooled"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownSharingPolicy))
}

func TestContextForNewProject_SharedIsIdentityPreserving(t *testing.T) {
	shared, err := evaluation.New(domain.SharingPolicyShared)
	require.NoError(t, err)

	for range 3 {
		assert.Same(t, shared, shared.ContextForNewProject())
	}
}

func TestContextForNewProject_IsolatedIsPairwiseDistinct(t *testing.T) {
	isolated, err := evaluation.New(domain.SharingPolicyIsolated)
	require.NoError(t, err)

	first := isolated.ContextForNewProject()
	second := isolated.ContextForNewProject()

	assert.NotSame(t, isolated, first)
	assert.NotSame(t, isolated, second)
	assert.NotSame(t, first, second)

	// Policy carries over; caches do not.
	assert.Equal(t, domain.SharingPolicyIsolated, first.Policy())
	assert.NotSame(t, isolated.Existence(), first.Existence())
	assert.NotSame(t, isolated.Globs(), first.Globs())
	assert.NotSame(t, isolated.Sdks(), first.Sdks())
}

func TestContextForNewProject_SharedPoolsCaches(t *testing.T) {
	shared, err := evaluation.New(domain.SharingPolicyShared)
	require.NoError(t, err)

	next := shared.ContextForNewProject()
	assert.Same(t, shared.Existence(), next.Existence())
	assert.Same(t, shared.Globs(), next.Globs())
	assert.Same(t, shared.Sdks(), next.Sdks())
}

func TestIsolatedContext_StaleWithinLifetimeFreshAcrossContexts(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "added-later.txt")

	first, err := evaluation.New(domain.SharingPolicyIsolated)
	require.NoError(t, err)

	assert.False(t, first.Existence().Exists(file))

	require.NoError(t, os.WriteFile(file, []byte("content"), 0o600))

	// Memoized answer survives the disk change.
	assert.False(t, first.Existence().Exists(file))

	// Only a fresh context observes fresh state.
	second := first.ContextForNewProject()
	assert.True(t, second.Existence().Exists(file))
}
