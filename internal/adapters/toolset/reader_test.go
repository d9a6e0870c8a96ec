package toolset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/adapters/toolset"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeDefinitions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "toolsets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func quietLogger(t *testing.T) *mocks.MockLogger {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestFileReader_ReadToolsets(t *testing.T) {
	path := writeDefinitions(t, `
default: "4.0"
overrideTasksPath: /opt/tasks
defaultOverrideToolsVersion: "4.0"
toolsets:
  "4.0":
    toolsPath: /opt/tools/4.0
    FrameworkDir: /opt/framework
    "11.0":
      FrameworkDir: /opt/framework11
`)

	reader := toolset.NewFileReader(path, quietLogger(t))
	table, err := reader.ReadToolsets()
	require.NoError(t, err)

	assert.Equal(t, "4.0", table.Default)
	assert.Equal(t, "/opt/tasks", table.OverrideTasksPath)
	assert.Equal(t, "4.0", table.DefaultOverrideToolsVersion)

	ts, ok := table.Toolsets["4.0"]
	require.True(t, ok)
	assert.Equal(t, "/opt/tools/4.0", ts.ToolsPath)
	assert.Equal(t, "/opt/framework", ts.Properties["FrameworkDir"])

	st, ok := ts.SubToolsets["11.0"]
	require.True(t, ok)
	assert.Equal(t, "/opt/framework11", st.Properties["FrameworkDir"])
}

func TestFileReader_MalformedToolsPath(t *testing.T) {
	path := writeDefinitions(t, `
toolsets:
  "4.0":
    toolsPath: 42
`)

	reader := toolset.NewFileReader(path, quietLogger(t))
	_, err := reader.ReadToolsets()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToolsetDefinition))
}

func TestFileReader_MalformedTopLevelSetting(t *testing.T) {
	path := writeDefinitions(t, `
overrideTasksPath: [a, b]
toolsets: {}
`)

	reader := toolset.NewFileReader(path, quietLogger(t))
	_, err := reader.ReadToolsets()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToolsetDefinition))
}

func TestFileReader_MalformedToolsetsValue(t *testing.T) {
	path := writeDefinitions(t, `
default: "4.0"
toolsets: not-a-mapping
`)

	reader := toolset.NewFileReader(path, quietLogger(t))
	_, err := reader.ReadToolsets()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidToolsetDefinition))
}

func TestFileReader_EmptyToolsetsValue(t *testing.T) {
	path := writeDefinitions(t, `
default: "4.0"
toolsets:
`)

	reader := toolset.NewFileReader(path, quietLogger(t))
	table, err := reader.ReadToolsets()
	require.NoError(t, err)
	assert.Empty(t, table.Toolsets)
}

func TestFileReader_DropsToolsetWithoutToolsPath(t *testing.T) {
	path := writeDefinitions(t, `
toolsets:
  "2.0":
    FrameworkDir: /opt/framework
  "4.0":
    toolsPath: /opt/tools/4.0
`)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	reader := toolset.NewFileReader(path, log)
	table, err := reader.ReadToolsets()
	require.NoError(t, err)

	// The broken entry is dropped; the healthy one survives.
	assert.NotContains(t, table.Toolsets, "2.0")
	assert.Contains(t, table.Toolsets, "4.0")
}

func TestFileReader_DeeperNestingIgnored(t *testing.T) {
	path := writeDefinitions(t, `
toolsets:
  "4.0":
    toolsPath: /opt/tools/4.0
    "11.0":
      FrameworkDir: /opt/framework11
      deeper:
        ignored: value
`)

	reader := toolset.NewFileReader(path, quietLogger(t))
	table, err := reader.ReadToolsets()
	require.NoError(t, err)

	st := table.Toolsets["4.0"].SubToolsets["11.0"]
	assert.Equal(t, "/opt/framework11", st.Properties["FrameworkDir"])
	assert.NotContains(t, st.Properties, "deeper")
	assert.NotContains(t, st.Properties, "ignored")
}

func TestFileReader_UnrecognizedValuesIgnored(t *testing.T) {
	path := writeDefinitions(t, `
someUnknownSetting: 17
toolsets:
  "4.0":
    toolsPath: /opt/tools/4.0
    retries: 3
`)

	reader := toolset.NewFileReader(path, quietLogger(t))
	table, err := reader.ReadToolsets()
	require.NoError(t, err)

	ts := table.Toolsets["4.0"]
	assert.NotContains(t, ts.Properties, "retries")
}

func TestFileReader_MissingFile(t *testing.T) {
	reader := toolset.NewFileReader(filepath.Join(t.TempDir(), "nope.yaml"), quietLogger(t))
	_, err := reader.ReadToolsets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read toolset definitions")
}
