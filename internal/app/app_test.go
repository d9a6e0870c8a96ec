package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/memo/internal/app"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/memo/internal/core/ports/mocks"
	"go.trai.ch/memo/internal/engine/evaluation"
	_ "go.trai.ch/memo/internal/wiring"
	"go.uber.org/mock/gomock"
)

func TestComponents_GraphResolves(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}

func TestApp_ToolsetsGoThroughReaderPort(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockToolsetReader(ctrl)
	reader.EXPECT().ReadToolsets().
		Return(&domain.ToolsetTable{Default: "4.0", Toolsets: map[string]domain.Toolset{}}, nil).
		Times(1)

	var requested string
	application := app.New(mocks.NewMockLogger(ctrl), evaluation.NewTracker(nil), func(path string) ports.ToolsetReader {
		requested = path
		return reader
	})

	table, err := application.Toolsets("custom.yaml")
	require.NoError(t, err)
	assert.Equal(t, "custom.yaml", requested)
	assert.Equal(t, "4.0", table.Default)
}
