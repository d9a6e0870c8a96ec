package ports

import "go.trai.ch/memo/internal/core/domain"

// ToolsetReader reads persisted toolset definitions.
//
//go:generate go run go.uber.org/mock/mockgen -source=toolset_reader.go -destination=mocks/mock_toolset_reader.go -package=mocks
type ToolsetReader interface {
	// ReadToolsets returns the toolset table together with the optional
	// engine-wide override settings. Entries lacking a tools path are
	// dropped from the table without error.
	ReadToolsets() (*domain.ToolsetTable, error)
}
