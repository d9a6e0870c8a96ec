// Package toolset provides the file-based toolset definition reader.
package toolset

import (
	"os"

	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Recognized top-level and per-toolset setting names. Values under these
// names must be strings; anything else is a definition error. Unrecognized
// scalar names at the top level are ignored.
const (
	settingDefault                     = "default"
	settingOverrideTasksPath           = "overrideTasksPath"
	settingDefaultOverrideToolsVersion = "defaultOverrideToolsVersion"
	settingToolsPath                   = "toolsPath"
	settingAmbientVersion              = "ambientVersion"
	settingToolsets                    = "toolsets"
)

var _ ports.ToolsetReader = (*FileReader)(nil)

// FileReader implements ports.ToolsetReader over a YAML definition file.
type FileReader struct {
	path   string
	logger ports.Logger
}

// NewFileReader creates a FileReader for the definition file at path.
func NewFileReader(path string, logger ports.Logger) *FileReader {
	return &FileReader{path: path, logger: logger}
}

// ReadToolsets reads the definition file and returns the toolset table.
// Toolsets lacking a tools path are dropped from the result without error;
// a recognized setting with a non-string value is a definition error.
func (r *FileReader) ReadToolsets() (*domain.ToolsetTable, error) {
	data, err := os.ReadFile(r.path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read toolset definitions")
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, zerr.Wrap(err, "failed to parse toolset definitions")
	}

	table := &domain.ToolsetTable{Toolsets: make(map[string]domain.Toolset)}

	if table.Default, err = r.stringSetting(doc, settingDefault); err != nil {
		return nil, err
	}
	if table.OverrideTasksPath, err = r.stringSetting(doc, settingOverrideTasksPath); err != nil {
		return nil, err
	}
	if table.DefaultOverrideToolsVersion, err = r.stringSetting(doc, settingDefaultOverrideToolsVersion); err != nil {
		return nil, err
	}

	rawValue, present := doc[settingToolsets]
	rawToolsets, ok := rawValue.(map[string]any)
	if present && rawValue != nil && !ok {
		return nil, zerr.With(zerr.With(domain.ErrInvalidToolsetDefinition,
			"setting", settingToolsets),
			"reason", "value is not a mapping")
	}
	for version, raw := range rawToolsets {
		node, ok := raw.(map[string]any)
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrInvalidToolsetDefinition,
				"toolset", version),
				"reason", "toolset entry is not a mapping")
		}

		ts, err := r.readToolset(version, node)
		if err != nil {
			return nil, err
		}
		if ts.ToolsPath == "" {
			// An entry without a tools path is useless for evaluation; drop it.
			r.logger.Warn("dropping toolset without tools path: " + version)
			continue
		}
		table.Toolsets[version] = ts
	}

	return table, nil
}

// readToolset converts one toolset node. Scalar string entries become
// properties (toolsPath and ambientVersion are extracted as settings),
// mapping entries one level deep become named sub-toolsets, and anything
// nested deeper is ignored.
func (r *FileReader) readToolset(version string, node map[string]any) (domain.Toolset, error) {
	ts := domain.Toolset{
		Version:     version,
		Properties:  make(map[string]string),
		SubToolsets: make(map[string]domain.SubToolset),
	}

	for name, value := range node {
		switch v := value.(type) {
		case string:
			switch name {
			case settingToolsPath:
				ts.ToolsPath = v
			case settingAmbientVersion:
				ts.AmbientVersion = v
			default:
				ts.Properties[name] = v
			}
		case map[string]any:
			ts.SubToolsets[name] = readSubToolset(name, v)
		default:
			if name == settingToolsPath || name == settingAmbientVersion {
				return domain.Toolset{}, zerr.With(zerr.With(zerr.With(domain.ErrInvalidToolsetDefinition,
					"toolset", version),
					"setting", name),
					"reason", "value is not a string")
			}
			// Unrecognized non-string values are ignored.
		}
	}

	return ts, nil
}

// readSubToolset converts a nested mapping into a sub-toolset overlay.
// Only string values are carried; deeper nesting is ignored.
func readSubToolset(version string, node map[string]any) domain.SubToolset {
	st := domain.SubToolset{
		Version:    version,
		Properties: make(map[string]string),
	}
	for name, value := range node {
		if v, ok := value.(string); ok {
			st.Properties[name] = v
		}
	}
	return st
}

// stringSetting extracts a recognized top-level string setting, erroring on
// a value of the wrong kind and returning "" when absent.
func (r *FileReader) stringSetting(doc map[string]any, name string) (string, error) {
	raw, ok := doc[name]
	if !ok {
		return "", nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", zerr.With(zerr.With(domain.ErrInvalidToolsetDefinition,
			"setting", name),
			"reason", "value is not a string")
	}
	return s, nil
}
