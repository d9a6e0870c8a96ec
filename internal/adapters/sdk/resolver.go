// Package sdk implements SDK resolution from on-disk SDK layouts.
package sdk

import (
	"path/filepath"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/memo/internal/core/domain"
	"go.trai.ch/memo/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SdkResolver = (*DirectoryResolver)(nil)

// DirectoryResolver resolves SDKs from a list of search roots laid out as
// <root>/<name>/<version>. Roots are searched in order; the first root that
// knows the SDK wins.
type DirectoryResolver struct {
	fs    ports.FileSystem
	roots []string
}

// NewDirectoryResolver creates a DirectoryResolver over the given search roots.
func NewDirectoryResolver(fs ports.FileSystem, roots []string) *DirectoryResolver {
	return &DirectoryResolver{fs: fs, roots: roots}
}

// Resolve locates the SDK identified by name and version. When version is
// empty the highest version present under the first root that carries the
// SDK is chosen.
func (r *DirectoryResolver) Resolve(name, version string) (*domain.SdkResult, error) {
	for _, root := range r.roots {
		base := filepath.Join(root, name)

		if version != "" {
			dir := filepath.Join(base, version)
			if r.fs.Exists(dir) {
				return &domain.SdkResult{Path: domain.NormalizePath(dir), Version: version}, nil
			}
			continue
		}

		picked := r.pickHighest(base)
		if picked != "" {
			return &domain.SdkResult{
				Path:    domain.NormalizePath(filepath.Join(base, picked)),
				Version: picked,
			}, nil
		}
	}

	return nil, zerr.With(zerr.With(domain.ErrSdkNotFound, "name", name), "version", version)
}

// pickHighest returns the highest version directory under base, or "" when
// base is missing or empty. Version directories are ordered as dotted
// versions with any number of segments; a directory whose name does not
// parse never beats one that does.
func (r *DirectoryResolver) pickHighest(base string) string {
	names, err := r.fs.DirectoryEntries(base)
	if err != nil {
		return ""
	}

	highest := ""
	var highestVersion *semver.Version
	for _, name := range names {
		version, err := semver.NewVersion(name)
		if err != nil {
			if highestVersion == nil && name > highest {
				highest = name
			}
			continue
		}
		if highestVersion == nil || version.GreaterThan(highestVersion) {
			highest = name
			highestVersion = version
		}
	}
	return highest
}
