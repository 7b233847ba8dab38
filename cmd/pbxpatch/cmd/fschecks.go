// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oneconcern/pbxpatch/pkg/storage"
)

const projectFileName = "project.pbxproj"

// resolveProject maps the --project flag to an actual project.pbxproj path.
// A directory (typically the .xcodeproj bundle) resolves to the
// project.pbxproj inside it.
func resolveProject(ctx context.Context, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no project file given (see the --project flag)")
	}
	isDir, err := projectStore.IsDir(ctx, path)
	if err != nil {
		return "", err
	}
	if isDir || strings.HasSuffix(path, ".xcodeproj") {
		path = filepath.Join(path, projectFileName)
	}
	has, err := projectStore.Has(ctx, path)
	if err != nil {
		return "", err
	}
	if !has {
		return "", fmt.Errorf("%q: %w", path, storage.ErrNotExists)
	}
	return path, nil
}
