package hcl_adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/gstrings/internal/config"
	"github.com/specialistvlad/gstrings/internal/ctxlog"
	"github.com/specialistvlad/gstrings/internal/fsutil"
)

const profileExt = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	// Environ supplies the variables exposed as "env". Defaults to os.Environ.
	Environ func() []string
}

// NewLoader creates a new HCL profile loader.
func NewLoader() *Loader {
	return &Loader{Environ: os.Environ}
}

var _ config.Loader = (*Loader)(nil)

// Load parses every profile found under paths and merges them in order. A
// directory contributes its .hcl files in lexical order. Missing paths are an
// error: a profile the user named explicitly must exist.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Profile, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL profile loader started.", "path_count", len(paths))

	files, err := l.findProfileFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered profile files.", "count", len(files))

	environ := os.Environ
	if l.Environ != nil {
		environ = l.Environ
	}
	evalCtx := newEvalContext(environ())
	parser := hclparse.NewParser()
	merged := &config.Profile{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to parse profile %s: %w", config.ErrInvalidConfig, file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: failed to decode profile %s: %w", config.ErrInvalidConfig, file, diags)
		}
		merged.Merge(translate(&root))
		logger.Debug("Profile applied.", "file", file)
	}

	return merged, nil
}

// findProfileFiles expands paths into a flat, de-duplicated list of files.
func (l *Loader) findProfileFiles(paths []string) ([]string, error) {
	var all []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			all = append(all, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot access profile %s: %w", config.ErrInvalidConfig, path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}
		found, err := fsutil.FindFilesByExtension(path, profileExt)
		if err != nil {
			return nil, fmt.Errorf("%w: cannot read profile directory %s: %w", config.ErrInvalidConfig, path, err)
		}
		for _, f := range found {
			add(filepath.Clean(f))
		}
	}
	return all, nil
}
