package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PolarWolf314/affine/internal/cipher"
	kerrors "github.com/PolarWolf314/affine/internal/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// AnalyzeOptions configures the frequency analysis workflow.
type AnalyzeOptions struct {
	// Text is analyzed when no patterns are given.
	Text string

	// Patterns are file paths or doublestar globs ("texts/**/*.txt").
	// Relative patterns are resolved against BaseDir.
	Patterns []string

	// BaseDir defaults to the working directory.
	BaseDir string
}

// AnalyzeResult contains the outcome of a frequency analysis.
type AnalyzeResult struct {
	Frequency cipher.Frequency `json:"frequency"`

	// Files lists the files that were read, in the order they were read.
	Files []string `json:"files,omitempty"`
}

// Analyze counts letter frequencies of opts.Text or, when patterns are
// given, of the concatenated contents of every matching file.
//
// Returns ErrNoFilesFound if the patterns match no regular file.
func Analyze(ctx context.Context, opts AnalyzeOptions) (*AnalyzeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(opts.Patterns) == 0 {
		return &AnalyzeResult{Frequency: cipher.FrequencyAnalysis(opts.Text)}, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		baseDir = wd
	}

	files, err := ResolveFiles(opts.Patterns, baseDir)
	if err != nil {
		return nil, err
	}

	var sb strings.Builder
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f, err)
		}
		sb.Write(data)
		sb.WriteByte('\n')
	}

	return &AnalyzeResult{
		Frequency: cipher.FrequencyAnalysis(sb.String()),
		Files:     files,
	}, nil
}

// ResolveFiles expands paths and globs into a deduplicated list of regular
// files. Directories are walked recursively.
func ResolveFiles(patterns []string, baseDir string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		resolved, err := resolvePattern(pattern, baseDir)
		if err != nil {
			return nil, err
		}
		for _, f := range resolved {
			if !seen[f] {
				seen[f] = true
				files = append(files, f)
			}
		}
	}

	if len(files) == 0 {
		return nil, kerrors.ErrNoFilesFound
	}
	return files, nil
}

func resolvePattern(pattern, baseDir string) ([]string, error) {
	absPattern := pattern
	if !filepath.IsAbs(pattern) {
		absPattern = filepath.Join(baseDir, pattern)
	}

	info, err := os.Stat(absPattern)
	if err == nil && info.IsDir() {
		return expandGlob(filepath.Join(absPattern, "**", "*"))
	}

	if strings.ContainsAny(pattern, "*?[{") {
		return expandGlob(absPattern)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %s", kerrors.ErrNoFilesFound, pattern)
	}
	return []string{absPattern}, nil
}

func expandGlob(absPattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(absPattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %s: %w", absPattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
