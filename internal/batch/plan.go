// Package batch converts a set of raw PCM exports into WAV files that sit
// next to their sources.
//
// A Plan is built either from an explicit list of source names or from a
// glob over a directory. Running it hands each job to an audio.Writer with
// bounded concurrency and reports one Result per job, in plan order.
package batch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

const defaultExt = ".wav"

type Job struct {
	Source string
	Dest   string
}

type PlanOptions struct {
	Dir     string
	Sources []string // names relative to Dir, or absolute paths
	Pattern string   // glob within Dir, used when Sources is empty
	Suffix  string
}

// OutputName inserts suffix before the extension of name.
// "take.wav" becomes "take_fixed.wav"; a name without an extension gets ".wav".
func OutputName(name, suffix string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return name + suffix + defaultExt
	}
	return strings.TrimSuffix(name, ext) + suffix + ext
}

// Plan resolves opts into jobs. Listed sources are kept even when they do
// not exist; Run decides how to treat them. Two sources that map to the
// same output are an error.
func Plan(fsys afero.Fs, opts PlanOptions) ([]Job, error) {
	if opts.Suffix == "" {
		return nil, fmt.Errorf("output suffix is required")
	}

	names := opts.Sources
	if len(names) == 0 {
		scanned, err := scan(fsys, opts)
		if err != nil {
			return nil, err
		}
		names = scanned
	}

	jobs := make([]Job, 0, len(names))
	seen := make(map[string]bool, len(names))
	dests := make(map[string]string, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		src := name
		if !filepath.IsAbs(src) {
			src = filepath.Join(opts.Dir, src)
		}
		if seen[src] {
			continue
		}
		seen[src] = true

		dest := OutputName(src, opts.Suffix)
		if other, ok := dests[dest]; ok {
			return nil, fmt.Errorf("sources %s and %s both write %s", other, src, dest)
		}
		dests[dest] = src
		jobs = append(jobs, Job{Source: src, Dest: dest})
	}
	return jobs, nil
}

func scan(fsys afero.Fs, opts PlanOptions) ([]string, error) {
	pattern := opts.Pattern
	if pattern == "" {
		pattern = "*" + defaultExt
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	entries, err := afero.ReadDir(fsys, opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", opts.Dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if ok, _ := filepath.Match(pattern, name); !ok {
			continue
		}
		// Skip outputs of an earlier run.
		if strings.HasSuffix(strings.TrimSuffix(name, filepath.Ext(name)), opts.Suffix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
