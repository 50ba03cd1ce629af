package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/provide-io/iconmaker/pkg/iconset"
	"gopkg.in/yaml.v3"
)

// Job is one generation request in a batch file.
type Job struct {
	Source   string `yaml:"source"`
	Output   string `yaml:"output"`
	Platform string `yaml:"platform"`
	Filter   string `yaml:"filter"`
}

// Batch is the top-level batch file.
type Batch struct {
	Defaults Job   `yaml:"defaults"`
	Jobs     []Job `yaml:"jobs"`

	dir string
}

// ResolvedJob is a Job with defaults applied and paths made absolute
// relative to the batch file.
type ResolvedJob struct {
	Source   string
	Output   string
	Platform iconset.Platform
	Filter   string
}

// LoadBatch reads and parses the batch file
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	b.dir = filepath.Dir(path)

	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("invalid batch file: %w", err)
	}

	return &b, nil
}

// Validate checks that every job resolves to a source, a platform and a
// known filter.
func (b *Batch) Validate() error {
	if len(b.Jobs) == 0 {
		return fmt.Errorf("jobs is empty")
	}
	_, err := b.Resolve()
	return err
}

// Resolve applies defaults to every job.
func (b *Batch) Resolve() ([]ResolvedJob, error) {
	jobs := make([]ResolvedJob, 0, len(b.Jobs))
	for i, job := range b.Jobs {
		r, err := b.resolve(job)
		if err != nil {
			return nil, fmt.Errorf("jobs[%d]: %w", i, err)
		}
		jobs = append(jobs, r)
	}
	return jobs, nil
}

func (b *Batch) resolve(job Job) (ResolvedJob, error) {
	if job.Source == "" {
		return ResolvedJob{}, fmt.Errorf("source is required")
	}

	platformName := firstNonEmpty(job.Platform, b.Defaults.Platform)
	if platformName == "" {
		return ResolvedJob{}, fmt.Errorf("platform is required")
	}
	platform, err := iconset.ParsePlatform(platformName)
	if err != nil {
		return ResolvedJob{}, err
	}

	filter := firstNonEmpty(job.Filter, b.Defaults.Filter)
	if _, err := iconset.NewResampler(filter); err != nil {
		return ResolvedJob{}, err
	}

	source := b.abs(job.Source)
	output := firstNonEmpty(job.Output, b.Defaults.Output)
	if output == "" {
		output = filepath.Dir(source)
	} else {
		output = b.abs(output)
	}

	return ResolvedJob{
		Source:   source,
		Output:   output,
		Platform: platform,
		Filter:   filter,
	}, nil
}

func (b *Batch) abs(path string) string {
	if filepath.IsAbs(path) || b.dir == "" {
		return path
	}
	return filepath.Join(b.dir, path)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
