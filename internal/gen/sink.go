package gen

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"slices"

	"viewbinding-generator/internal/common"
	"viewbinding-generator/internal/synth"
)

// ErrNoPackageDir is returned when a FileSink cannot locate the directory of
// a namespace and has no output directory override.
var ErrNoPackageDir = errors.New("no directory for package")

// ErrFilenameCollision is returned when two owner types of one package map
// to the same file name, e.g. Main and main.
var ErrFilenameCollision = errors.New("generated file name already taken")

// Sink accepts synthesized units and persists them.
type Sink interface {
	Write(namespace string, unit *synth.Unit) error
}

// Locator maps a namespace (package import path) to its package name and
// source directory.
type Locator interface {
	PackageName(namespace string) string
	PackageDir(namespace string) string
}

// FileSinkConfig holds configuration for a FileSink.
type FileSinkConfig struct {
	// OutputDir overrides the package directory for every unit.
	OutputDir string
	// DryRun renders without writing.
	DryRun bool
	// DebugOutline writes a *.outline.txt sidecar for units that fail to
	// render.
	DebugOutline bool
}

// FileSink renders units and writes them into their package directories.
type FileSink struct {
	renderer *Renderer
	locator  Locator
	config   FileSinkConfig
	files    []GeneratedFile
	owners   map[string]string // output path -> owner
}

// NewFileSink creates a FileSink.
func NewFileSink(renderer *Renderer, locator Locator, config FileSinkConfig) *FileSink {
	return &FileSink{
		renderer: renderer,
		locator:  locator,
		config:   config,
		owners:   make(map[string]string),
	}
}

// Write renders unit and writes it to disk unless DryRun is set.
func (s *FileSink) Write(namespace string, unit *synth.Unit) error {
	dir := s.config.OutputDir
	if dir == "" {
		dir = s.locator.PackageDir(namespace)
	}
	if dir == "" {
		return fmt.Errorf("%w %s", ErrNoPackageDir, namespace)
	}

	target := filepath.Join(dir, Filename(unit))
	if err := claim(s.owners, target, unit); err != nil {
		return err
	}

	file, err := s.renderer.Render(packageName(s.locator, namespace), unit)
	if err != nil {
		if s.config.DebugOutline && !s.config.DryRun {
			_ = writeDebugOutline(dir, Filename(unit), unit.Outline())
		}

		return err
	}

	if !s.config.DryRun {
		if err := WriteFiles([]GeneratedFile{*file}, dir); err != nil {
			return err
		}
	}

	s.files = append(s.files, *file)

	return nil
}

// Files returns the files written (or, in dry-run mode, rendered) so far.
func (s *FileSink) Files() []GeneratedFile {
	return slices.Clone(s.files)
}

// MemorySink renders units into memory. Writing the same owner twice
// overwrites the earlier file; two owners sharing a file name is an error.
type MemorySink struct {
	renderer *Renderer
	locator  Locator
	files    map[string]GeneratedFile
	owners   map[string]string // key -> owner
	order    []string
}

// NewMemorySink creates a MemorySink. locator may be nil.
func NewMemorySink(renderer *Renderer, locator Locator) *MemorySink {
	return &MemorySink{
		renderer: renderer,
		locator:  locator,
		files:    make(map[string]GeneratedFile),
		owners:   make(map[string]string),
	}
}

// Write renders unit and stores it under namespace/filename.
func (s *MemorySink) Write(namespace string, unit *synth.Unit) error {
	key := path.Join(namespace, Filename(unit))
	if err := claim(s.owners, key, unit); err != nil {
		return err
	}

	file, err := s.renderer.Render(packageName(s.locator, namespace), unit)
	if err != nil {
		return err
	}

	if _, ok := s.files[key]; !ok {
		s.order = append(s.order, key)
	}
	s.files[key] = *file

	return nil
}

// Get returns the file stored under namespace/filename.
func (s *MemorySink) Get(key string) (GeneratedFile, bool) {
	f, ok := s.files[key]

	return f, ok
}

// Keys returns the stored keys in first-write order.
func (s *MemorySink) Keys() []string {
	return slices.Clone(s.order)
}

// Files returns the stored files in first-write order.
func (s *MemorySink) Files() []GeneratedFile {
	out := make([]GeneratedFile, 0, len(s.order))
	for _, k := range s.order {
		out = append(out, s.files[k])
	}

	return out
}

// packageName asks the locator first and falls back to the last element of
// the namespace.
func packageName(locator Locator, namespace string) string {
	if locator != nil {
		if name := locator.PackageName(namespace); name != "" {
			return name
		}
	}

	return common.PkgAlias(namespace)
}

// claim records that unit owns target. Rewriting a target for the same owner
// is allowed.
func claim(owners map[string]string, target string, unit *synth.Unit) error {
	if prev, ok := owners[target]; ok && prev != unit.Owner {
		return fmt.Errorf("%w: %s is generated for both %s and %s", ErrFilenameCollision, target, prev, unit.Owner)
	}

	owners[target] = unit.Owner

	return nil
}
