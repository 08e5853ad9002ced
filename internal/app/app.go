// Package app implements the application layer for gowheel.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"go.trai.ch/gowheel/internal/adapters/watcher"
	"go.trai.ch/gowheel/internal/build"
	"go.trai.ch/gowheel/internal/core/domain"
	"go.trai.ch/gowheel/internal/core/ports"
	"go.trai.ch/gowheel/internal/engine/wheel"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	compiler     ports.Compiler
	archiver     ports.ArchiveWriter
	logger       ports.Logger
	store        ports.BuildInfoStore
	hasher       ports.SourceHasher
	newWatcher   func() (ports.Watcher, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	compiler ports.Compiler,
	archiver ports.ArchiveWriter,
	log ports.Logger,
	store ports.BuildInfoStore,
	hasher ports.SourceHasher,
) *App {
	return &App{
		configLoader: loader,
		compiler:     compiler,
		archiver:     archiver,
		logger:       log,
		store:        store,
		hasher:       hasher,
		newWatcher: func() (ports.Watcher, error) {
			return watcher.NewWatcher()
		},
	}
}

// WithWatcherFactory overrides how watchers are created. Used for testing.
func (a *App) WithWatcherFactory(f func() (ports.Watcher, error)) *App {
	a.newWatcher = f
	return a
}

// BuildOptions configuration for the Build method. Zero-valued fields fall
// back to the project file and then to built-in defaults.
type BuildOptions struct {
	Name           string
	Version        string
	OutputDir      string
	EntryPoint     string
	Platforms      []string
	GoBinary       string
	Description    string
	RequiresPython string
	Author         string
	AuthorEmail    string
	License        string
	URL            string
	ReadmePath     string
	LDFlags        string
	SetVersionVar  string
	NoCache        bool
	Watch          bool
}

// Build packages the Go module at sourceDir into one wheel per requested
// platform. Per-target compile and archive failures are warnings; the run
// fails only when the source module is invalid, the README is missing, or no
// wheels were produced at all.
func (a *App) Build(ctx context.Context, sourceDir string, opts BuildOptions) error {
	run, err := a.resolve(sourceDir, opts)
	if err != nil {
		return err
	}

	if err := a.buildAll(ctx, run); err != nil {
		return err
	}

	if opts.Watch {
		return a.watch(ctx, run)
	}
	return nil
}

// run holds the fully-resolved state of one packaging run.
type run struct {
	sourceDir string
	outputDir string
	spec      *domain.PackageSpec
	platforms []string
	goBinary  string
	ldflags   string
	noCache   bool
}

// absOutputDir resolves the output directory against the working directory.
// Hashing and watching must ignore it even when it sits inside the source
// tree under a non-default name.
func (r *run) absOutputDir() string {
	abs, err := filepath.Abs(r.outputDir)
	if err != nil {
		return r.outputDir
	}
	return abs
}

// resolve validates the source module and merges flag, project file and
// default values into an immutable run description.
func (a *App) resolve(sourceDir string, opts BuildOptions) (*run, error) {
	absDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceDirNotFound.Error()), "dir", sourceDir)
	}
	// Wrap the sentinel first so errors.Is still reaches it through the
	// metadata layer.
	if _, err := os.Stat(absDir); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceDirNotFound, "invalid source module"), "dir", sourceDir)
	}
	if _, err := os.Stat(filepath.Join(absDir, domain.GoModFileName)); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNotGoModule, "invalid source module"), "dir", sourceDir)
	}

	cfg, err := a.configLoader.Load(absDir)
	if err != nil {
		return nil, err
	}

	name := firstNonEmpty(opts.Name, cfg.Name, filepath.Base(absDir))
	entryPoint := firstNonEmpty(opts.EntryPoint, cfg.EntryPoint, name)
	version := firstNonEmpty(opts.Version, cfg.Version, domain.DefaultVersion)

	readme, err := a.readReadme(absDir, opts.ReadmePath, cfg.Readme)
	if err != nil {
		return nil, err
	}

	spec := &domain.PackageSpec{
		Name:           name,
		Version:        version,
		EntryPoint:     entryPoint,
		Description:    firstNonEmpty(opts.Description, cfg.Description, domain.DefaultDescription),
		RequiresPython: firstNonEmpty(opts.RequiresPython, cfg.RequiresPython, domain.DefaultRequiresPython),
		Author:         firstNonEmpty(opts.Author, cfg.Author),
		AuthorEmail:    firstNonEmpty(opts.AuthorEmail, cfg.AuthorEmail),
		License:        firstNonEmpty(opts.License, cfg.License),
		URL:            firstNonEmpty(opts.URL, cfg.URL),
		Readme:         readme,
		LDFlags:        firstNonEmpty(opts.LDFlags, cfg.LDFlags),
		SetVersionVar:  firstNonEmpty(opts.SetVersionVar, cfg.SetVersionVar),
	}

	platforms := opts.Platforms
	if len(platforms) == 0 {
		platforms = cfg.Platforms
	}
	if len(platforms) == 0 {
		platforms = domain.DefaultPlatformKeys()
	}

	return &run{
		sourceDir: absDir,
		outputDir: firstNonEmpty(opts.OutputDir, domain.DefaultOutputDir),
		spec:      spec,
		platforms: platforms,
		goBinary:  opts.GoBinary,
		ldflags:   combineLDFlags(spec),
		noCache:   opts.NoCache,
	}, nil
}

// readReadme loads the README body when one was requested. A path given by
// the project file is resolved relative to the source module.
func (a *App) readReadme(sourceDir, flagPath, cfgPath string) (string, error) {
	path := flagPath
	if path == "" && cfgPath != "" {
		path = cfgPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(sourceDir, path)
		}
	}
	if path == "" {
		return "", nil
	}

	//nolint:gosec // Path was requested explicitly by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrReadmeNotFound, "failed to load README"), "path", path)
	}
	return string(data), nil
}

// buildAll fans the run out over all requested platforms. Each target is
// fully independent: its own temp dir, its own output file, no shared state
// beyond the collected result list.
func (a *App) buildAll(ctx context.Context, r *run) error {
	inputHash, err := a.inputHash(r)
	if err != nil {
		return err
	}

	var (
		mu    sync.Mutex
		built []string
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, key := range r.platforms {
		g.Go(func() error {
			path, ok := a.buildTarget(ctx, r, key, inputHash)
			if ok {
				mu.Lock()
				built = append(built, path)
				mu.Unlock()
			}
			return ctx.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(built) == 0 {
		return domain.ErrNoWheelsBuilt
	}

	a.logger.Info(fmt.Sprintf("built %d wheel(s)", len(built)))
	return nil
}

// buildTarget compiles and packages one platform. All per-target failures
// are reported as warnings and skip the target; the archive-write policy
// deliberately matches the compiler-failure policy.
func (a *App) buildTarget(ctx context.Context, r *run, key, inputHash string) (string, bool) {
	plat, ok := domain.LookupPlatform(key)
	if !ok {
		a.logger.Warn(fmt.Sprintf("unknown platform %s, skipping", key))
		return "", false
	}

	if path, ok := a.cachedWheel(r, plat, inputHash); ok {
		a.logger.Info(fmt.Sprintf("%s cached (%s)", plat.Key, filepath.Base(path)))
		return path, true
	}

	tmpDir, err := os.MkdirTemp("", "gowheel-*")
	if err != nil {
		a.logger.Warn(fmt.Sprintf("%s: %v", plat.Key, err))
		return "", false
	}
	defer os.RemoveAll(tmpDir) //nolint:errcheck // Best effort cleanup

	binPath := filepath.Join(tmpDir, r.spec.BinaryName(plat.IsWindows()))
	err = a.compiler.Compile(ctx, ports.CompileRequest{
		SourceDir:  r.sourceDir,
		OutputPath: binPath,
		Platform:   plat,
		LDFlags:    r.ldflags,
		GoBinary:   r.goBinary,
	})
	if err != nil {
		a.logger.Warn(err.Error())
		return "", false
	}

	binary, err := os.ReadFile(binPath) //nolint:gosec // Path is inside our own temp dir
	if err != nil {
		a.logger.Warn(zerr.With(domain.ErrBinaryReadFailed, "path", binPath).Error())
		return "", false
	}

	builder := wheel.NewBuilder(a.archiver, build.Version)
	wheelPath, err := builder.Build(binary, r.outputDir, r.spec, plat)
	if err != nil {
		a.logger.Warn(err.Error())
		return "", false
	}

	if inputHash != "" {
		a.recordBuild(r, plat, inputHash, wheelPath)
	}

	a.logger.Info(fmt.Sprintf("%s → %s", plat.Key, wheelPath))
	return wheelPath, true
}

// inputHash computes the combined hash of the source tree and the package
// spec. An empty hash disables caching for the run.
func (a *App) inputHash(r *run) (string, error) {
	if r.noCache {
		return "", nil
	}
	return a.hasher.ComputeInputHash(r.sourceDir, specFingerprint(r.spec, r.ldflags), r.absOutputDir())
}

// cachedWheel reports whether a previous build of this target is still valid.
func (a *App) cachedWheel(r *run, plat domain.Platform, inputHash string) (string, bool) {
	if inputHash == "" {
		return "", false
	}

	info, err := a.store.Get(r.sourceDir, plat.Key)
	if err != nil || info == nil {
		return "", false
	}
	if info.InputHash != inputHash {
		return "", false
	}
	if _, err := os.Stat(info.WheelPath); err != nil {
		return "", false
	}
	return info.WheelPath, true
}

// recordBuild stores the build record. The cache is advisory, so a store
// failure only warns.
func (a *App) recordBuild(r *run, plat domain.Platform, inputHash, wheelPath string) {
	absWheel, err := filepath.Abs(wheelPath)
	if err != nil {
		absWheel = wheelPath
	}
	err = a.store.Put(r.sourceDir, domain.BuildInfo{
		PlatformKey: plat.Key,
		InputHash:   inputHash,
		WheelPath:   absWheel,
		BuiltAt:     time.Now().UTC(),
	})
	if err != nil {
		a.logger.Warn(err.Error())
	}
}

// watch rebuilds the wheels whenever the source tree changes, until the
// context is canceled.
func (a *App) watch(ctx context.Context, r *run) error {
	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer w.Stop() //nolint:errcheck // Best effort close on shutdown

	if err := w.Start(ctx, r.sourceDir, r.absOutputDir()); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	rebuilds := make(chan struct{}, 1)
	deb := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(_ []string) {
		select {
		case rebuilds <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range w.Events() {
			deb.Add(event.Path)
		}
	}()

	a.logger.Info("watching for changes...")
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-rebuilds:
			// A canceled rebuild is a normal shutdown, not a failure.
			if err := a.buildAll(ctx, r); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error(err)
			}
		}
	}
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	SourceDir string
}

// Clean removes the build info store of the given source module.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	absDir, err := filepath.Abs(opts.SourceDir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSourceDirNotFound.Error()), "dir", opts.SourceDir)
	}

	storeDir := filepath.Join(absDir, domain.DefaultStorePath())
	a.logger.Info("removing build info store...")
	if err := os.RemoveAll(storeDir); err != nil {
		return zerr.Wrap(err, "failed to remove build info store")
	}
	a.logger.Info("removed build info store")
	return nil
}

// specFingerprint flattens the spec into the deterministic value list mixed
// into the input hash. Any field that changes the wheel's content or name
// must be represented here.
func specFingerprint(spec *domain.PackageSpec, ldflags string) []string {
	return []string{
		"name=" + spec.Name,
		"version=" + spec.Version,
		"entry_point=" + spec.EntryPoint,
		"description=" + spec.Description,
		"requires_python=" + spec.RequiresPython,
		"author=" + spec.Author,
		"author_email=" + spec.AuthorEmail,
		"license=" + spec.License,
		"url=" + spec.URL,
		"readme=" + spec.Readme,
		"ldflags=" + ldflags,
		"generator=" + build.Version,
	}
}

// combineLDFlags composes the version-injection define and the caller's
// extra flags. The define comes first so explicit flags can override it.
func combineLDFlags(spec *domain.PackageSpec) string {
	var parts []string
	if spec.SetVersionVar != "" {
		parts = append(parts, "-X "+spec.SetVersionVar+"="+spec.Version)
	}
	if spec.LDFlags != "" {
		parts = append(parts, spec.LDFlags)
	}
	return strings.Join(parts, " ")
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
