// Package resolver turns Vite entry points into the HTML tags that load them.
package resolver

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/vitetag/internal/core/domain"
	"go.trai.ch/vitetag/internal/core/ports"
	"go.trai.ch/zerr"
)

// hotFileCutset matches the characters stripped from the end of the hot file.
const hotFileCutset = " \t\n\r\x00\x0B"

// Resolver resolves entry points against the dev server or the build manifest.
// It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	cfg       domain.Config
	fs        ports.FileSystem
	manifests ports.ManifestStore
	urls      ports.URLGenerator
	hasher    ports.Hasher
	tracer    ports.Tracer
}

// NewResolver creates a Resolver. Unset configuration fields take their defaults.
func NewResolver(
	cfg domain.Config,
	fsys ports.FileSystem,
	manifests ports.ManifestStore,
	urls ports.URLGenerator,
	hasher ports.Hasher,
	tracer ports.Tracer,
) *Resolver {
	return &Resolver{
		cfg:       cfg.WithDefaults(),
		fs:        fsys,
		manifests: manifests,
		urls:      urls,
		hasher:    hasher,
		tracer:    tracer,
	}
}

// Config returns the effective configuration.
func (r *Resolver) Config() domain.Config {
	c := r.cfg
	c.EntryPoints = slices.Clone(r.cfg.EntryPoints)
	return c
}

// IsRunningHot reports whether the dev server marker file exists.
// The answer is never cached.
func (r *Resolver) IsRunningHot() bool {
	return r.fs.Exists(r.cfg.HotFile)
}

// DevServerURL returns the dev server URL recorded in the hot file.
// ok is false when the dev server is not running.
func (r *Resolver) DevServerURL() (url string, ok bool, err error) {
	if !r.IsRunningHot() {
		return "", false, nil
	}
	base, err := r.hotBase()
	if err != nil {
		return "", false, err
	}
	return base, true, nil
}

// Tags renders the tags for entryPoints as a single space separated string.
func (r *Resolver) Tags(ctx context.Context, entryPoints []string, buildDirectory string) (string, error) {
	set, err := r.Resolve(ctx, entryPoints, buildDirectory)
	if err != nil {
		return "", err
	}
	return set.String(), nil
}

// Resolve computes the tag set for entryPoints.
// An empty buildDirectory selects the configured one.
func (r *Resolver) Resolve(ctx context.Context, entryPoints []string, buildDirectory string) (*domain.TagSet, error) {
	buildDirectory = r.buildDirectory(buildDirectory)

	ctx, span := r.tracer.Start(ctx, "vite.tags")
	defer span.End()
	span.SetAttribute("vite.build_directory", buildDirectory)
	span.SetAttribute("vite.entry_points", strings.Join(entryPoints, ","))

	set, err := r.resolve(ctx, entryPoints, buildDirectory)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttribute("vite.hot", set.Hot)
	span.SetAttribute("vite.tags", set.Len())
	return set, nil
}

func (r *Resolver) resolve(ctx context.Context, entryPoints []string, buildDirectory string) (*domain.TagSet, error) {
	if r.IsRunningHot() {
		return r.resolveHot(entryPoints)
	}

	manifest, err := r.manifests.Load(ctx, r.cfg.ManifestPath(buildDirectory))
	if err != nil {
		return nil, err
	}

	res := newResolution(r, buildDirectory, manifest)
	for _, entry := range entryPoints {
		if err := res.visit(entry); err != nil {
			return nil, err
		}
	}
	return res.tagSet(), nil
}

// resolveHot renders one plain tag per entry point, led by the Vite client.
func (r *Resolver) resolveHot(entryPoints []string) (*domain.TagSet, error) {
	base, err := r.hotBase()
	if err != nil {
		return nil, err
	}

	entries := make([]string, 0, len(entryPoints)+1)
	entries = append(entries, domain.ViteClientEntry)
	entries = append(entries, entryPoints...)

	set := &domain.TagSet{Hot: true, DevServer: make([]string, 0, len(entries))}
	for _, entry := range entries {
		set.DevServer = append(set.DevServer, r.tagForChunk(base+"/"+entry, nil))
	}
	return set, nil
}

// Asset returns the URL of a single asset.
func (r *Resolver) Asset(ctx context.Context, asset, buildDirectory string) (string, error) {
	buildDirectory = r.buildDirectory(buildDirectory)

	ctx, span := r.tracer.Start(ctx, "vite.asset")
	defer span.End()
	span.SetAttribute("vite.build_directory", buildDirectory)
	span.SetAttribute("vite.asset", asset)

	url, err := r.asset(ctx, asset, buildDirectory)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	return url, nil
}

func (r *Resolver) asset(ctx context.Context, asset, buildDirectory string) (string, error) {
	if r.IsRunningHot() {
		base, err := r.hotBase()
		if err != nil {
			return "", err
		}
		return base + "/" + asset, nil
	}

	manifest, err := r.manifests.Load(ctx, r.cfg.ManifestPath(buildDirectory))
	if err != nil {
		return "", err
	}

	chunk, ok := manifest.Chunk(asset)
	if !ok {
		return "", chunkNotFound(asset)
	}
	return r.urls.AssetPath(domain.BuildAssetPath(buildDirectory, chunk.File)), nil
}

// ManifestHash returns a content hash of the manifest file.
// ok is false in hot mode or when the manifest does not exist.
func (r *Resolver) ManifestHash(ctx context.Context, buildDirectory string) (hash string, ok bool, err error) {
	buildDirectory = r.buildDirectory(buildDirectory)

	_, span := r.tracer.Start(ctx, "vite.manifest_hash")
	defer span.End()
	span.SetAttribute("vite.build_directory", buildDirectory)

	if r.IsRunningHot() {
		return "", false, nil
	}

	path := r.cfg.ManifestPath(buildDirectory)
	if !r.fs.Exists(path) {
		return "", false, nil
	}

	data, err := r.fs.ReadFile(path)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrManifestHashFailed.Error()), "path", path)
		span.RecordError(err)
		return "", false, err
	}
	return r.hasher.Sum(data), true, nil
}

const reactRefreshTemplate = `<script type="module"%s>
    import RefreshRuntime from '%s'
    RefreshRuntime.injectIntoGlobalHook(window)
    window.$RefreshReg$ = () => {}
    window.$RefreshSig$ = () => (type) => type
    window.__vite_plugin_react_preamble_installed__ = true
</script>`

// ReactRefresh returns the React refresh preamble, or "" when the dev server is not running.
func (r *Resolver) ReactRefresh(_ context.Context) (string, error) {
	if !r.IsRunningHot() {
		return "", nil
	}

	base, err := r.hotBase()
	if err != nil {
		return "", err
	}

	attrs := domain.Attributes{
		domain.OptionalAttr("nonce", r.cfg.Nonce, r.cfg.Nonce != ""),
	}.String()
	if attrs != "" {
		attrs = " " + attrs
	}

	return fmt.Sprintf(reactRefreshTemplate, attrs, base+"/"+domain.ReactRefreshEntry), nil
}

func (r *Resolver) buildDirectory(buildDirectory string) string {
	if buildDirectory == "" {
		return r.cfg.BuildDirectory
	}
	return buildDirectory
}

// hotBase reads the dev server URL from the hot file.
func (r *Resolver) hotBase() (string, error) {
	data, err := r.fs.ReadFile(r.cfg.HotFile)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrHotFileReadFailed.Error()), "path", r.cfg.HotFile)
	}
	return strings.TrimRight(string(data), hotFileCutset), nil
}

// tagForChunk renders the stylesheet or script tag for url.
// Chunks without integrity data skip attribute resolution unless a nonce is set.
func (r *Resolver) tagForChunk(url string, chunk *domain.Chunk) string {
	if r.cfg.Nonce == "" && r.cfg.IntegrityEnabled() {
		if _, ok := chunk.Field(r.cfg.IntegrityKey); !ok {
			return domain.Tag(url, nil)
		}
	}
	return domain.Tag(url, r.tagAttributes(chunk))
}

// tagAttributes returns the extra attributes of a stylesheet or script tag.
func (r *Resolver) tagAttributes(chunk *domain.Chunk) domain.Attributes {
	if !r.cfg.IntegrityEnabled() {
		return nil
	}
	integrity, ok := chunk.Field(r.cfg.IntegrityKey)
	return domain.Attributes{domain.OptionalAttr("integrity", integrity, ok)}
}

// preloadAttributes returns the attributes of the resource hint for p.
func (r *Resolver) preloadAttributes(p domain.PreloadEntry) domain.Attributes {
	var attrs domain.Attributes
	if p.IsStylesheet() {
		attrs = domain.Attributes{
			domain.StringAttr("rel", "preload"),
			domain.StringAttr("as", "style"),
			domain.StringAttr("href", p.URL),
		}
	} else {
		attrs = domain.Attributes{
			domain.StringAttr("rel", "modulepreload"),
			domain.StringAttr("href", p.URL),
		}
	}

	crossorigin, ok := r.tagAttributes(p.Chunk).Get("crossorigin")
	if !ok {
		crossorigin = domain.OmittedAttr("crossorigin")
	}

	attrs = append(attrs,
		domain.OptionalAttr("nonce", r.cfg.Nonce, r.cfg.Nonce != ""),
		crossorigin,
	)

	if r.cfg.IntegrityEnabled() {
		integrity, ok := p.Chunk.Field(r.cfg.IntegrityKey)
		attrs = attrs.Set(domain.OptionalAttr("integrity", integrity, ok))
	}
	return attrs
}

// resolution is the per-call state of a built mode resolution.
type resolution struct {
	r              *Resolver
	buildDirectory string
	manifest       *domain.Manifest
	preloads       []domain.PreloadEntry
	tags           []string
}

func newResolution(r *Resolver, buildDirectory string, manifest *domain.Manifest) *resolution {
	return &resolution{
		r:              r,
		buildDirectory: buildDirectory,
		manifest:       manifest,
	}
}

func (s *resolution) url(file string) string {
	return s.r.urls.AssetPath(domain.BuildAssetPath(s.buildDirectory, file))
}

// visit walks one entry point: the chunk, its imports with their stylesheets,
// then the chunk's own stylesheets.
func (s *resolution) visit(entry string) error {
	chunk, ok := s.manifest.Chunk(entry)
	if !ok {
		return chunkNotFound(entry)
	}

	url := s.url(chunk.File)
	s.preload(chunk.Src, url, chunk)

	for _, key := range chunk.Imports {
		imported, ok := s.manifest.Chunk(key)
		if !ok {
			return zerr.With(chunkNotFound(key), "imported_by", entry)
		}

		s.preload(key, s.url(imported.File), imported)
		for _, css := range imported.CSS {
			s.stylesheet(css)
		}
	}

	s.tags = append(s.tags, s.r.tagForChunk(url, chunk))

	for _, css := range chunk.CSS {
		s.stylesheet(css)
	}
	return nil
}

// stylesheet records a preload and a tag for a css file, using the first
// manifest record that produced it.
func (s *resolution) stylesheet(css string) {
	key, chunk, _ := s.manifest.ChunkByFile(css)
	url := s.url(css)
	s.preload(key, url, chunk)
	s.tags = append(s.tags, s.r.tagForChunk(url, chunk))
}

func (s *resolution) preload(src, url string, chunk *domain.Chunk) {
	s.preloads = append(s.preloads, domain.PreloadEntry{
		Src:      src,
		URL:      url,
		Chunk:    chunk,
		Manifest: s.manifest,
	})
}

// tagSet deduplicates and orders the collected tags.
func (s *resolution) tagSet() *domain.TagSet {
	set := &domain.TagSet{PreloadedAssets: make(map[string]domain.Attributes)}

	for _, tag := range unique(s.tags) {
		if domain.IsLinkTag(tag) {
			set.Stylesheets = append(set.Stylesheets, tag)
		} else {
			set.Scripts = append(set.Scripts, tag)
		}
	}

	preloads := slices.Clone(s.preloads)
	slices.SortStableFunc(preloads, func(a, b domain.PreloadEntry) int {
		return cmp.Compare(preloadRank(a), preloadRank(b))
	})

	rendered := make([]string, 0, len(preloads))
	for _, p := range preloads {
		attrs := s.r.preloadAttributes(p)
		set.PreloadedAssets[p.URL] = attrs.Without("href").Rendered()
		rendered = append(rendered, domain.LinkTag(attrs))
	}
	set.Preloads = unique(rendered)

	return set
}

// preloadRank orders stylesheet preloads ahead of scripts.
func preloadRank(p domain.PreloadEntry) int {
	if p.IsStylesheet() {
		return 0
	}
	return 1
}

// unique removes repeated strings, keeping the first occurrence.
func unique(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func chunkNotFound(entry string) error {
	return zerr.With(zerr.Wrap(domain.ErrChunkNotFound, "unable to resolve entry point"), "entry", entry)
}
