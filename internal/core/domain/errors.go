package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when the manifest file is missing for the requested build directory.
	// Manifests that exist but cannot be parsed are reported with this error as well.
	ErrManifestNotFound = zerr.New("vite manifest not found")

	// ErrChunkNotFound is returned when a requested entry point or import is absent from the manifest.
	ErrChunkNotFound = zerr.New("unable to locate file in vite manifest")

	// ErrManifestParseFailed is returned when the manifest file is not a JSON object of chunk records.
	ErrManifestParseFailed = zerr.New("failed to parse vite manifest")

	// ErrManifestReadFailed is returned when the manifest file exists but cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read vite manifest")

	// ErrHotFileReadFailed is returned when the hot file exists but cannot be read.
	ErrHotFileReadFailed = zerr.New("failed to read hot file")

	// ErrManifestHashFailed is returned when the manifest content hash cannot be computed.
	ErrManifestHashFailed = zerr.New("failed to hash vite manifest")

	// ErrNoEntryPoints is returned when tags are requested without entry points and none are configured.
	ErrNoEntryPoints = zerr.New("no entry points specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidIntegrityKey is returned when integrityKey is neither a string nor false.
	ErrInvalidIntegrityKey = zerr.New("integrityKey must be a string or false")

	// ErrWatcherFailed is returned when the hot file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to watch hot file")

	// ErrInvalidFormat is returned when an unknown output format is requested.
	ErrInvalidFormat = zerr.New("invalid output format, expected auto, lines or inline")
)
