package domain

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "vite.yaml"

	// DefaultPublicDirectory is the web root relative to the project root.
	DefaultPublicDirectory = "public"

	// DefaultBuildDirectory is the public subdirectory holding compiled assets.
	DefaultBuildDirectory = "build"

	// DefaultManifestFilename is the manifest file name inside the build directory.
	DefaultManifestFilename = "manifest.json"

	// HotFileName is the name of the dev server marker file inside the public directory.
	HotFileName = "hot"

	// DefaultIntegrityKey is the manifest field holding subresource-integrity hashes.
	DefaultIntegrityKey = "integrity"

	// ViteClientEntry is the dev server client runtime prepended in hot mode.
	ViteClientEntry = "@vite/client"

	// ReactRefreshEntry is the dev server module providing the React refresh runtime.
	ReactRefreshEntry = "@react-refresh"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)
