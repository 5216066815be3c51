package version

// version is the build version, set at build time with
// -ldflags "-X github.com/cbodonnell/gridstead/pkg/version.version=..."
var version = "dev"

// Get returns the build version.
func Get() string {
	return version
}

// SaveVersion is the save-format marker written into every save envelope.
// Saves with a different marker are incompatible with this build and can
// only be wiped. In-place schema evolution happens within a single marker
// via the migration pass, never across markers.
const SaveVersion = "1.2"
