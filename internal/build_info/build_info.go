package build_info

// DefaultDevVersion marks a binary built without release ldflags.
const (
	DefaultDevVersion = "0.0.0-localdev"
)

// Set via ldflags during build, e.g.
// -X github.com/netmap/netmap/internal/build_info.Version=1.2.0
var (
	Version = DefaultDevVersion
	Commit  = "unknown"
	Date    = "unknown"
)
