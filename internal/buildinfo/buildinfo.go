package buildinfo

import "fmt"

// Set at link time: -ldflags "-X .../buildinfo.Version=v0.3.0".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("numdna %s (commit=%s, date=%s)", Version, Commit, Date)
}
