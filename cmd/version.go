// Package cmd holds build metadata for the llcheck binary.
//
// Release builds set these with:
//
//	go build -ldflags "-X github.com/thoreinstein/llcheck/cmd.Version=v1.2.0 \
//		-X github.com/thoreinstein/llcheck/cmd.Commit=$(git rev-parse --short HEAD) \
//		-X github.com/thoreinstein/llcheck/cmd.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/llcheck
package cmd

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the short git SHA of the build.
	Commit = "none"
	// Date is the UTC build time.
	Date = "unknown"
)
