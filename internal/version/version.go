// internal/version/version.go
package version

// Version is stamped at build time:
//
//	go build -ldflags "-X seqviz/internal/version.Version=v0.3.0" ./cmd/seqviz
var Version = "dev"
