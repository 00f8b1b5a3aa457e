// internal/version/version.go
package version

// Version is stamped by the release workflow; keep a sane default for
// source builds.
var Version = "0.2.0"
