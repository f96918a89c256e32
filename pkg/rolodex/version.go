// Package rolodex exposes module-level build metadata.
package rolodex

// Version is the rolodex release version.
const Version = "v0.1.0"
