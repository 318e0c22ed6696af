// Package version holds the loader's release version.
package version

// Version is the current release of the loader. It is written into the
// description of every annotated network and reported by the CLI.
const Version = "0.2.0"
