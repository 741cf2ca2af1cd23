// Package glaze holds module-level metadata shared by the CLI.
package glaze

// Version is the current glaze release.
const Version = "0.1.0"
