// Package cli defines the Cobra command tree for readmegen. The root command
// generates the ReadMe; subcommands validate the manifest, show the resolved
// settings and print version information. Commands only parse flags and
// format output; generation lives in internal/readme.
package cli
