// Package config resolves the settings of one generation pass. Values come
// from built-in defaults, an optional .readmegen.yaml in the generation root,
// READMEGEN_* environment variables and command-line flags, in increasing
// order of precedence.
package config
