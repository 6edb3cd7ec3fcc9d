// Package readme renders the extension ReadMe from a loaded manifest and the
// snippet pair of every command. The whole document is rendered in memory
// before the output file is touched, so a missing snippet or field leaves the
// previous ReadMe in place.
package readme
