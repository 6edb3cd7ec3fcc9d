// Package manifest loads the VS Code extension manifest (package.json) that
// drives ReadMe generation. Load decodes the fields the generator reads into
// typed structs and checks every required field up front, reporting all
// missing fields in one error. Validate runs the broader, advisory JSON Schema
// check used by the validate command.
package manifest
