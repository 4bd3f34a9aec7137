// Package commands defines the rtlkit CLI.
//
// Commands
//
//   - detect    Report the scripts and direction of text
//   - annotate  Add dir attributes to an HTML document
//   - flip      Horizontally mirror a PNG icon
//   - digits    Convert Western digits to a language's digit set
//
// The commands are thin wrappers over the library packages, intended
// for asset pipelines and quick inspection from a shell.
package commands
