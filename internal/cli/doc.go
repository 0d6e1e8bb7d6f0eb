// Package cli implements the court-watch command-line interface: the root
// check command and the digest preview subcommand.
package cli
