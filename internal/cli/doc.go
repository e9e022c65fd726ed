// Package cli implements the revmon command tree: compare (the snapshot
// comparison run), config (manage the config file), and version. Command
// handlers set the package exit code rather than exiting, so Run can return
// it to main.
package cli
