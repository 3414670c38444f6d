// Package migrations contains the schema migration files. Each file
// registers itself via init(), so importing this package (the CLI does)
// makes every migration available to the runner.
package migrations
