// Package config holds the startup settings of the library console.
//
// Settings come from three layers, later ones winning:
//
//   - DefaultSettings()
//   - an optional TOML file passed with --config
//   - command line flags
//
// Example file:
//
//	theme = "neon"
//	verbosity = "debug"
//	books = "shelf.json"
//
//	[librarian]
//	name = "Ms. Ada"
//	employee_id = "LIB042"
package config
