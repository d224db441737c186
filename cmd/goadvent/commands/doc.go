// Package commands defines the goadvent CLI.
//
// Commands
//
//   - days      List the registered days
//   - solve     Solve one part of a day
//   - animate   Render a day's animation to a GIF or PNG file
//
// The root command loads the configuration and opens the core service before
// any subcommand runs. Without --input, puzzle input is read from the
// configured input directory (dayDD.txt).
package commands
