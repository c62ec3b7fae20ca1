// Package commands defines the hallplot CLI.
//
// Commands
//
//   - render   Draw variants to image files (all builtin ones by default)
//   - list     Show the known variants
//   - export   Write the measurements of a variant to an .xlsx file
//   - fit      Print the trend of a variant
//
// The root command loads the variant registry (builtins plus an optional
// JSON config) and the measurement override before any subcommand runs.
package commands
