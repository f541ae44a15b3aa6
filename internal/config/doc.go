// Package config collects the installation parameters and builds the
// read-only Configuration used by the rest of the installer.
//
// Answers come from a Collector. Every collector asks the same four
// questions in the same order:
//
//  1. root prefix (default "~/micromamba/")
//  2. whether to initialize a shell (default yes)
//  3. which shell, only when the answer to 2 is yes
//  4. where to put the binary (default depends on the platform)
//
// The answer parsing rules live in ParseRootPrefix, ParseInitShell,
// ParseShell and ParseBinPath so that the prompt, promptui, viper and Lua
// collectors all agree on defaults and on what counts as an invalid answer.
//
// Lua configuration files run in a sandboxed gopher-lua VM with a read-only
// platform table, for example:
//
//	install = {
//	  root_prefix = "~/micromamba",
//	  init_shell  = not platform.is_windows,
//	  shell       = "zsh",
//	}
package config
