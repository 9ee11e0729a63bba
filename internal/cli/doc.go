// Package cli implements the statusbox command-line interface.
//
// The root command is "statusbox" with subcommands:
//
//	statusbox demo [box|append|prepend]  - Open the interactive demos
//	statusbox init                       - Create .statusbox.yaml
//	statusbox config                     - Show the effective config
//	statusbox config set <key> <value>   - Change one key in the config file
//	statusbox config path                - Print which config file is in use
//	statusbox version                    - Print version information
//	statusbox completion <shell>         - Generate shell completions
//
// # Configuration
//
// Commands that need settings call loadConfig, which searches for the file
// named by --config, then .statusbox.yaml in the current and parent
// directories, then ~/.config/statusbox/config.yaml. Without a file the
// built-in defaults apply. STATUSBOX_<SECTION>_<KEY> environment variables
// override either.
//
// # Errors
//
// Commands return *errors.Error values carrying a suggestion. Execute prints
// them to stderr and exits 1; cobra's own usage errors are wrapped the same
// way.
package cli
