// Package cli implements the uartdash command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small implementation function that talks to the port
// server through the api client and, for stateful flows, the
// controller. The general structure separates:
//
//   - Command definitions (cobra.Command instances in commands.go)
//   - Implementation functions (one file per nontrivial command)
//   - Domain logic (in other internal packages)
//
// # Command Structure
//
// The root command is "uartdash" with subcommands for different
// operations:
//
//	uartdash dashboard          - Full-screen port dashboard TUI
//	uartdash status             - One-shot port snapshot
//	uartdash configure <port>   - Change a port's baud rate and parity
//	uartdash disconnect <port>  - Disconnect a port
//	uartdash test <port>        - Test a port without changing it
//	uartdash init               - Create .uartdash.yaml config
//	uartdash doctor             - Diagnose config and server issues
//
// # Flag Handling
//
// Global flags (--config, --debug, --json) are defined on the root
// command and available to all subcommands. Command-specific flags like
// --baud and --interval are defined on individual commands.
//
// The ServerFlags type and AddServerFlags function provide a standard
// way to add server connection flags (--server, --timeout) to commands
// that talk to the port server.
//
// # Machine Output
//
// With --json every command writes a JSONEnvelope to stdout: {success,
// data, error{code, message, suggestion}}. Error codes are stable
// strings (SERVER_UNREACHABLE, VALIDATION_FAILED, ...) so scripts can
// branch on them without parsing messages.
package cli
