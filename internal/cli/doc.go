// Package cli implements the addtarget command line. The root command takes
// exactly one positional argument, the target name, and hands it to the
// scaffold package. Process state (arguments, working directory, output
// streams, filesystem) is passed in explicitly so the command can run in
// tests without touching the real process.
package cli
