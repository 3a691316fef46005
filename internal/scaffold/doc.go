// Package scaffold generates new crawler targets for the search engine. Given
// a target name it renders the embedded target template (package, struct,
// constructor, and no-op Index/Sniff methods) and writes it to
// <cwd>/<target>/<target>.go, creating the target directory when absent.
package scaffold
