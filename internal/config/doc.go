// Package config manages user-level settings stored at ~/.addtarget/config.yaml.
// Settings only tune the tool's own behavior (log level and format); they
// never change the generated target. Values may be overridden through
// ADDTARGET_* environment variables, and the merged result is validated
// against an embedded JSON Schema.
package config
