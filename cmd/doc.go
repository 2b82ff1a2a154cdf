// Package cmd implements the user-settings command line interface. The
// state command group exposes the preference operations (get, getm, set,
// setm, has, del, path, info) plus a perf benchmark; storage location and
// logging are configured through flags or USERSETTINGS_* environment
// variables, optionally loaded from .env files.
package cmd
