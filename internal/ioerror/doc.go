// Package ioerror provides error inspection for the storage backends behind a
// save game handle. It centralizes the logic for identifying permission,
// missing-file, out-of-space and closed-file failures so callers can pick an
// exit code or a log attribute without matching error strings themselves.
package ioerror
