// Package harness provides utilities for integration testing the wmsession CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - WMSESSION_HOME: Isolated per test (temp directory holding the catalog)
//   - WMSESSION_DEBUG: Disabled to reduce noise
//   - XDG_DATA_HOME: Isolated so new session files land in the test directory
package harness
