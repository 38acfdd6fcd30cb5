// Package cli implements the sw admin command line: one mitchellh/cli command
// per API operation, all sharing a Meta with the UI and the API client.
package cli
