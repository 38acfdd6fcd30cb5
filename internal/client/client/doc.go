// Package client is a typed client for the sensitive words HTTP API.
package client
