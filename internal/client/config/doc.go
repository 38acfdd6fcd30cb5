// Package config loads runtime configuration for the sensitive words admin CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Environment variables SW_SERVER and SW_TIMEOUT.
//  4. Global flags -a (server URL) and -t (request timeout).
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:8080",
//	  "timeout": "10s"
//	}
package config
