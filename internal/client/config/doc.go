// Package config loads runtime configuration for the tasknotes client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API root URL
//	-d string   local database path
//	-s string   handshake mode: http or stub
//	-t int      handshake timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds. Fields left out keep their previous value:
//
//	{
//	  "server_url": "https://notes.example.com/api",
//	  "database_path": "/var/lib/tasknotes/local.db",
//	  "handshake_mode": "http",
//	  "handshake_timeout": "10s",
//	  "request_timeout": "30s",
//	  "ca_path": "/etc/ssl/tasknotes-ca.pem",
//	  "log_level": "debug"
//	}
package config
