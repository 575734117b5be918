// Package config assembles the settings of the course-auth server.
//
// Every source produces a partial [StructuredConfig]; the layers are merged
// with mergo so that a later non-zero field replaces an earlier one:
//  0. Built-in defaults (listen address, reset TTLs, bcrypt cost)
//  1. Environment variables (APP_, STORAGE_, SERVER_, ADAPTER_, WORKERS_ prefixes)
//  2. Command-line flags
//  3. JSON config file named by -c or CONFIG
//
// The merged result is validated once. The database DSN and, unless legacy
// password reset is enabled, the reset grant sign key have no default and must
// come from one of the layers. The entry point is [GetStructuredConfig].
package config
