// Package config loads and persists the termstream configuration file, a
// small JSON document in the user configuration directory controlling log
// level, input capture options, and the cursor query window.
package config
