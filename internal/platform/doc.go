// Package platform contains OS integration glue: Android detection and
// resolution of the per-user configuration directory.
package platform
