// Package model defines domain data structures used across the app: dog entries,
// list snapshots handed to renderers, and the error kinds returned when adding a dog.
package model
