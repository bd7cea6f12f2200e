// Package types defines the entity types, configuration, and standard
// error values for the Workbench project tracker.
package types
