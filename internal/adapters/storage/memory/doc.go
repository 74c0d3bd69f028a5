// Package memory provides map-backed implementations of the repository
// ports. Data lives for the life of the process; ids start at 1 and are never
// reused.
package memory
