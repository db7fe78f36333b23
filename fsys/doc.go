// Package fsys defines the filesystem collaborator for the loader and
// provides the OS-backed implementation. The interface keeps the core
// engine free of direct os calls so tests can substitute in-memory fakes.
package fsys
