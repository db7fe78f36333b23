// Package codec defines the serialization collaborator used by the
// loader, decoupling the merge engine from any concrete format library.
package codec
