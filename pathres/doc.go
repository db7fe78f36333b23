// Package pathres resolves configuration path references.
//
// Paths come in five forms: absolute, home-relative (~/), explicitly
// relative (./ or ../), and bare. Bare paths resolve against an ordered
// search-path list where the first existing candidate wins; explicitly
// relative paths resolve against the parent directory of the referencing
// configuration file.
package pathres
