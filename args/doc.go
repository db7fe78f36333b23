// Package args implements the loader's command-line collaborator on top
// of spf13/pflag: a set of declared options with defaults that splits a
// token list into explicitly provided values and leftover raw tokens.
package args
