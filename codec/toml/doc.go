// Package toml implements codec.Codec for TOML documents using
// BurntSushi/toml.
package toml
