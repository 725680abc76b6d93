// Package file provides a TOML file-backed implementation of the
// driven.ConfigStore port. Settings such as the data directory and the
// import inbox live in ~/.rolo/config.toml.
package file
