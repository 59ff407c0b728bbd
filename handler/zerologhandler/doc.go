// Package zerologhandler bridges fanlog to github.com/rs/zerolog.
package zerologhandler
