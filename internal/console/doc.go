// Package console implements the line-oriented front end of the validator
// client: predefined demonstration scenarios and an interactive prompt loop
// that reads the five transaction fields from an io.Reader.
package console
