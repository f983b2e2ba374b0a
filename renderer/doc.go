// Package renderer turns the till reports into markdown documents.
//
// Every function returns a complete document that the command line prints
// either raw or through a terminal renderer.
package renderer
