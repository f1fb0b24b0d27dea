// Package shell implements the interactive session of the pathwalk binary: a
// line-oriented command interpreter that drives a pathwalk.Walker over a
// loaded document.
package shell
