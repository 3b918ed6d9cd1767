// Package models provides the shared data types for ts-cli-template-maker.
//
// The central type is [ProjectAnswers], the record the interactive wizard
// fills one prompt at a time and the materialization pipeline consumes. It
// lives here so the prompt layer and the pipeline do not depend on each
// other.
//
// # Repository URL kinds
//
// URLs are validated against one of two shapes, chosen once per run:
//
//	kind := models.URLKindHTTPS
//	if kind.IsValid() {
//	    fmt.Println("validating", kind, "URLs")
//	}
package models
