// Package errors provides the classified error primitives used across sitehooks.
//
// A ClassifiedError carries a category (config, validation, filesystem, ...),
// a severity and structured context. Errors are created through the fluent
// ErrorBuilder:
//
//	err := errors.FileSystemError("copy asset").
//		WithCause(ioErr).
//		WithContext("path", dst).
//		Build()
//
// The CLI adapter turns classified errors into exit codes and user-facing
// messages.
package errors
