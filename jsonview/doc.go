// Package jsonview projects a YAML node tree onto plain JSON values without
// any record schema.
//
// The projection is compiled only with the yaml2json build tag:
//
//	go build -tags yaml2json ./...
//
// Without the tag every function returns ErrDisabled.
package jsonview

import "errors"

// ErrDisabled is returned when the package was built without the yaml2json tag.
var ErrDisabled = errors.New("jsonview: built without the yaml2json tag")
