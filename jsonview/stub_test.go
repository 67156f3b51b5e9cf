//go:build !yaml2json

package jsonview_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/yamlstruct/jsonview"
)

func TestDisabledWithoutTag(t *testing.T) {
	require.False(t, jsonview.Enabled)
	_, err := jsonview.YAMLToJSON([]byte("a: 1"))
	require.ErrorIs(t, err, jsonview.ErrDisabled)
}
