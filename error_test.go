package bdrain_test

import (
	"testing"

	"github.com/advdv/bdrain"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorKind(t *testing.T) {
	err1 := bdrain.NewError(bdrain.KindTransport, errors.New("foo"))
	require.Equal(t, bdrain.KindTransport, err1.Kind())
	require.Equal(t, bdrain.KindTransport, bdrain.KindOf(err1))
	require.Equal(t, "transport error: foo", err1.Error())

	require.Equal(t, bdrain.KindUnknown, bdrain.KindOf(errors.New("bar")))
	require.Equal(t, bdrain.KindUnknown, bdrain.KindOf(nil))
	require.Equal(t, "unknown error: rab", bdrain.NewError(bdrain.Kind(900), errors.New("rab")).Error())
}

func TestErrorKindThroughWrapping(t *testing.T) {
	cause := errors.New("connection reset")
	err := errors.Wrap(bdrain.NewError(bdrain.KindIO, cause), "fetch page")

	require.Equal(t, bdrain.KindIO, bdrain.KindOf(err))
	require.ErrorIs(t, err, cause, "the underlying cause must stay reachable")
}
