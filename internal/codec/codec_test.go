package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ignite-kv/ignite/internal/codec"
	kverrors "github.com/ignite-kv/ignite/pkg/errors"
)

func TestEncodeDecodeSetRoundTrip(t *testing.T) {
	line, err := codec.EncodeSet("a", "1")
	require.NoError(t, err)

	rec, err := codec.Decode(line)
	require.NoError(t, err)
	require.True(t, rec.IsSet())
	require.False(t, rec.IsRemove())
	require.Equal(t, "a", rec.Key())
	require.Equal(t, "1", rec.Set.Value)
}

func TestEncodeDecodeRemoveRoundTrip(t *testing.T) {
	line, err := codec.EncodeRemove("a")
	require.NoError(t, err)

	rec, err := codec.Decode(line)
	require.NoError(t, err)
	require.True(t, rec.IsRemove())
	require.False(t, rec.IsSet())
	require.Equal(t, "a", rec.Key())
}

func TestDecodeInvalidJSONIsCorruption(t *testing.T) {
	_, err := codec.Decode("not json")
	require.Error(t, err)
	require.True(t, kverrors.IsCorruptionError(err))
}

func TestDecodeWrongShapeIsCorruption(t *testing.T) {
	_, err := codec.Decode(`{"Other":{"key":"a"}}`)
	require.Error(t, err)
	require.True(t, kverrors.IsCorruptionError(err))
}

func TestEncodeEmptyValueRoundTrips(t *testing.T) {
	line, err := codec.EncodeSet("k", "")
	require.NoError(t, err)

	rec, err := codec.Decode(line)
	require.NoError(t, err)
	require.Equal(t, "", rec.Set.Value)
}
