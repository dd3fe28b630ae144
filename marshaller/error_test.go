package marshaller //nolint:testpackage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct{}

func TestRecordError(t *testing.T) {
	t.Parallel()

	parentErr := errors.New("unsupported type")
	err := RecordError{Op: OpEncode, Format: FormatMsgpack, Record: "main.record", parent: parentErr}
	assert.Equal(t, "cannot encode main.record as msgpack: unsupported type", err.Error())
	assert.Equal(t, parentErr, err.Unwrap())
}

func Test_errRecord(t *testing.T) {
	t.Parallel()

	t.Run("with parent error", func(t *testing.T) {
		t.Parallel()

		parentErr := errors.New("truncated input")
		err := errRecord[sample](OpDecode, FormatYAML, parentErr)
		require.ErrorIs(t, err, parentErr)

		var recordErr RecordError
		require.ErrorAs(t, err, &recordErr)
		assert.Equal(t, OpDecode, recordErr.Op)
		assert.Equal(t, FormatYAML, recordErr.Format)
		assert.Equal(t, "marshaller.sample", recordErr.Record)
	})

	t.Run("with nil parent error", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, errRecord[sample](OpEncode, FormatYAML, nil))
	})
}
