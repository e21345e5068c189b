package bdrain

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sluggishReader returns a zero-byte no-op read before every real read.
type sluggishReader struct {
	inner io.Reader
	ready bool
}

func (r *sluggishReader) Read(p []byte) (int, error) {
	if !r.ready {
		r.ready = true
		return 0, nil
	}

	r.ready = false
	return r.inner.Read(p)
}

func TestChunksOfCopiesInput(t *testing.T) {
	chunk := []byte("abc")
	src := ChunksOf(chunk)
	chunk[0] = 'z'

	got, err := src.NextChunk(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	_, err = src.NextChunk(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestChunksOfCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ChunksOf([]byte("x")).NextChunk(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReaderSourceChunking(t *testing.T) {
	src := ReaderSource(strings.NewReader("abcdefg"), 3)

	var chunks [][]byte
	for {
		chunk, err := src.NextChunk(context.Background())
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}

	assert.Equal(t, [][]byte{[]byte("abc"), []byte("def"), []byte("g")}, chunks)
}

func TestReaderSourceSkipsNoOpReads(t *testing.T) {
	src := ReaderSource(&sluggishReader{inner: strings.NewReader("ok")}, DefaultBufferSize)

	chunk, err := src.NextChunk(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), chunk)

	_, err = src.NextChunk(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderSourceDefaultsChunkSize(t *testing.T) {
	payload := strings.Repeat("a", DefaultBufferSize+1)
	src := ReaderSource(strings.NewReader(payload), 0)

	chunk, err := src.NextChunk(context.Background())
	require.NoError(t, err)
	assert.Len(t, chunk, DefaultBufferSize)
}
