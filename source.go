package bdrain

import (
	"context"
	"io"
)

// ChunkSource is an asynchronous producer of discrete byte chunks, such as a chunked
// transfer-encoded HTTP response body. Each pull either yields the next chunk, returns
// [io.EOF] to signal that the source is exhausted, or returns a transport-level failure.
//
// Ownership of a yielded chunk transfers to the caller: the source must not retain or
// reuse the slice after NextChunk returns.
type ChunkSource interface {
	NextChunk(ctx context.Context) ([]byte, error)
}

// ChunkSourceFunc allows casting a function to an implementation of [ChunkSource].
type ChunkSourceFunc func(ctx context.Context) ([]byte, error)

// NextChunk implements the [ChunkSource] interface.
func (f ChunkSourceFunc) NextChunk(ctx context.Context) ([]byte, error) {
	return f(ctx)
}

// ChunksOf returns a source that yields the given chunks in order and then [io.EOF].
// The chunks are copied up front so the caller may reuse the input slices.
func ChunksOf(chunks ...[]byte) ChunkSource {
	owned := make([][]byte, len(chunks))
	for i, c := range chunks {
		owned[i] = append([]byte(nil), c...)
	}

	var next int
	return ChunkSourceFunc(func(ctx context.Context) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if next >= len(owned) {
			return nil, io.EOF
		}

		chunk := owned[next]
		next++
		return chunk, nil
	})
}

// ReaderSource adapts a byte reader to the [ChunkSource] contract by reading up to
// chunkSize bytes per pull. It is the usual way to treat an [net/http.Response] body
// as a chunked source. A chunkSize of zero or less falls back to [DefaultBufferSize].
//
// A read failure surfaces as a transport failure on the chunk contract, since the
// consumer of the source cannot tell the two layers apart.
func ReaderSource(r io.Reader, chunkSize int) ChunkSource {
	if chunkSize <= 0 {
		chunkSize = DefaultBufferSize
	}

	return ChunkSourceFunc(func(ctx context.Context) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		buf := make([]byte, chunkSize)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				return buf[:n], nil
			}
			if err != nil {
				return nil, err
			}
			// a zero-byte read without an error is a no-op, not end-of-source
		}
	})
}
