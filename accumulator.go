package bdrain

import (
	"context"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// DefaultBufferSize is the working buffer size, in bytes, used by [New].
const DefaultBufferSize = 8192

// Accumulator drains a finite byte source fully into memory and optionally validates
// the result as UTF-8 text. It is immutable once constructed and safe for concurrent
// use; every conversion call owns its buffers exclusively and holds no state across
// calls.
//
// Both drain paths grow the result without bound: the accumulator is meant for
// responses that are known to fit in memory. Callers that need a cap should wrap
// their reader in an [io.LimitedReader] before draining.
type Accumulator struct {
	bufferSize int
}

// New inits an accumulator with [DefaultBufferSize].
func New() *Accumulator {
	return &Accumulator{bufferSize: DefaultBufferSize}
}

// NewWithBufferSize inits an accumulator with a custom working buffer size for the
// reader conversions. The size is not validated: a size of zero never makes progress
// on the reader path, that is the caller's responsibility. Chunk conversions ignore
// it since chunks arrive pre-sized.
func NewWithBufferSize(bufferSize int) *Accumulator {
	return &Accumulator{bufferSize: bufferSize}
}

// BytesFromChunks pulls chunks from src in delivery order until it reports [io.EOF]
// and returns the concatenation. Any other failure aborts the drain with a
// [KindTransport] error and discards the bytes accumulated so far.
func (a *Accumulator) BytesFromChunks(ctx context.Context, src ChunkSource) ([]byte, error) {
	var result []byte
	for {
		chunk, err := src.NextChunk(ctx)
		if errors.Is(err, io.EOF) {
			return result, nil
		} else if err != nil {
			return nil, NewError(KindTransport, errors.Wrap(err, "pull next chunk"))
		}

		result = append(result, chunk...)
	}
}

// StringFromChunks drains src like [Accumulator.BytesFromChunks] and then validates
// the complete buffer as UTF-8 once. Because validation runs on the assembled bytes,
// a chunk boundary that splits a multi-byte code point is not an error; only the
// final buffer's validity matters. Invalid text reports a [KindEncoding] error.
func (a *Accumulator) StringFromChunks(ctx context.Context, src ChunkSource) (string, error) {
	result, err := a.BytesFromChunks(ctx, src)
	if err != nil {
		return "", err
	}

	if !utf8.Valid(result) {
		return "", NewError(KindEncoding, errors.New("accumulated bytes are not valid utf-8"))
	}

	return string(result), nil
}

// BytesFromReader repeatedly fills a working buffer of the configured size from r and
// returns all bytes read until [io.EOF]. A read failure aborts with a [KindIO] error
// and discards any partial result. The context is consulted between reads so an
// abandoned call does not keep pulling from the reader.
func (a *Accumulator) BytesFromReader(ctx context.Context, r io.Reader) ([]byte, error) {
	var result []byte
	appendRead := func(chunk []byte) error {
		result = append(result, chunk...)
		return nil
	}

	if err := a.readLoop(ctx, r, appendRead); err != nil {
		return nil, err
	}

	return result, nil
}

// StringFromReader drains r like [Accumulator.BytesFromReader] but validates each
// read's bytes as UTF-8 before appending them. This intentionally differs from
// [Accumulator.StringFromChunks]: a multi-byte code point that straddles two reads
// fails with a [KindEncoding] error even though the stream as a whole is valid text.
// Callers that cannot rule out such boundaries should drain to bytes first and decode
// with [BytesToString].
func (a *Accumulator) StringFromReader(ctx context.Context, r io.Reader) (string, error) {
	var result []byte
	appendValidRead := func(chunk []byte) error {
		if !utf8.Valid(chunk) {
			return NewError(KindEncoding, errors.New("read bytes are not valid utf-8"))
		}

		result = append(result, chunk...)
		return nil
	}

	if err := a.readLoop(ctx, r, appendValidRead); err != nil {
		return "", err
	}

	return string(result), nil
}

// readLoop is the shared reader drain: fill the working buffer, hand the filled
// prefix to consume, stop on end-of-source. Only consume errors pass through
// unwrapped, read failures are tagged [KindIO].
func (a *Accumulator) readLoop(ctx context.Context, r io.Reader, consume func([]byte) error) error {
	buf := make([]byte, a.bufferSize)
	for {
		if err := ctx.Err(); err != nil {
			return NewError(KindIO, err)
		}

		n, err := r.Read(buf)
		if n > 0 {
			if cerr := consume(buf[:n]); cerr != nil {
				return cerr
			}
		}

		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return NewError(KindIO, errors.Wrap(err, "read from source"))
		}
	}
}
