package bdrain

import "context"

// Drain consumes src fully and returns the concatenated bytes, without requiring an
// [Accumulator]. It is a convenience for one-off conversions; buffer size plays no
// role on the chunk path. Semantics are those of [Accumulator.BytesFromChunks]: pulls
// happen in order, the first failure aborts with a [KindTransport] error and no bytes
// are returned.
func Drain(ctx context.Context, src ChunkSource) ([]byte, error) {
	return New().BytesFromChunks(ctx, src)
}

// DrainString is [Drain] followed by a whole-buffer UTF-8 validation, mirroring
// [Accumulator.StringFromChunks].
func DrainString(ctx context.Context, src ChunkSource) (string, error) {
	return New().StringFromChunks(ctx, src)
}
