// Package bdrain drains HTTP response bodies and other byte streams fully into
// memory, as bytes or as validated UTF-8 text.
//
// # Overview
//
// bdrain does one thing: it pulls chunks from a streaming byte source until the
// source is exhausted, concatenates them in delivery order, and hands the result to
// the caller. Failures along the way surface through a small closed error taxonomy
// so callers can tell a broken transport from broken text without string matching.
//
// A minimal example:
//
//	resp, err := http.Get(url)
//	if err != nil {
//	    return err
//	}
//	defer resp.Body.Close()
//
//	accu := bdrain.New()
//	content, err := accu.StringFromReader(ctx, resp.Body)
//	if err != nil {
//	    return err
//	}
//
// # Source Contracts
//
// Two capability interfaces cover the two ways bytes arrive, and they are kept
// deliberately separate because their failure modes differ:
//
//   - [ChunkSource] yields discrete, pre-sized byte chunks until [io.EOF]. Failures
//     on this contract are transport failures ([KindTransport]).
//   - [io.Reader] fills a caller-supplied buffer on demand. Failures on this
//     contract are read failures ([KindIO]).
//
// [ChunksOf] builds a chunk source from in-memory chunks and [ReaderSource] bridges
// a reader onto the chunk contract, which is how a response body becomes a chunked
// source in practice.
//
// # Accumulator
//
// The [Accumulator] owns a single configuration knob, the working buffer size used
// by the reader conversions, and exposes four conversions:
//
//   - [Accumulator.BytesFromChunks] and [Accumulator.StringFromChunks] for chunk
//     sources
//   - [Accumulator.BytesFromReader] and [Accumulator.StringFromReader] for readers
//
// Every conversion drains the whole source or fails; callers never receive a
// truncated-but-valid prefix. Nothing is retried, logged or downgraded, and each
// call is independent: the accumulator holds no state between calls and is safe to
// share.
//
// # UTF-8 Validation
//
// The two string conversions validate at different granularity.
// [Accumulator.StringFromChunks] validates the assembled buffer once, so a
// multi-byte code point split across a chunk boundary is fine.
// [Accumulator.StringFromReader] validates every read on its own, so the same split
// across two reads fails with [KindEncoding]. The reader path keeps this stricter
// per-read behavior; drain to bytes and decode with [BytesToString] when the source
// may split code points arbitrarily.
//
// # Error Handling
//
// All failures are values of [*Error] carrying one of three kinds plus the
// underlying cause:
//
//	content, err := accu.StringFromChunks(ctx, src)
//	switch bdrain.KindOf(err) {
//	case bdrain.KindTransport:
//	    // the source broke mid-stream
//	case bdrain.KindEncoding:
//	    // the payload is not text
//	}
//
// [KindOf] unwraps through any amount of wrapping and returns [KindUnknown] for
// errors that did not originate here.
//
// # Memory
//
// Accumulation is unbounded: the result grows until the source is exhausted. That
// is the point of the package, and also its sharpest edge. Cap untrusted sources
// with an [io.LimitedReader] before draining. An unbounded or stalled source keeps
// the call blocked until the context passed to it is canceled.
//
// # Standalone Draining
//
// [Drain] and [DrainString] perform the chunk-source conversions without an
// accumulator instance, for one-off use. The fetch helper in package
// [github.com/advdv/bdrain/bfetch] wires the accumulator to an HTTP client for the
// common fetch-and-drain case.
package bdrain
