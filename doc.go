// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package binary provides a bidirectional, bit-granular binary codec
// engine driven by a tree of composable definition blocks.
//
// A single declarative description — a tree built from [Field],
// [Group], [Conditional], [ConditionalElse], [Repeat], [Fill],
// [Buffer], [Offset], [Container], [Choice], [Deferred] and
// [NewProcess] — is interpreted in two directions by a [CodingContext]:
// decoding reads a bit stream and populates a logical field tree;
// encoding reads a logical field tree and produces a bit stream.
//
// # Coding context
//
// [CodingContext] owns the mutable state threaded through a run: the
// current [Path], the current bit position, a variables map, the
// accumulated field map, and per-block scratch storage. Every block
// observes and mutates this state through the context, never directly.
// [CodingContext.BeginTransaction] snapshots every layer so a block
// that speculates can roll back to a bit-for-bit identical prior
// state.
//
// # External collaborators
//
// The engine consumes five boundary contracts — [BitReader],
// [BitWriter], [FieldReader], [FieldWriter] and [BinaryValueConverter]
// — and imposes no representation on them. Reference implementations
// live in the sibling bitio, fieldtree and convert packages; production
// users supply their own.
//
// # Errors
//
// Every fallible operation returns an [Outcome] rather than a bare Go
// error. [Outcome] carries a typed [*CodecError] on failure, so callers
// (and blocks like [Fill]) can inspect [ErrorKind] without relying on
// sentinel comparison.
package binary
