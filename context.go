// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

import (
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// BlockID is a stable, comparable, monotonically increasing identity
// for a block, used as the block_scratch key. spec.md §9 notes the
// source uses object identity for this; a systems implementation
// prefers an explicit id so block-tree values can be copied without
// conflating Deferred siblings.
type BlockID uint64

var blockIDCounter uint64

// NewBlockID allocates a fresh, process-wide unique BlockID.
func NewBlockID() BlockID {
	return BlockID(atomic.AddUint64(&blockIDCounter, 1))
}

// FieldMapping is the record produced when [CodingContext.MapField]
// binds a field: the absolute, non-root path it was bound at, the bit
// position it was read from or written to, its raw on-wire payload,
// and its typed, converted value.
type FieldMapping struct {
	Path          Path
	BitPosition   int64
	RawValue      BitValue
	ConvertedValue any
}

// CodingContext is the mutable state carrier passed to every block's
// Process method. It owns the current logical path, the current bit
// position, a variables map, the accumulated field map, and per-block
// scratch storage, and mediates every side effect so a rolled-back
// transaction restores bit-for-bit prior state (spec.md §3 invariant 3).
type CodingContext interface {
	EvalContext

	// ChangePath updates the current path: p replaces it if p is
	// absolute, or is joined onto it if p is relative.
	ChangePath(p Path) Outcome[Unit]
	// Move advances or retreats the bit position.
	Move(offset int64) Outcome[Unit]
	// SetVariable stores a value under name. name must not be empty
	// or whitespace-only.
	SetVariable(name string, value any) Outcome[Unit]
	// DeleteVariable removes name, if present. Used by [Repeat] to
	// restore "no prior value" on exit.
	DeleteVariable(name string)
	// MapField performs the direction-specific binding described in
	// spec.md §4.7: for decoding, read length bits, convert, write to
	// the field tree; for encoding, read the field tree, convert,
	// append to the bit stream. Either way, records a [FieldMapping]
	// at current_path / fieldPath, which must resolve to an absolute,
	// non-root path, and length must be positive.
	MapField(fieldPath Path, length int, converter BinaryValueConverter, defaultValue any) Outcome[Unit]
	// GetFieldMapping looks up a previously bound field by its
	// absolute, non-root path.
	GetFieldMapping(fieldPath Path) Outcome[FieldMapping]
	// StoreBlockData records opaque per-block scratch data, keyed by
	// block identity.
	StoreBlockData(id BlockID, data any)
	// RetrieveBlockData returns previously stored scratch data for id.
	RetrieveBlockData(id BlockID) (any, bool)
	// BeginTransaction snapshots every layer of state (path,
	// variables, field map, block scratch, and the direction-specific
	// deferred writer/reader cursor) and returns a single composed
	// [Transaction] handle.
	BeginTransaction() Outcome[*Transaction]
}

// coreState is the layered mutable state shared by both coding context
// realizations.
type coreState struct {
	path      Path
	variables *TransactionalMap[string, any]
	fieldMap  *TransactionalMap[string, FieldMapping]
	scratch   *TransactionalMap[BlockID, any]
	logger    *zap.Logger
}

func newCoreState(logger *zap.Logger) coreState {
	if logger == nil {
		logger = zap.NewNop()
	}
	return coreState{
		path:      rootPath,
		variables: NewTransactionalMap[string, any](),
		fieldMap:  NewTransactionalMap[string, FieldMapping](),
		scratch:   NewTransactionalMap[BlockID, any](),
		logger:    logger,
	}
}

func (s *coreState) Path() Path { return s.path }

func (s *coreState) ChangePath(p Path) Outcome[Unit] {
	s.path = s.path.Combine(p)
	return Done()
}

func (s *coreState) GetVariable(name string) Outcome[any] {
	if strings.TrimSpace(name) == "" {
		return Err[any](NewError(ErrArgumentInvalid, "variable name must not be blank"))
	}
	v, ok := s.variables.Get(name)
	if !ok {
		return Err[any](NewError(ErrKeyNotFound, "variable "+name+" is not set"))
	}
	return Ok(v)
}

func (s *coreState) SetVariable(name string, value any) Outcome[Unit] {
	if strings.TrimSpace(name) == "" {
		return Err[Unit](NewError(ErrArgumentInvalid, "variable name must not be blank"))
	}
	s.variables.Set(name, value)
	return Done()
}

func (s *coreState) DeleteVariable(name string) {
	s.variables.Delete(name)
}

func (s *coreState) GetFieldMapping(fieldPath Path) Outcome[FieldMapping] {
	if fieldPath.IsRoot() || !fieldPath.IsAbsolute() {
		return Err[FieldMapping](NewError(ErrArgumentInvalid, "get_field_mapping requires an absolute, non-root path"))
	}
	fm, ok := s.fieldMap.Get(fieldPath.String())
	if !ok {
		return Err[FieldMapping](NewError(ErrKeyNotFound, "no field mapping at "+fieldPath.String()))
	}
	return Ok(fm)
}

func (s *coreState) StoreBlockData(id BlockID, data any) {
	s.scratch.Set(id, data)
}

func (s *coreState) RetrieveBlockData(id BlockID) (any, bool) {
	return s.scratch.Get(id)
}

// resolveFieldPath combines the current path with fieldPath and
// validates the result is an absolute, non-root path, per spec.md
// §4.7's map_field argument validation and the field-mapping invariant
// of spec.md §3.
func (s *coreState) resolveFieldPath(fieldPath Path) Outcome[Path] {
	combined := s.path.Combine(fieldPath)
	if combined.IsRoot() || !combined.IsAbsolute() {
		return Err[Path](NewError(ErrArgumentInvalid, "map_field requires an absolute, non-root resulting path"))
	}
	return Ok(combined)
}

// checkFieldNotMapped fails with ErrDuplicateKey if absPath is already
// bound. Both MapField implementations call this before touching the
// reader/writer or the deferred queue, so a duplicate is rejected with
// no partial mutation (spec.md §8 property 5).
func (s *coreState) checkFieldNotMapped(absPath Path) Outcome[Unit] {
	if _, exists := s.fieldMap.Get(absPath.String()); exists {
		return Err[Unit](NewError(ErrDuplicateKey, "field already mapped at "+absPath.String()))
	}
	return Done()
}

// --- Decoding context ---

// DecodingContext binds a [BitReader] and a [TransactionalFieldWriter]
// and populates the logical field tree from a bit stream.
type DecodingContext struct {
	coreState
	reader      BitReader
	fieldWriter *DeferredFieldWriter
}

// NewDecodingContext builds a DecodingContext over reader, writing
// decoded fields into fieldWriter. logger may be nil.
func NewDecodingContext(reader BitReader, fieldWriter TransactionalFieldWriter, logger *zap.Logger) *DecodingContext {
	return &DecodingContext{
		coreState:   newCoreState(logger),
		reader:      reader,
		fieldWriter: NewDeferredFieldWriter(fieldWriter),
	}
}

// Position forwards to the bound reader.
func (c *DecodingContext) Position() int64 { return c.reader.Position() }

// Move forwards to the bound reader.
func (c *DecodingContext) Move(offset int64) Outcome[Unit] { return c.reader.Move(offset) }

// MapField reads length bits, converts them (substituting
// defaultValue on converter failure), queues the converted value for
// the field tree, and records the mapping.
func (c *DecodingContext) MapField(fieldPath Path, length int, converter BinaryValueConverter, defaultValue any) Outcome[Unit] {
	if length <= 0 {
		return Err[Unit](NewError(ErrArgumentInvalid, "field length must be positive"))
	}
	absPath, o := c.resolveFieldPath(fieldPath).Value()
	if !o {
		return Err[Unit](NewError(ErrArgumentInvalid, "map_field requires an absolute, non-root resulting path"))
	}
	if dup := c.checkFieldNotMapped(absPath); dup.IsErr() {
		return dup
	}
	bitPos := c.Position()
	raw := c.reader.Read(length)
	if raw.IsErr() {
		return Err[Unit](raw.Error())
	}
	rawValue := raw.Unwrap()
	converted := converter.ConvertFrom(c, rawValue).OnError(defaultValue).Unwrap()
	if o := c.fieldWriter.WriteField(absPath, converted); o.IsErr() {
		return o
	}
	return c.fieldMap.Add(absPath.String(), FieldMapping{
		Path: absPath, BitPosition: bitPos, RawValue: rawValue, ConvertedValue: converted,
	})
}

// BeginTransaction snapshots path, variables, field map, block
// scratch, the deferred field writer's queue, and the reader's
// position/cursor, composing them into one handle. No layer can fail
// to open, so the composed handle is always returned.
func (c *DecodingContext) BeginTransaction() Outcome[*Transaction] {
	savedPath := c.path
	startPos := c.reader.Position()
	root := NewTransaction(func() { c.path = savedPath }, nil, nil)
	root.RegisterTransaction(c.variables.BeginTransaction())
	root.RegisterTransaction(c.fieldMap.BeginTransaction())
	root.RegisterTransaction(c.scratch.BeginTransaction())
	root.RegisterTransaction(c.fieldWriter.BeginTransaction())
	root.RegisterTransaction(NewTransaction(func() {
		c.reader.Move(startPos - c.reader.Position())
	}, nil, nil))
	c.logger.Debug("begin_transaction", zap.String("path", savedPath.String()), zap.Int64("position", startPos))
	return Ok(root)
}

// Drain flushes the deferred field writer into the external field
// tree. Call once, after a top-level decode run has fully succeeded.
func (c *DecodingContext) Drain() Outcome[Unit] { return c.fieldWriter.Drain() }

// --- Encoding context ---

// EncodingContext binds a [DeferredBinaryWriter] and a [FieldReader]
// and produces a bit stream from the logical field tree.
type EncodingContext struct {
	coreState
	writer      *DeferredBinaryWriter
	fieldReader FieldReader
}

// NewEncodingContext builds an EncodingContext writing through writer,
// reading field values from fieldReader. logger may be nil.
func NewEncodingContext(writer BitWriter, fieldReader FieldReader, logger *zap.Logger) *EncodingContext {
	return &EncodingContext{
		coreState:   newCoreState(logger),
		writer:      NewDeferredBinaryWriter(writer),
		fieldReader: fieldReader,
	}
}

// Position returns the deferred writer's virtual cursor.
func (c *EncodingContext) Position() int64 { return c.writer.Position() }

// Move forwards to the deferred writer.
func (c *EncodingContext) Move(offset int64) Outcome[Unit] { return c.writer.Move(offset) }

// MapField reads the logical field value (substituting defaultValue on
// read failure), converts it to its on-wire form, appends it to the
// deferred writer, and records the mapping.
func (c *EncodingContext) MapField(fieldPath Path, length int, converter BinaryValueConverter, defaultValue any) Outcome[Unit] {
	if length <= 0 {
		return Err[Unit](NewError(ErrArgumentInvalid, "field length must be positive"))
	}
	absPath, o := c.resolveFieldPath(fieldPath).Value()
	if !o {
		return Err[Unit](NewError(ErrArgumentInvalid, "map_field requires an absolute, non-root resulting path"))
	}
	if dup := c.checkFieldNotMapped(absPath); dup.IsErr() {
		return dup
	}
	bitPos := c.Position()
	value := c.fieldReader.ReadField(absPath).OnError(defaultValue).Unwrap()
	rawOutcome := converter.ConvertTo(c, value, length)
	if rawOutcome.IsErr() {
		return Err[Unit](rawOutcome.Error())
	}
	rawValue := rawOutcome.Unwrap()
	if o := c.writer.Write(rawValue); o.IsErr() {
		return o
	}
	return c.fieldMap.Add(absPath.String(), FieldMapping{
		Path: absPath, BitPosition: bitPos, RawValue: rawValue, ConvertedValue: value,
	})
}

// BeginTransaction snapshots path, variables, field map, block
// scratch, and the deferred binary writer's queue, composing them into
// one handle.
func (c *EncodingContext) BeginTransaction() Outcome[*Transaction] {
	savedPath := c.path
	root := NewTransaction(func() { c.path = savedPath }, nil, nil)
	root.RegisterTransaction(c.variables.BeginTransaction())
	root.RegisterTransaction(c.fieldMap.BeginTransaction())
	root.RegisterTransaction(c.scratch.BeginTransaction())
	root.RegisterTransaction(c.writer.BeginTransaction())
	c.logger.Debug("begin_transaction", zap.String("path", savedPath.String()), zap.Int64("position", c.writer.Position()))
	return Ok(root)
}

// Drain flushes the deferred binary writer into the external bit
// stream. Call once, after a top-level encode run has fully succeeded.
func (c *EncodingContext) Drain() Outcome[Unit] { return c.writer.Drain() }
