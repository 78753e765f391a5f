// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// FieldBlock is the only leaf block that mutates the field map: it
// evaluates its four closures against the context and delegates to
// [CodingContext.MapField], grounded on the teacher's Perform (suspend
// a single effectful operation, let the context do the work).
type FieldBlock struct {
	PathFn      PathFn
	LengthFn    LengthFn
	DefaultFn   DefaultFn
	ConverterFn ConverterFn
}

// Field constructs a FieldBlock from its four late-bound closures.
func Field(pathFn PathFn, lengthFn LengthFn, defaultFn DefaultFn, converterFn ConverterFn) *FieldBlock {
	return &FieldBlock{PathFn: pathFn, LengthFn: lengthFn, DefaultFn: defaultFn, ConverterFn: converterFn}
}

// Process evaluates the field's closures and maps it.
func (b *FieldBlock) Process(ctx CodingContext) Outcome[Unit] {
	path := b.PathFn(ctx)
	length := b.LengthFn(ctx)
	def := b.DefaultFn(ctx)
	converter := b.ConverterFn(ctx)
	return ctx.MapField(path, length, converter, def)
}
