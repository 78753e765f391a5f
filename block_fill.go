// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package binary

// FillBlock repeats Inner until it fails, wrapping each iteration in
// its own transaction: a successful iteration commits, a failing one
// rolls back and the overall outcome is still success — "parse as many
// as fit," with the final failed attempt left traceless. Grounded on
// the teacher's Bracket (resource.go): acquire a transaction, run the
// body through an error-capturing runner, guarantee the matching
// release (commit or rollback) regardless of outcome.
type FillBlock struct {
	Inner Block
}

// Fill constructs a FillBlock around inner.
func Fill(inner Block) *FillBlock {
	return &FillBlock{Inner: inner}
}

// Process runs Inner repeatedly until it fails, returning success; the
// only failure it returns is one from opening an iteration's
// transaction.
func (b *FillBlock) Process(ctx CodingContext) Outcome[Unit] {
	for {
		txOutcome := ctx.BeginTransaction()
		if txOutcome.IsErr() {
			return Err[Unit](txOutcome.Error())
		}
		tx := txOutcome.Unwrap()
		if result := b.Inner.Process(ctx); result.IsErr() {
			tx.Rollback()
			return Done()
		}
		tx.Commit()
	}
}
