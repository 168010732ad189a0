package services

import "context"

// TxRunner runs a function inside a database transaction carried on the
// context. The concrete implementation lives beside the sql executor in the
// postgres plugin so both share one context key; tests substitute a
// pass-through fake.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}
