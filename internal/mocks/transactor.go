// Package mocks holds testify mocks of the repository and service interfaces.
package mocks

import (
	"context"

	"gorm.io/gorm"
)

// Transactor runs transactional callbacks inline with a nil handle, which
// the repository mocks ignore.
type Transactor struct {
	Transactions int
}

func (t *Transactor) Conn(ctx context.Context) *gorm.DB {
	return nil
}

func (t *Transactor) WithinTransaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	t.Transactions++
	return fn(nil)
}
