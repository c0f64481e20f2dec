// Package service holds the business logic between the HTTP layer and the
// store. Authorization mostly lives in the store's guarded statements; the
// services translate guard failures into caller-facing errors and handle
// the multi-step flows that need transactions.
package service

import (
	"time"

	"github.com/opencrew/taskhub/pkg/idx"
)

func parseID(s string) (idx.ID, error) {
	return idx.Parse(s)
}

func nowUTC() time.Time { return time.Now().UTC() }
