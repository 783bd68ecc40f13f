package store

import "errors"

var (
	// ErrFormNotFound is returned when no catalog record exists for the
	// requested form id.
	ErrFormNotFound = errors.New("form was not found")

	// ErrBuildingSQLQuery is returned when a query builder fails to render
	// SQL.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query fails to execute.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot be
	// started.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a transaction cannot be
	// committed.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when a result row cannot be scanned into a
	// record.
	ErrScanningRow = errors.New("failed to scan catalog row")
)
