// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClassification is the driver-neutral kind of a failed statement.
type ErrorClassification int

const (
	// Unclassified covers everything without a dedicated mapping.
	Unclassified ErrorClassification = iota
	// UniqueViolation is a UNIQUE or PRIMARY KEY conflict.
	UniqueViolation
	// ForeignKeyViolation is a reference to a missing parent row.
	ForeignKeyViolation
	// CheckViolation is a failed CHECK or NOT NULL constraint.
	CheckViolation
)

// PostgresErrorClassifier classifies *pgconn.PgError codes.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Unclassified
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ForeignKeyViolation
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return CheckViolation
	}

	return Unclassified
}

// SQLiteErrorClassifier classifies sqlite3.Error extended codes.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return Unclassified
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ForeignKeyViolation
	case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
		return CheckViolation
	}

	return Unclassified
}
