// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/VacTuzX-dot/xfrontend/models"
)

const (
	sessionsTable = "sessions"
	sessionRowID  = 1
)

// sqlite takes "?" placeholders, the squirrel default.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSaveSessionQuery(s models.Session) (string, []any, error) {
	return psql.
		Insert(sessionsTable).
		Columns("id", "username", "token", "created_at").
		Values(sessionRowID, s.Username, s.Token, s.CreatedAt.UTC()).
		Suffix("ON CONFLICT(id) DO UPDATE SET username = excluded.username, token = excluded.token, created_at = excluded.created_at").
		ToSql()
}

func buildLoadSessionQuery() (string, []any, error) {
	return psql.
		Select("username", "token", "created_at").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return psql.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}
