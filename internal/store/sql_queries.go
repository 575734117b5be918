// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (nickname, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, nickname, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, nickname, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	updatePasswordHash = `UPDATE users
    SET password_hash = $2
    WHERE email = $1;`

	upsertResetCode = `INSERT INTO password_resets (email, reset_code, expires_at)
    VALUES ($1, $2, $3)
    ON CONFLICT (email) DO UPDATE
    SET reset_code = EXCLUDED.reset_code, expires_at = EXCLUDED.expires_at;`

	findValidResetCode = `SELECT email, reset_code, expires_at
    FROM password_resets
    WHERE email = $1 AND reset_code = $2 AND expires_at > $3;`

	findValidResetCodeForUpdate = `SELECT email, reset_code, expires_at
    FROM password_resets
    WHERE email = $1 AND reset_code = $2 AND expires_at > $3
    FOR UPDATE;`

	deleteResetCodeByEmail = `DELETE FROM password_resets
    WHERE email = $1;`

	createResetGrant = `INSERT INTO password_reset_grants (grant_id, email, expires_at)
    VALUES ($1, $2, $3);`

	consumeResetGrant = `DELETE FROM password_reset_grants
    WHERE grant_id = $1 AND email = $2 AND expires_at > $3
    RETURNING grant_id, email, expires_at;`

	createCourse = `INSERT INTO courses (name)
    VALUES ($1)
    RETURNING course_id, name;`
)

// psql is the statement builder for dynamically shaped queries.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListCoursesQuery returns the course listing query for page.
// Zero Limit means no LIMIT clause.
func buildListCoursesQuery(limit, offset uint64) (string, []any, error) {
	query := psql.
		Select("course_id", "name").
		From("courses").
		OrderBy("course_id")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	return query.ToSql()
}

// buildDeleteExpiredQuery returns DELETE FROM table WHERE expires_at <= now.
func buildDeleteExpiredQuery(table string, now any) (string, []any, error) {
	return psql.
		Delete(table).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
