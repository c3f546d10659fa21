// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/restful-users/models"
)

const usersTable = "users"

var userColumns = []string{"id", "name", "email", "password", "email_verified_at", "created_at"}

func (r *userRepository) createUserQuery(user models.User) (string, []any, error) {
	return r.db.builder.
		Insert(usersTable).
		Columns("name", "email", "password", "email_verified_at", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.EmailVerifiedAt, user.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func (r *userRepository) findUserQuery(where sq.Eq) (string, []any, error) {
	return r.db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func (r *userRepository) countUsersQuery() (string, []any, error) {
	return r.db.builder.
		Select("COUNT(*)").
		From(usersTable).
		ToSql()
}

func (r *userRepository) listUsersQuery(limit, offset uint64) (string, []any, error) {
	return r.db.builder.
		Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func (r *userRepository) deleteUserQuery(userID int64) (string, []any, error) {
	return r.db.builder.
		Delete(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}
