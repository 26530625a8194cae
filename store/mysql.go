// Copyright 2017-2026, Square, Inc.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/go-sql-driver/mysql"

	serr "github.com/square/shadergraph/errors"
	"github.com/square/shadergraph/proto"
)

// Duplicate entry for key, see
// https://dev.mysql.com/doc/refman/5.7/en/server-error-reference.html
const errDupEntry = 1062

type mysqlRepo struct {
	db *sql.DB
}

// NewMySQLRepo returns a repo that stores shaders in the shaders table (see
// schema.sql). db must be opened with parseTime enabled.
func NewMySQLRepo(db *sql.DB) Repo {
	return &mysqlRepo{
		db: db,
	}
}

func (r *mysqlRepo) Create(s proto.Shader) error {
	props, err := json.Marshal(s.Properties)
	if err != nil {
		return err
	}
	skipped, err := marshalNull(s.Skipped, len(s.Skipped))
	if err != nil {
		return err
	}
	errs, err := marshalNull(s.Errors, len(s.Errors))
	if err != nil {
		return err
	}
	warnings, err := marshalNull(s.Warnings, len(s.Warnings))
	if err != nil {
		return err
	}

	q := "INSERT INTO shaders (shader_id, document, version, upgrades, `precision`, state, source, " +
		"property_block, properties, skipped, errors, warnings, created_at) " +
		"VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err = r.db.Exec(q,
		s.Id,
		s.Document,
		s.Version,
		s.Upgrades,
		s.Precision,
		s.State,
		s.Source,
		s.PropertyBlock,
		props,
		skipped,
		errs,
		warnings,
		s.CreatedAt,
	)
	if err != nil {
		if merr, ok := err.(*mysql.MySQLError); ok && merr.Number == errDupEntry {
			return ErrConflict
		}
		return serr.NewDbError(err, "INSERT shaders")
	}
	return nil
}

const selectShader = "SELECT shader_id, document, version, upgrades, `precision`, state, source, " +
	"property_block, properties, skipped, errors, warnings, created_at FROM shaders"

func (r *mysqlRepo) Get(id string) (proto.Shader, error) {
	s, err := scanShader(r.db.QueryRow(selectShader+" WHERE shader_id = ?", id))
	switch {
	case err == sql.ErrNoRows:
		return s, serr.ShaderNotFound{ShaderId: id}
	case err != nil:
		return s, serr.NewDbError(err, "SELECT shaders")
	}
	return s, nil
}

func (r *mysqlRepo) List(f proto.ShaderFilter) ([]proto.Shader, error) {
	q := selectShader
	args := []interface{}{}
	if f.Document != "" {
		q += " WHERE document = ?"
		args = append(args, f.Document)
	}
	q += " ORDER BY created_at DESC, shader_id"
	if f.Limit > 0 {
		q += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, serr.NewDbError(err, "SELECT shaders")
	}
	defer rows.Close()

	shaders := []proto.Shader{}
	for rows.Next() {
		s, err := scanShader(rows)
		if err != nil {
			return nil, serr.NewDbError(err, "SELECT shaders")
		}
		shaders = append(shaders, s)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.NewDbError(err, "SELECT shaders")
	}
	return shaders, nil
}

func (r *mysqlRepo) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM shaders WHERE shader_id = ?", id)
	if err != nil {
		return serr.NewDbError(err, "DELETE shaders")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return serr.NewDbError(err, "DELETE shaders")
	}
	if n == 0 {
		return serr.ShaderNotFound{ShaderId: id}
	}
	return nil
}

// ------------------------------------------------------------------------- //

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanShader(row scanner) (proto.Shader, error) {
	var s proto.Shader
	var props []byte
	var skipped, errs, warnings []byte // nullable columns
	err := row.Scan(
		&s.Id,
		&s.Document,
		&s.Version,
		&s.Upgrades,
		&s.Precision,
		&s.State,
		&s.Source,
		&s.PropertyBlock,
		&props,
		&skipped,
		&errs,
		&warnings,
		&s.CreatedAt,
	)
	if err != nil {
		return s, err
	}

	if err := json.Unmarshal(props, &s.Properties); err != nil {
		return s, err
	}
	if skipped != nil {
		if err := json.Unmarshal(skipped, &s.Skipped); err != nil {
			return s, err
		}
	}
	if errs != nil {
		if err := json.Unmarshal(errs, &s.Errors); err != nil {
			return s, err
		}
	}
	if warnings != nil {
		if err := json.Unmarshal(warnings, &s.Warnings); err != nil {
			return s, err
		}
	}
	return s, nil
}

// marshalNull returns v as JSON, or nil for SQL NULL when it has no elements.
func marshalNull(v interface{}, n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return json.Marshal(v)
}
