package util

import (
	"context"
	"database/sql"
)

func QueryReturnList(ctx context.Context, db *sql.DB, sqlText string, args ...any) (rows [][]string, err error) {
	//run sql and return rows of strings, NULL becomes "NULL"
	var cur *sql.Rows
	cur, err = db.QueryContext(ctx, sqlText, args...)
	if err != nil {
		return
	}
	defer cur.Close()

	cols, err := cur.Columns()
	if err != nil {
		return
	}

	values := make([]*sql.RawBytes, len(cols))
	valuesP := make([]interface{}, len(cols))
	for i := range values {
		valuesP[i] = &values[i]
	}

	for cur.Next() {
		err = cur.Scan(valuesP...)
		if err != nil {
			return
		}
		row := make([]string, len(cols)) //must be allocated per row, RawBytes are reused
		for i, v := range values {
			if v == nil {
				row[i] = "NULL"
			} else {
				row[i] = string(*v)
			}
		}

		rows = append(rows, row)
	}
	err = cur.Err()
	return
}

// QueryReturnColumn returns the first column of every row.
func QueryReturnColumn(ctx context.Context, db *sql.DB, sqlText string, args ...any) ([]string, error) {
	rows, err := QueryReturnList(ctx, db, sqlText, args...)
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(rows))
	for _, row := range rows {
		list = append(list, row[0])
	}
	return list, nil
}

func QueryReturnInt64(ctx context.Context, db *sql.DB, sqlText string, args ...any) (int64, error) {
	var v int64
	err := db.QueryRowContext(ctx, sqlText, args...).Scan(&v)
	return v, err
}

// QueryReturnNullString scans a single text value; ok is false for SQL NULL.
func QueryReturnNullString(ctx context.Context, db *sql.DB, sqlText string, args ...any) (v string, ok bool, err error) {
	var ns sql.NullString
	err = db.QueryRowContext(ctx, sqlText, args...).Scan(&ns)
	if err != nil {
		return "", false, err
	}
	return ns.String, ns.Valid, nil
}
