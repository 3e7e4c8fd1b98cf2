package storage

import "database/sql"

// rowsAffectedOr returns notFound when res touched no rows, so callers can
// tell an absent id apart from a persistence failure.
func rowsAffectedOr(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
