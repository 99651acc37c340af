package pgsql

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/payment_recon_app/internal/apperrors"
	"github.com/SscSPs/payment_recon_app/internal/utils/pagination"
)

// listQuery assembles a filtered, newest-first, keyset-paginated SELECT.
type listQuery struct {
	selectFrom string
	idColumn   string
	conds      []string
	args       []any
}

func newListQuery(selectFrom, idColumn string) *listQuery {
	return &listQuery{selectFrom: selectFrom, idColumn: idColumn}
}

// where adds a condition; "?" in cond is replaced by the argument placeholder.
func (q *listQuery) where(cond string, arg any) {
	q.args = append(q.args, arg)
	q.conds = append(q.conds, strings.Replace(cond, "?", "$"+strconv.Itoa(len(q.args)), 1))
}

// after restricts the rows to those following the cursor in (created_at DESC, id DESC) order.
func (q *listQuery) after(nextToken *string) error {
	if nextToken == nil || *nextToken == "" {
		return nil
	}
	cursor, err := pagination.DecodeCursorToken(*nextToken)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	q.args = append(q.args, cursor.CreatedAt, cursor.ID)
	q.conds = append(q.conds, fmt.Sprintf("(created_at, %s) < ($%d, $%d)", q.idColumn, len(q.args)-1, len(q.args)))
	return nil
}

// build returns the SQL and args, fetching one extra row to detect a next page.
func (q *listQuery) build(limit int) (string, []any) {
	var sb strings.Builder
	sb.WriteString(q.selectFrom)
	if len(q.conds) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conds, " AND "))
	}
	sb.WriteString(" ORDER BY created_at DESC, " + q.idColumn + " DESC")
	args := append(q.args, limit+1)
	sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	return sb.String(), args
}

// trimPage drops the look-ahead row and returns the token for the next page.
func trimPage[T any](rows []T, limit int, key func(T) (time.Time, string)) ([]T, *string) {
	if len(rows) <= limit {
		return rows, nil
	}
	rows = rows[:limit]
	createdAt, id := key(rows[len(rows)-1])
	token := pagination.EncodeCursorToken(createdAt, id)
	return rows, &token
}
