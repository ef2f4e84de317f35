package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-authenticator-bridge/models"
)

const (
	bridgeItemsTable = "bridge_items"

	// maxInsertRows bounds one INSERT statement: 200 rows of three
	// parameters stay well below SQLite's host parameter limit.
	maxInsertRows = 200
)

var (
	builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	recordColumns = []string{"pk", "id", "user_id", "model_data"}
)

// predicateConditions turns p into WHERE conditions, one per set field, in
// a fixed order.
func predicateConditions(p Predicate) []sq.Sqlizer {
	var conds []sq.Sqlizer
	if p.UserID != "" {
		conds = append(conds, sq.Eq{"user_id": p.UserID})
	}
	if p.ID != "" {
		conds = append(conds, sq.Eq{"id": p.ID})
	}
	if p.ExcludeUserID != "" {
		conds = append(conds, sq.NotEq{"user_id": p.ExcludeUserID})
	}
	return conds
}

func buildSelectRecordsQuery(p Predicate) (string, []any, error) {
	q := builder.Select(recordColumns...).From(bridgeItemsTable)
	for _, c := range predicateConditions(p) {
		q = q.Where(c)
	}
	return q.OrderBy("user_id", "id", "pk").ToSql()
}

func buildDeleteRecordsQuery(p Predicate) (string, []any, error) {
	q := builder.Delete(bridgeItemsTable)
	for _, c := range predicateConditions(p) {
		q = q.Where(c)
	}
	return q.Suffix("RETURNING pk").ToSql()
}

// buildInsertRecordsQuery inserts every record of rows in one statement and
// returns the stored rows. rows must not be empty.
func buildInsertRecordsQuery(rows []models.BridgeItemRecord) (string, []any, error) {
	q := builder.Insert(bridgeItemsTable).Columns("id", "user_id", "model_data")
	for _, r := range rows {
		q = q.Values(r.ID, r.UserID, r.ModelData)
	}
	return q.Suffix("RETURNING pk, id, user_id, model_data").ToSql()
}
