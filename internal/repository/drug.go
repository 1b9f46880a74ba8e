package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/eternalrights/ssmp-go/internal/model"
)

var ErrDrugNotFound = errors.New("drug not found")

const drugColumns = `id, generic_name, image, category, specification, manufacturer,
	composition, indications, usage_dosage, precautions, expiry_date,
	shelf_status, stock_quantity, batch_number, create_user, create_time,
	update_user, update_time`

// drugSortColumns whitelists the sort keys accepted from the query
// string. Anything else falls back to the default ordering.
var drugSortColumns = map[string]string{
	"default": "id ASC",
	"name":    "generic_name ASC",
	"newest":  "create_time DESC",
	"stock":   "stock_quantity DESC",
}

// DrugRepository handles drug catalog persistence operations.
type DrugRepository struct {
	db *sql.DB
}

// NewDrugRepository creates a new DrugRepository.
func NewDrugRepository(db *sql.DB) *DrugRepository {
	return &DrugRepository{db: db}
}

// SelectPage retrieves a page of drugs matching the query filter. When
// the query carries no page/pageSize the whole matching set is returned.
func (r *DrugRepository) SelectPage(ctx context.Context, q model.DrugQuery) ([]model.Drug, error) {
	where, args := buildDrugFilter(q)

	var sb strings.Builder
	sb.WriteString(`SELECT ` + drugColumns + ` FROM drug`)
	sb.WriteString(where)
	sb.WriteString(" ORDER BY " + orderClause(q.Sort))

	if offset := q.Offset(); offset != nil {
		sb.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, *q.PageSize, *offset)
	}

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var drugs []model.Drug
	for rows.Next() {
		var d model.Drug
		if err := rows.Scan(
			&d.ID, &d.GenericName, &d.Image, &d.Category, &d.Specification,
			&d.Manufacturer, &d.Composition, &d.Indications, &d.UsageDosage,
			&d.Precautions, &d.ExpiryDate, &d.ShelfStatus, &d.StockQuantity,
			&d.BatchNumber, &d.CreateUser, &d.CreateTime, &d.UpdateUser, &d.UpdateTime,
		); err != nil {
			return nil, err
		}
		drugs = append(drugs, d)
	}

	return drugs, rows.Err()
}

// Count returns the number of drugs matching the query filter, ignoring
// paging. It runs outside any transaction shared with SelectPage, so the
// total may race concurrent writes.
func (r *DrugRepository) Count(ctx context.Context, q model.DrugQuery) (int, error) {
	where, args := buildDrugFilter(q)

	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drug`+where, args...).Scan(&total)
	if err != nil {
		return 0, err
	}

	return total, nil
}

// GetByID retrieves a drug by its ID.
func (r *DrugRepository) GetByID(ctx context.Context, id int64) (*model.Drug, error) {
	query := `SELECT ` + drugColumns + ` FROM drug WHERE id = ?`

	d := &model.Drug{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.GenericName, &d.Image, &d.Category, &d.Specification,
		&d.Manufacturer, &d.Composition, &d.Indications, &d.UsageDosage,
		&d.Precautions, &d.ExpiryDate, &d.ShelfStatus, &d.StockQuantity,
		&d.BatchNumber, &d.CreateUser, &d.CreateTime, &d.UpdateUser, &d.UpdateTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDrugNotFound
		}
		return nil, err
	}

	return d, nil
}

// buildDrugFilter renders the shared WHERE clause for SelectPage and
// Count so both queries always run against the same predicate.
func buildDrugFilter(q model.DrugQuery) (string, []any) {
	var conds []string
	var args []any

	if q.Keyword != "" {
		conds = append(conds, "(generic_name LIKE ? OR manufacturer LIKE ?)")
		kw := "%" + q.Keyword + "%"
		args = append(args, kw, kw)
	}
	if q.Category != nil {
		conds = append(conds, "category = ?")
		args = append(args, *q.Category)
	}
	if q.ShelfStatus != nil {
		conds = append(conds, "shelf_status = ?")
		args = append(args, *q.ShelfStatus)
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(sort string) string {
	if clause, ok := drugSortColumns[sort]; ok {
		return clause
	}
	return drugSortColumns["default"]
}
