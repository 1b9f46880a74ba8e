package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eternalrights/ssmp-go/internal/model"
	"github.com/eternalrights/ssmp-go/internal/repository"
)

var ErrDrugNotFound = errors.New("drug does not exist")

// DrugStore is the catalog store behind listing and lookups.
type DrugStore interface {
	SelectPage(ctx context.Context, q model.DrugQuery) ([]model.Drug, error)
	Count(ctx context.Context, q model.DrugQuery) (int, error)
	GetByID(ctx context.Context, id int64) (*model.Drug, error)
}

// DrugService handles drug catalog business logic.
type DrugService struct {
	drugs DrugStore
	users UserStore
}

// NewDrugService creates a new DrugService.
func NewDrugService(drugs DrugStore, users UserStore) *DrugService {
	return &DrugService{drugs: drugs, users: users}
}

// List returns a page of drugs matching the query plus pagination
// metadata. Items and total come from two separate queries over the same
// filter; the total may race concurrent writes, which is accepted.
func (s *DrugService) List(ctx context.Context, q model.DrugQuery) (model.PageResult[model.Drug], error) {
	items, err := s.drugs.SelectPage(ctx, q)
	if err != nil {
		slog.Error("drug page query failed", "error", err)
		return model.PageResult[model.Drug]{}, fmt.Errorf("listing drugs: %w", err)
	}

	total, err := s.drugs.Count(ctx, q)
	if err != nil {
		slog.Error("drug count query failed", "error", err)
		return model.PageResult[model.Drug]{}, fmt.Errorf("counting drugs: %w", err)
	}

	if items == nil {
		items = []model.Drug{}
	}

	return model.PageResult[model.Drug]{
		Items:      items,
		Total:      total,
		Page:       echoPage(q.Page),
		PageSize:   echoPageSize(q.PageSize, total),
		TotalPages: TotalPages(total, q.PageSize),
	}, nil
}

// GetByID returns a single drug or ErrDrugNotFound.
func (s *DrugService) GetByID(ctx context.Context, id int64) (*model.Drug, error) {
	drug, err := s.drugs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDrugNotFound) {
			return nil, ErrDrugNotFound
		}
		return nil, fmt.Errorf("fetching drug %d: %w", id, err)
	}
	return drug, nil
}

// GetInventoryRecord assembles the read-only stock view for a drug,
// resolving the creating user's display name with a second point lookup.
// A missing user name resolves to an empty string rather than failing
// the whole record.
func (s *DrugService) GetInventoryRecord(ctx context.Context, drugID int64) (model.InventoryRecord, error) {
	drug, err := s.GetByID(ctx, drugID)
	if err != nil {
		return model.InventoryRecord{}, err
	}

	name, err := s.users.GetNameByID(ctx, drug.CreateUser)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return model.InventoryRecord{}, fmt.Errorf("resolving creator name: %w", err)
		}
		name = ""
	}

	return model.InventoryRecord{
		ID:             drug.ID,
		DrugID:         drugID,
		Quantity:       drug.StockQuantity,
		BatchNumber:    drug.BatchNumber,
		ProductionDate: drug.CreateTime,
		ExpiryDate:     drug.ExpiryDate,
		CreateTime:     drug.CreateTime,
		CreateUser:     drug.CreateUser,
		CreateUserName: name,
	}, nil
}

// TotalPages computes ceil(total/pageSize) when pageSize is set and
// positive, else 0.
func TotalPages(total int, pageSize *int) int {
	if pageSize == nil || *pageSize <= 0 {
		return 0
	}
	return (total + *pageSize - 1) / *pageSize
}

func echoPage(page *int) int {
	if page == nil {
		return 1
	}
	return *page
}

// echoPageSize mirrors the requested page size, falling back to the
// total when unset so an unpaged request reads as "all in one page".
func echoPageSize(pageSize *int, total int) int {
	if pageSize == nil {
		return total
	}
	return *pageSize
}
