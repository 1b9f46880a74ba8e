package model

// Drug represents a catalog entry in the drug table. JSON field names
// are snake_case to match the storefront client.
type Drug struct {
	ID            int64  `json:"id"`
	GenericName   string `json:"generic_name"`
	Image         string `json:"image"`
	Category      int    `json:"category"`
	Specification string `json:"specification"`
	Manufacturer  string `json:"manufacturer"`
	Composition   string `json:"composition"`
	Indications   string `json:"indications"`
	UsageDosage   string `json:"usage_dosage"`
	Precautions   string `json:"precautions"`
	ExpiryDate    string `json:"expiry_date"`
	ShelfStatus   int    `json:"shelf_status"`
	StockQuantity int    `json:"stock_quantity"`
	BatchNumber   string `json:"batch_number"`
	CreateUser    int64  `json:"create_user"`
	CreateTime    string `json:"create_time"`
	UpdateUser    int64  `json:"update_user"`
	UpdateTime    string `json:"update_time"`
}

// Drug categories as stored in the category column.
const (
	CategoryOTC     = 1
	CategoryRx      = 2
	CategoryMedical = 3
	CategoryHealth  = 4
)

// Shelf status codes.
const (
	ShelfStatusOn  = 1
	ShelfStatusOff = 2
)

// DrugQuery carries the filter and paging parameters of a catalog
// listing request. Pointer fields distinguish "absent" from zero.
type DrugQuery struct {
	Keyword     string
	Category    *int
	ShelfStatus *int
	Sort        string
	Page        *int
	PageSize    *int
}

// Offset derives the zero-based row skip count (page-1)*pageSize.
// It is defined only when both page and pageSize are set and page >= 1;
// otherwise nil, and the store applies no limit.
func (q DrugQuery) Offset() *int {
	if q.Page == nil || q.PageSize == nil || *q.Page < 1 {
		return nil
	}
	offset := (*q.Page - 1) * *q.PageSize
	return &offset
}

// PageResult is the envelope returned by paginated listings.
type PageResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// InventoryRecord is a read-only stock view derived from a drug and its
// creating user.
type InventoryRecord struct {
	ID             int64  `json:"id"`
	DrugID         int64  `json:"drugId"`
	Quantity       int    `json:"quantity"`
	BatchNumber    string `json:"batchNumber"`
	ProductionDate string `json:"productionDate"`
	ExpiryDate     string `json:"expiryDate"`
	CreateTime     string `json:"createTime"`
	CreateUser     int64  `json:"createUser"`
	CreateUserName string `json:"createUserName"`
}
