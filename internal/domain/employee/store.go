package employee

import "hris/internal/platform/querier"

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

type scanner interface {
	Scan(dest ...any) error
}
