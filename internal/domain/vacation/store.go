package vacation

import "hrdesk/internal/platform/querier"

type Store struct {
	DB               querier.Querier
	DefaultTotalDays float64
}

func NewStore(db querier.Querier, defaultTotalDays float64) *Store {
	return &Store{DB: db, DefaultTotalDays: defaultTotalDays}
}
