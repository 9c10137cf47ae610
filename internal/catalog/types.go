package catalog

import "library-lending/internal/model"

// --- UseCase Inputs ---

type CreateItemInput struct {
	Title            string
	Author           string
	Owner            string
	Location         string
	Kind             model.ItemKind
	LoanDurationDays int
	Keywords         string
	CoverURL         string
}

type UpdateItemInput struct {
	ID               int64
	Title            string
	Author           string
	Owner            string
	Location         string
	LoanDurationDays int
	Keywords         string
	CoverURL         string
}

type ListInput struct {
	Limit int
}

type SearchInput struct {
	Query string
	Limit int
}

// --- UseCase Outputs ---

type ItemOutput struct {
	Item model.Item
}

type ListOutput struct {
	Items []model.Item
}
