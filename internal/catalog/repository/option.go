package repository

import "library-lending/internal/model"

type CreateItemOptions struct {
	Title            string
	Author           string
	Owner            string
	Location         string
	Kind             model.ItemKind
	LoanDurationDays int
	Availability     model.Availability
	Keywords         string
	CoverURL         string
}

type SearchItemsOptions struct {
	Query string
	Limit int
}

type UpdateItemOptions struct {
	ID               int64
	Title            string
	Author           string
	Owner            string
	Location         string
	LoanDurationDays int
	Keywords         string
	CoverURL         string
}
