package http

import (
	"time"

	"library-lending/internal/catalog"
	"library-lending/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Limit int `form:"limit"`
}

func (r listReq) toInput() catalog.ListInput {
	return catalog.ListInput{Limit: r.Limit}
}

type searchReq struct {
	Query string `form:"q"`
	Limit int    `form:"limit"`
}

func (r searchReq) toInput() catalog.SearchInput {
	return catalog.SearchInput{Query: r.Query, Limit: r.Limit}
}

type createItemReq struct {
	Title            string `json:"title"              binding:"required,min=1,max=512"`
	Author           string `json:"author"             binding:"max=255"`
	Owner            string `json:"owner"              binding:"max=255"`
	Location         string `json:"location"           binding:"max=512"`
	Kind             string `json:"kind"               binding:"required,oneof=digital physical"`
	LoanDurationDays int    `json:"loan_duration_days" binding:"omitempty,min=1,max=365"`
	Keywords         string `json:"keywords"           binding:"max=1000"`
	CoverURL         string `json:"cover_url"          binding:"omitempty,url,max=1000"`
}

func (r createItemReq) toInput() catalog.CreateItemInput {
	return catalog.CreateItemInput{
		Title:            r.Title,
		Author:           r.Author,
		Owner:            r.Owner,
		Location:         r.Location,
		Kind:             model.ItemKind(r.Kind),
		LoanDurationDays: r.LoanDurationDays,
		Keywords:         r.Keywords,
		CoverURL:         r.CoverURL,
	}
}

type updateItemReq struct {
	ID               int64  `json:"-"` // populated from the URI param
	Title            string `json:"title"              binding:"required,min=1,max=512"`
	Author           string `json:"author"             binding:"max=255"`
	Owner            string `json:"owner"              binding:"max=255"`
	Location         string `json:"location"           binding:"max=512"`
	LoanDurationDays int    `json:"loan_duration_days" binding:"omitempty,min=1,max=365"`
	Keywords         string `json:"keywords"           binding:"max=1000"`
	CoverURL         string `json:"cover_url"          binding:"omitempty,url,max=1000"`
}

func (r updateItemReq) toInput() catalog.UpdateItemInput {
	return catalog.UpdateItemInput{
		ID:               r.ID,
		Title:            r.Title,
		Author:           r.Author,
		Owner:            r.Owner,
		Location:         r.Location,
		LoanDurationDays: r.LoanDurationDays,
		Keywords:         r.Keywords,
		CoverURL:         r.CoverURL,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Author           string    `json:"author,omitempty"`
	Owner            string    `json:"owner,omitempty"`
	Location         string    `json:"location,omitempty"`
	Kind             string    `json:"kind"`
	LoanDurationDays int       `json:"loan_duration_days"`
	Availability     string    `json:"availability"`
	Keywords         string    `json:"keywords,omitempty"`
	CoverURL         string    `json:"cover_url,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func newItemResp(item model.Item) itemResp {
	return itemResp{
		ID:               item.ID,
		Title:            item.Title,
		Author:           item.Author,
		Owner:            item.Owner,
		Location:         item.Location,
		Kind:             string(item.Kind),
		LoanDurationDays: item.LoanDurationDays,
		Availability:     string(item.Availability),
		Keywords:         item.Keywords,
		CoverURL:         item.CoverURL,
		CreatedAt:        item.CreatedAt,
	}
}

type listResp struct {
	Items []itemResp `json:"items"`
}

func (h *handler) newListResp(out catalog.ListOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Items: items}
}

type itemDetailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newItemDetailResp(out catalog.ItemOutput) itemDetailResp {
	return itemDetailResp{Item: newItemResp(out.Item)}
}
