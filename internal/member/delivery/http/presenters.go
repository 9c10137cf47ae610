package http

import (
	"library-lending/internal/member"
)

// --- Response DTOs ---

type checkResp struct {
	Exists      bool   `json:"exists"`
	DisplayName string `json:"display_name,omitempty"`
}

func (h *handler) newCheckResp(out member.CheckOutput) checkResp {
	return checkResp{
		Exists:      out.Exists,
		DisplayName: out.DisplayName,
	}
}

type importResp struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Invalid int `json:"invalid"`
}

func (h *handler) newImportResp(out member.ImportOutput) importResp {
	return importResp{
		Created: out.Created,
		Skipped: out.Skipped,
		Invalid: out.Invalid,
	}
}
