package returns

import "library-lending/internal/model"

// --- UseCase Inputs ---

type ConfirmInput struct {
	Token string
	Actor string
	Note  string
}

// --- UseCase Outputs ---

// LookupOutput is what the return desk sees before confirming: the
// request and, when still present, the item it holds.
type LookupOutput struct {
	Request model.LoanRequest
	Item    model.Item
}

type ConfirmOutput struct {
	Request model.LoanRequest
	Entry   model.AuditEntry
}
