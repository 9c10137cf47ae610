package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"library-lending/internal/member"
	"library-lending/internal/member/repository"
)

// ImportCSV get-or-creates members from a CSV stream. Rows are keyed
// by email: a row whose email already exists is skipped, never
// updated. A row missing both a first name and an email is counted
// invalid and the import continues.
func (uc *implUseCase) ImportCSV(ctx context.Context, r io.Reader) (member.ImportOutput, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return member.ImportOutput{}, member.ErrBadCSV
	}
	cols, err := mapColumns(header)
	if err != nil {
		return member.ImportOutput{}, err
	}

	var out member.ImportOutput
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return out, member.ErrBadCSV
		}

		field := func(name string) string {
			idx, ok := cols[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		firstName := field("first_name")
		email := field("email")
		if firstName == "" || email == "" {
			out.Invalid++
			continue
		}

		existing, err := uc.repo.GetMemberByEmail(ctx, email)
		if err != nil {
			uc.l.Errorf(ctx, "uc.ImportCSV GetMemberByEmail: %v", err)
			return out, err
		}
		if existing.ID != 0 {
			out.Skipped++
			continue
		}

		if _, err := uc.repo.CreateMember(ctx, repository.CreateMemberOptions{
			FirstName:  firstName,
			Surname:    field("surname"),
			OtherNames: field("other_names"),
			Email:      email,
			Phone:      field("phone"),
			Residence:  field("residence"),
			Landmark:   field("landmark"),
		}); err != nil {
			uc.l.Errorf(ctx, "uc.ImportCSV CreateMember: %v", err)
			return out, err
		}
		out.Created++
	}
	return out, nil
}

// mapColumns resolves header names to positions. first_name and email
// are required; the rest are optional.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["first_name"]; !ok {
		return nil, member.ErrBadCSV
	}
	if _, ok := cols["email"]; !ok {
		return nil, member.ErrBadCSV
	}
	return cols, nil
}
