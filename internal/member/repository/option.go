package repository

import "time"

type CreateMemberOptions struct {
	FirstName   string
	Surname     string
	OtherNames  string
	DateOfBirth *time.Time
	Email       string
	Phone       string
	Residence   string
	Landmark    string
}
