package middleware

import (
	"library-lending/pkg/log"
)

type Middleware struct {
	l        log.Logger
	staffKey string
}

func New(l log.Logger, staffKey string) Middleware {
	return Middleware{
		l:        l,
		staffKey: staffKey,
	}
}
