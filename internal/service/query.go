package service

import (
	"errors"
	"strings"

	goaway "github.com/TwiN/go-away"
)

// MaxQueryLength bounds the search query in runes.
const MaxQueryLength = 200

// Query validation errors.
var (
	ErrEmptyQuery   = errors.New("query is required")
	ErrQueryTooLong = errors.New("query is too long")
	ErrBlockedQuery = errors.New("query contains inappropriate language")
)

// QueryGuard rejects queries that should not be sent upstream.
type QueryGuard struct {
	blockProfanity bool
	detector       *goaway.ProfanityDetector
}

// NewQueryGuard creates a QueryGuard. With blockProfanity false only the
// empty and length checks apply. Blocking is off by default because the
// detector flags real dish names such as "Spotted Dick".
func NewQueryGuard(blockProfanity bool) *QueryGuard {
	return &QueryGuard{
		blockProfanity: blockProfanity,
		detector:       goaway.NewProfanityDetector().WithSanitizeLeetSpeak(true).WithSanitizeSpecialCharacters(true).WithSanitizeAccents(false),
	}
}

// Check returns the trimmed query or the reason it is rejected.
func (g *QueryGuard) Check(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}
	if len([]rune(query)) > MaxQueryLength {
		return "", ErrQueryTooLong
	}
	if g.blockProfanity && g.detector.IsProfane(query) {
		return "", ErrBlockedQuery
	}
	return query, nil
}
