package category

import "errors"

var (
	ErrEmptyRuleTable  = errors.New("category rule table is empty")
	ErrInvalidRuleTag  = errors.New("category rule tag is required")
	ErrRuleWithoutKeys = errors.New("category rule has no keywords")
)
