package reminder

import "errors"

var ErrUnknownCategory = errors.New("unknown category")

type Category string

// CategorySet is the configured closed set of categories a reminder
// may belong to. It is supplied at process start.
type CategorySet map[Category]struct{}

func NewCategorySet(names ...string) CategorySet {
	set := make(CategorySet, len(names))
	for _, name := range names {
		set[Category(name)] = struct{}{}
	}
	return set
}

func (s CategorySet) Contains(category Category) bool {
	_, ok := s[category]
	return ok
}

func (s CategorySet) Validate(category Category) error {
	if !s.Contains(category) {
		return ErrUnknownCategory
	}
	return nil
}
