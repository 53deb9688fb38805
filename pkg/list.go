package pkg

import (
	"errors"
	"strings"
)

const listSeparator = ","

var ErrListItemContainsSeparator = errors.New("list item must not contain a comma")

// SplitList splits a comma-delimited column value into its items.
// Blank items are dropped, and an empty value yields an empty, non-nil slice.
func SplitList(value string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(value, listSeparator) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) (string, error) {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if strings.Contains(item, listSeparator) {
			return "", ErrListItemContainsSeparator
		}
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		cleaned = append(cleaned, item)
	}
	return strings.Join(cleaned, listSeparator), nil
}
