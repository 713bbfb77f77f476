package layout

import (
	"gioui.org/layout"
)

// Reverse the order of the provided flex children if the boolean is true.
func Reverse(shouldReverse bool, items ...layout.FlexChild) []layout.FlexChild {
	if !shouldReverse {
		return items
	}
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
	return items
}
