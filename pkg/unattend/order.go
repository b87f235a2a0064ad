// pkg/unattend/order.go - ordering authority for synchronous command lists.

package unattend

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// NextOrder computes the Order value for the next command appended to
// list: the maximum of all parseable Order values among the list's
// direct children, plus one. Entries without an Order child or with an
// unparsable value contribute nothing; a list may legitimately contain
// hand-authored entries this tool never wrote.
//
// This is the sole ordering authority. Call it exactly once per
// insertion, immediately before writing that insertion's Order.
func NextOrder(list *etree.Element) int {
	max := 0
	for _, entry := range list.ChildElements() {
		order := findChild(entry, "Order", NamespaceUnattend)
		if order == nil {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(order.Text()))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max + 1
}
