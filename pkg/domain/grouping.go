package domain

import "sort"

// GroupByParent partitions nodes into groups keyed by their parent node.
// Nodes without a parent are dropped silently. Group order follows the
// input order of the nodes within each group.
func GroupByParent(nodes []*Node) map[*Node][]*Node {
	groups := make(map[*Node][]*Node)
	for _, node := range nodes {
		if node.parent == nil {
			continue
		}
		groups[node.parent] = append(groups[node.parent], node)
	}
	return groups
}

// IndexesGroupedByParent partitions nodes by parent, like GroupByParent, but
// each group holds the sorted, deduplicated child indices the grouped nodes
// occupy within the shared parent. Nodes without a parent, or whose parent
// does not actually list them, are dropped silently.
func IndexesGroupedByParent(nodes []*Node) map[*Node][]int {
	indexes := make(map[*Node][]int)
	for parent, group := range GroupByParent(nodes) {
		seen := make(map[int]bool)
		for _, node := range group {
			if i := parent.IndexOfChild(node); i >= 0 && !seen[i] {
				seen[i] = true
				indexes[parent] = append(indexes[parent], i)
			}
		}
		sort.Ints(indexes[parent])
	}
	return indexes
}
