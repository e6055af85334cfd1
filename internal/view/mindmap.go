package view

import (
	"fmt"
	"strings"

	"studydesk/internal/model"
)

// concept branch sizes, in order
var branchSizes = []int{3, 2, 4}

// MindMap builds the concept tree rooted at the document name up to its first dot.
func MindMap(doc model.Document) *model.MindMapNode {
	label, _, _ := strings.Cut(doc.Name, ".")
	root := &model.MindMapNode{ID: "root", Label: label}

	for i, size := range branchSizes {
		n := i + 1
		branch := &model.MindMapNode{
			ID:    fmt.Sprintf("node%d", n),
			Label: fmt.Sprintf("Main Concept %d", n),
		}
		for j := 1; j <= size; j++ {
			branch.Children = append(branch.Children, &model.MindMapNode{
				ID:    fmt.Sprintf("node%d-%d", n, j),
				Label: fmt.Sprintf("Subconcept %d.%d", n, j),
			})
		}
		root.Children = append(root.Children, branch)
	}
	return root
}
