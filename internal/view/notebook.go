package view

import (
	"fmt"

	"studydesk/internal/model"
)

// Notebook builds the four study pages for doc.
func Notebook(doc model.Document) []model.NotebookPage {
	return []model.NotebookPage{
		{
			ID:      "1",
			Title:   "Summary",
			Content: fmt.Sprintf("This notebook summarizes key points from \"%s\". The document covers important concepts that we've organized into a structured format for easier learning and retention.", doc.Name),
			Order:   1,
		},
		{
			ID:      "2",
			Title:   "Key Concepts",
			Content: "Here are the main concepts covered in the document:\n\n- Concept 1: Description and explanation\n- Concept 2: Description and explanation\n- Concept 3: Description and explanation",
			Order:   2,
		},
		{
			ID:      "3",
			Title:   "Important Details",
			Content: "This section highlights important details that support the main concepts:\n\n1. Detail point one\n2. Detail point two\n3. Detail point three\n\nThese details provide context and depth to the key concepts.",
			Order:   3,
		},
		{
			ID:      "4",
			Title:   "Study Questions",
			Content: "Test your understanding with these questions:\n\n1. Question about concept 1?\n2. Question about concept 2?\n3. Question about the relationship between concepts?",
			Order:   4,
		},
	}
}

// Page is one notebook page with its position among the others.
type Page struct {
	Page    model.NotebookPage `json:"page"`
	Number  int                `json:"number"`
	Total   int                `json:"total"`
	HasPrev bool               `json:"hasPrev"`
	HasNext bool               `json:"hasNext"`
}

// PageAt returns the 1-based page n. Out of range numbers are clamped to the
// first or last page, the way the pager buttons stop at either end.
func PageAt(pages []model.NotebookPage, n int) (Page, bool) {
	if len(pages) == 0 {
		return Page{}, false
	}
	if n < 1 {
		n = 1
	}
	if n > len(pages) {
		n = len(pages)
	}
	return Page{
		Page:    pages[n-1],
		Number:  n,
		Total:   len(pages),
		HasPrev: n > 1,
		HasNext: n < len(pages),
	}, true
}
