package view

import "studydesk/internal/model"

// Resources returns the recommended reading list. It does not depend on the
// document yet; every document gets the same five entries.
func Resources(model.Document) []model.ExternalResource {
	return []model.ExternalResource{
		{
			ID:          "1",
			Title:       "Complete Guide to the Topic",
			Type:        model.ResourceArticle,
			URL:         "https://example.com/article1",
			Description: "A comprehensive article covering all aspects of the topic with examples and case studies.",
		},
		{
			ID:          "2",
			Title:       "Video Tutorial Series",
			Type:        model.ResourceVideo,
			URL:         "https://example.com/video1",
			Description: "An in-depth video series explaining key concepts with visual demonstrations.",
		},
		{
			ID:          "3",
			Title:       "Advanced Concepts Textbook",
			Type:        model.ResourceBook,
			URL:         "https://example.com/book1",
			Description: "A well-reviewed textbook that covers advanced topics and includes practice problems.",
		},
		{
			ID:          "4",
			Title:       "Interactive Learning Course",
			Type:        model.ResourceCourse,
			URL:         "https://example.com/course1",
			Description: "An online course with quizzes, assignments, and guided practice to master the material.",
		},
		{
			ID:          "5",
			Title:       "Recent Research Paper",
			Type:        model.ResourceArticle,
			URL:         "https://example.com/article2",
			Description: "A recent academic paper presenting new findings and analysis on the topic.",
		},
	}
}

// FilterResources keeps entries of type t. An empty t keeps everything.
func FilterResources(list []model.ExternalResource, t model.ResourceType) []model.ExternalResource {
	if t == "" {
		return list
	}
	out := make([]model.ExternalResource, 0, len(list))
	for _, r := range list {
		if r.Type == t {
			out = append(out, r)
		}
	}
	return out
}
