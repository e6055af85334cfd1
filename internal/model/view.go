package model

import "time"

// NotebookPage is one page of the generated study notebook.
type NotebookPage struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   int    `json:"order"`
}

// ResourceType classifies an external study resource.
type ResourceType string

const (
	ResourceArticle ResourceType = "article"
	ResourceBook    ResourceType = "book"
	ResourceVideo   ResourceType = "video"
	ResourceCourse  ResourceType = "course"
)

// ResourceTypes lists the resource filters in display order.
var ResourceTypes = []ResourceType{ResourceArticle, ResourceBook, ResourceVideo, ResourceCourse}

type ExternalResource struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Type        ResourceType `json:"type"`
	URL         string       `json:"url"`
	Description string       `json:"description"`
}

// MindMapNode is a labelled node of the concept tree.
type MindMapNode struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Children []*MindMapNode `json:"children,omitempty"`
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

type ChatMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Sender    Sender    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
