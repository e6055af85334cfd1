package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"studydesk/internal/model"
	"studydesk/internal/upload"
)

var (
	ErrNotFound       = errors.New("document not found")
	ErrJobNotFound    = errors.New("upload job not found")
	ErrInvalidQuery   = errors.New("invalid query")
	ErrFileRequired   = upload.ErrFileRequired
	ErrInvalidSource  = upload.ErrInvalidSource
	ErrUploadsStopped = upload.ErrClosed
)

// RecentLimit is how many documents the landing page previews.
const RecentLimit = 3

// DocumentStore is the part of the document store the services use.
type DocumentStore interface {
	AddDocument(ctx context.Context, doc model.Document) error
	SelectDocument(id string) (model.Document, bool)
	CurrentDocument() (model.Document, bool)
	Documents() []model.Document
}

// Uploader runs simulated upload jobs.
type Uploader interface {
	StartJob(req upload.Request) (upload.Job, error)
	GetJob(id string) (upload.Job, bool)
}

// ListQuery filters and orders the past documents list.
type ListQuery struct {
	Q      string `query:"q" validate:"max=200"`
	Source string `query:"source" validate:"omitempty,upload_source"`
	Sort   string `query:"sort" validate:"omitempty,oneof=date name"`
	Order  string `query:"order" validate:"omitempty,oneof=asc desc"`
	Limit  int    `query:"limit" validate:"gte=0,lte=100"`
	Offset int    `query:"offset" validate:"gte=0"`
}

// DocumentList is the service-level DTO for the past documents page.
type DocumentList struct {
	Items   []model.Document `json:"data"`
	Total   int              `json:"total"`
	Sources []model.Source   `json:"sources"`
}

// UploadSource describes one upload entry point.
type UploadSource struct {
	Source  model.Source `json:"source"`
	Label   string       `json:"label"`
	Accept  string       `json:"accept"`
	Formats string       `json:"formats"`
}

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Landing is everything the landing page shows.
type Landing struct {
	Sources  []UploadSource   `json:"sources"`
	Recent   []model.Document `json:"recent"`
	More     int              `json:"more"`
	Features []Feature        `json:"features"`
}

// Tab is one view of the document page.
type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Tabs in display order. The notebook is shown first.
var Tabs = []Tab{
	{ID: "notebook", Label: "Notebook"},
	{ID: "resources", Label: "External Resources"},
	{ID: "mindmap", Label: "Mind Map"},
	{ID: "chat", Label: "Chat"},
}

type DocumentDetail struct {
	Document   model.Document `json:"document"`
	Tabs       []Tab          `json:"tabs"`
	DefaultTab string         `json:"defaultTab"`
}

var features = []Feature{
	{Title: "External Resources", Description: "Discover relevant books, articles, and videos related to your document."},
	{Title: "Notebook Layout", Description: "Get a structured notebook layout to help organize your thoughts and notes."},
	{Title: "Mind Maps", Description: "Visualize concepts and their relationships for better understanding."},
	{Title: "Knowledge Testing", Description: "Chat with our AI to test and reinforce your understanding of the material."},
}

// DescribeSource returns the landing page entry for src.
func DescribeSource(src model.Source) UploadSource {
	us := UploadSource{Source: src, Accept: ".pdf,.docx,.txt,.md", Formats: "PDF, DOCX, TXT, JPG, PNG"}
	switch src {
	case model.SourceComputer:
		us.Label = "Computer"
	case model.SourceGoogleDrive:
		us.Label = "Google Drive"
	case model.SourceImage:
		us.Label = "Image"
		us.Accept = "image/*"
	case model.SourceVideo:
		us.Label = "Video"
		us.Accept = "video/*"
		us.Formats += ", MP4, MOV"
	}
	return us
}

// DocumentService defines the use cases around the document list and uploads.
type DocumentService interface {
	// Landing returns upload entry points, a preview of the stored documents and the feature list.
	Landing(ctx context.Context) Landing

	// List returns the filtered, sorted documents plus every source present.
	List(ctx context.Context, q ListQuery) (*DocumentList, error)

	// Open selects the document and returns it with its tabs.
	Open(ctx context.Context, id string) (*DocumentDetail, error)

	// StartUpload begins a simulated upload that ends in AddDocument.
	StartUpload(ctx context.Context, req upload.Request) (upload.Job, error)

	// UploadStatus returns the current state of an upload job.
	UploadStatus(ctx context.Context, jobID string) (upload.Job, error)
}

type documentService struct {
	store     DocumentStore
	uploads   Uploader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDocumentService constructs a new DocumentService.
// The validator gains the upload_source tag; a registration failure is returned.
func NewDocumentService(store DocumentStore, uploads Uploader, validate *validator.Validate, logger *zap.Logger) (DocumentService, error) {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	err := validate.RegisterValidation("upload_source", func(fl validator.FieldLevel) bool {
		return model.Source(fl.Field().String()).Valid()
	})
	if err != nil {
		return nil, fmt.Errorf("register upload_source validation: %w", err)
	}
	return &documentService{store: store, uploads: uploads, validator: validate, logger: logger}, nil
}

func (s *documentService) Landing(_ context.Context) Landing {
	docs := s.store.Documents()

	sources := make([]UploadSource, 0, len(model.Sources))
	for _, src := range model.Sources {
		sources = append(sources, DescribeSource(src))
	}

	recent := docs
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	return Landing{
		Sources:  sources,
		Recent:   recent,
		More:     len(docs) - len(recent),
		Features: features,
	}
}

func (s *documentService) List(_ context.Context, q ListQuery) (*DocumentList, error) {
	if err := s.validator.Struct(q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
	}

	docs := s.store.Documents()
	sources := distinctSources(docs)

	needle := strings.ToLower(q.Q)
	filtered := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if needle != "" && !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		if q.Source != "" && string(d.Source) != q.Source {
			continue
		}
		filtered = append(filtered, d)
	}

	sortDocuments(filtered, q.Sort, q.Order)

	total := len(filtered)
	if q.Offset > 0 {
		if q.Offset >= len(filtered) {
			filtered = filtered[:0]
		} else {
			filtered = filtered[q.Offset:]
		}
	}
	if q.Limit > 0 && len(filtered) > q.Limit {
		filtered = filtered[:q.Limit]
	}

	return &DocumentList{Items: filtered, Total: total, Sources: sources}, nil
}

// sortDocuments orders by date (default) or name, descending unless order is asc.
// Names compare the way a reader expects, not by byte value.
func sortDocuments(docs []model.Document, by, order string) {
	dir := -1
	if order == "asc" {
		dir = 1
	}

	if by == "name" {
		col := collate.New(language.English)
		slices.SortStableFunc(docs, func(a, b model.Document) int {
			return dir * col.CompareString(a.Name, b.Name)
		})
		return
	}
	slices.SortStableFunc(docs, func(a, b model.Document) int {
		return dir * a.DateAdded.Compare(b.DateAdded)
	})
}

// distinctSources returns each source once, in order of first appearance.
func distinctSources(docs []model.Document) []model.Source {
	out := []model.Source{}
	seen := make(map[model.Source]bool)
	for _, d := range docs {
		if !seen[d.Source] {
			seen[d.Source] = true
			out = append(out, d.Source)
		}
	}
	return out
}

func (s *documentService) Open(_ context.Context, id string) (*DocumentDetail, error) {
	doc, ok := s.store.SelectDocument(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &DocumentDetail{Document: doc, Tabs: Tabs, DefaultTab: Tabs[0].ID}, nil
}

func (s *documentService) StartUpload(_ context.Context, req upload.Request) (upload.Job, error) {
	job, err := s.uploads.StartJob(req)
	if err != nil {
		return upload.Job{}, err
	}
	return job, nil
}

func (s *documentService) UploadStatus(_ context.Context, jobID string) (upload.Job, error) {
	job, ok := s.uploads.GetJob(jobID)
	if !ok {
		return upload.Job{}, ErrJobNotFound
	}
	return job, nil
}
