// Package docs holds the OpenAPI document served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "tags": ["documents"],
                "summary": "Landing page data",
                "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Landing"}}}
            }
        },
        "/past-documents": {
            "get": {
                "tags": ["documents"],
                "summary": "Past documents",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "name contains, case-insensitive", "name": "q", "in": "query"},
                    {"type": "string", "description": "computer, google-drive, image or video", "name": "source", "in": "query"},
                    {"type": "string", "description": "date or name", "name": "sort", "in": "query"},
                    {"type": "string", "description": "asc or desc", "name": "order", "in": "query"},
                    {"type": "integer", "description": "page size, 0 for all", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "items to skip", "name": "offset", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DocumentList"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/document/{id}": {
            "get": {
                "tags": ["documents"],
                "summary": "Open a document",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "document id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.DocumentDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/document/{id}/notebook": {
            "get": {
                "description": "Waits out the simulated generation unless wait=false. With page set, returns that page and its neighbours.",
                "tags": ["views"],
                "summary": "Notebook pages",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "document id", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "1-based page", "name": "page", "in": "query"},
                    {"type": "boolean", "description": "block until generated (default true)", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.viewResponse"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.viewResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/document/{id}/resources": {
            "get": {
                "tags": ["views"],
                "summary": "External resources",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "document id", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "article, book, video or course", "name": "type", "in": "query"},
                    {"type": "boolean", "description": "block until generated (default true)", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.viewResponse"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.viewResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/document/{id}/mindmap": {
            "get": {
                "tags": ["views"],
                "summary": "Mind map",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "document id", "name": "id", "in": "path", "required": true},
                    {"type": "boolean", "description": "block until generated (default true)", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.viewResponse"}},
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/handler.viewResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/document/{id}/chat": {
            "post": {
                "tags": ["chat"],
                "summary": "Start a chat about a document",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "document id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/chat/{sessionId}": {
            "get": {
                "tags": ["chat"],
                "summary": "Chat messages",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "chat session id", "name": "sessionId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            },
            "delete": {
                "tags": ["chat"],
                "summary": "End a chat",
                "parameters": [{"type": "string", "description": "chat session id", "name": "sessionId", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/chat/{sessionId}/messages": {
            "post": {
                "description": "The user message is appended at once; the assistant reply follows after the simulated delay.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {"type": "string", "description": "chat session id", "name": "sessionId", "in": "path", "required": true},
                    {"description": "message", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.sendMessageRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/view.Snapshot"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/uploads": {
            "post": {
                "description": "Starts a simulated upload. Poll the returned job until it is complete, then follow its redirect.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["uploads"],
                "summary": "Upload a document",
                "parameters": [
                    {"type": "file", "description": "document", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "computer (default), google-drive, image or video", "name": "source", "in": "formData"}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/upload.Job"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/uploads/{jobId}": {
            "get": {
                "tags": ["uploads"],
                "summary": "Upload progress",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "description": "upload job id", "name": "jobId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/upload.Job"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {"summary": "Snapshot backend health", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/healthz": {
            "get": {"summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "back": {"type": "string"}
            }
        },
        "handler.errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {"$ref": "#/definitions/handler.errorEnvelope"}
            }
        },
        "handler.sendMessageRequest": {
            "type": "object",
            "properties": {"content": {"type": "string"}}
        },
        "handler.viewResponse": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["pending", "ready", "absent"]},
                "data": {}
            }
        },
        "model.Document": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "type": {"type": "string"},
                "content": {"type": "string"},
                "dateAdded": {"type": "string", "format": "date-time"},
                "source": {"type": "string", "enum": ["computer", "google-drive", "image", "video"]}
            }
        },
        "model.ChatMessage": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "content": {"type": "string"},
                "sender": {"type": "string", "enum": ["user", "ai"]},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "service.UploadSource": {
            "type": "object",
            "properties": {
                "source": {"type": "string"},
                "label": {"type": "string"},
                "accept": {"type": "string"},
                "formats": {"type": "string"}
            }
        },
        "service.Feature": {
            "type": "object",
            "properties": {"title": {"type": "string"}, "description": {"type": "string"}}
        },
        "service.Landing": {
            "type": "object",
            "properties": {
                "sources": {"type": "array", "items": {"$ref": "#/definitions/service.UploadSource"}},
                "recent": {"type": "array", "items": {"$ref": "#/definitions/model.Document"}},
                "more": {"type": "integer"},
                "features": {"type": "array", "items": {"$ref": "#/definitions/service.Feature"}}
            }
        },
        "service.DocumentList": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/model.Document"}},
                "total": {"type": "integer"},
                "sources": {"type": "array", "items": {"type": "string"}}
            }
        },
        "service.Tab": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "label": {"type": "string"}}
        },
        "service.DocumentDetail": {
            "type": "object",
            "properties": {
                "document": {"$ref": "#/definitions/model.Document"},
                "tabs": {"type": "array", "items": {"$ref": "#/definitions/service.Tab"}},
                "defaultTab": {"type": "string"}
            }
        },
        "upload.Job": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fileName": {"type": "string"},
                "contentType": {"type": "string"},
                "source": {"type": "string"},
                "size": {"type": "integer"},
                "status": {"type": "string", "enum": ["processing", "complete", "error"]},
                "progress": {"type": "integer"},
                "documentId": {"type": "string"},
                "redirect": {"type": "string"},
                "warning": {"type": "string"},
                "error": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "completedAt": {"type": "string", "format": "date-time"}
            }
        },
        "view.Snapshot": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "documentId": {"type": "string"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/model.ChatMessage"}},
                "typing": {"type": "boolean"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Studydesk API",
	Description:      "Upload study documents and read simulated notebook, resources, mind map and chat views.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
