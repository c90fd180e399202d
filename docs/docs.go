// Package docs registers the Swagger 2.0 description served under /swagger/*.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Readiness (database ping)",
                "responses": {
                    "200": {"description": "healthy"},
                    "503": {"description": "dependency unavailable", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/healthz": {
            "get": {"tags": ["ops"], "summary": "Liveness", "responses": {"200": {"description": "alive"}}}
        },
        "/document-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["document-types"],
                "summary": "List document types",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["document-types"],
                "summary": "Create a document type",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateDocumentType"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/DocumentType"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/document-types/{id}": {
            "delete": {
                "tags": ["document-types"],
                "summary": "Delete a document type; its requirements become not configured",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}
            }
        },
        "/clients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "List clients with their live risk summary",
                "parameters": [
                    {"type": "integer", "default": 10, "name": "limit", "in": "query"},
                    {"type": "integer", "default": 0, "name": "offset", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Create a corporate client",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClient"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Client"}}}
            }
        },
        "/clients/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Client risk report",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ClientReport"}}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}}
            },
            "delete": {
                "tags": ["clients"],
                "summary": "Delete a client with its requirements, uploads and files",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/clients/{id}/requirements": {
            "get": {
                "tags": ["requirements"],
                "summary": "List the client's checklist",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["requirements"],
                "summary": "Add or update a requirement",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/SetRequirement"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/clients/{id}/requirements/{requirementId}": {
            "delete": {
                "tags": ["requirements"],
                "summary": "Remove a requirement",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "name": "requirementId", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/clients/{id}/uploads": {
            "get": {
                "tags": ["uploads"],
                "summary": "List the client's uploads, newest first",
                "parameters": [{"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["multipart/form-data", "application/json"],
                "tags": ["uploads"],
                "summary": "Record an uploaded document version",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "name": "document_type_id", "in": "formData", "required": true},
                    {"type": "string", "format": "date", "name": "expires_at", "in": "formData"},
                    {"type": "string", "name": "filename", "in": "formData"},
                    {"type": "file", "name": "file", "in": "formData"}
                ],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Upload"}}}
            }
        },
        "/clients/{id}/uploads/{uploadId}": {
            "delete": {
                "tags": ["uploads"],
                "summary": "Delete an upload and its file",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "name": "uploadId", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/clients/{id}/uploads/{uploadId}/download": {
            "get": {
                "tags": ["uploads"],
                "summary": "Pre-signed download URL",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "format": "uuid", "name": "uploadId", "in": "path", "required": true},
                    {"type": "boolean", "name": "redirect", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}, "302": {"description": "Redirect to the object"}}
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["risk"],
                "summary": "Every client ranked by risk score, with totals",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/calendar": {
            "get": {
                "tags": ["risk"],
                "summary": "Expiries in a date window",
                "parameters": [
                    {"type": "string", "format": "date", "name": "from", "in": "query"},
                    {"type": "string", "format": "date", "name": "to", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/risk/evaluate": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["risk"],
                "summary": "Evaluate a posted checklist without storing anything",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/EvaluateRequest"}}],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "details": {"type": "array", "items": {"type": "string"}}
                    }
                }
            }
        },
        "CreateClient": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}}},
        "Client": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}}
        },
        "CreateDocumentType": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "DocumentType": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"}}
        },
        "SetRequirement": {
            "type": "object",
            "required": ["document_type_id"],
            "properties": {"document_type_id": {"type": "string", "format": "uuid"}, "required": {"type": "boolean", "default": true}}
        },
        "Upload": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "corporate_client_id": {"type": "string"},
                "document_type_id": {"type": "string"},
                "filename": {"type": "string"},
                "content_type": {"type": "string"},
                "size": {"type": "integer"},
                "uploaded_at": {"type": "string", "format": "date-time"},
                "expires_at": {"type": "string", "format": "date-time"}
            }
        },
        "Summary": {
            "type": "object",
            "properties": {
                "score": {"type": "integer"},
                "score_level": {"type": "string", "enum": ["LOW", "MEDIUM", "HIGH"]},
                "effective_level": {"type": "string", "enum": ["LOW", "MEDIUM", "HIGH"]},
                "expired_count": {"type": "integer"},
                "risk_count": {"type": "integer"},
                "missing_count": {"type": "integer"}
            }
        },
        "ClientReport": {
            "type": "object",
            "properties": {
                "client": {"$ref": "#/definitions/Client"},
                "evaluated_on": {"type": "string", "format": "date-time"},
                "summary": {"$ref": "#/definitions/Summary"},
                "requirements": {"type": "array", "items": {"type": "object"}}
            }
        },
        "EvaluateRequest": {
            "type": "object",
            "properties": {
                "requirements": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "id": {"type": "string"},
                            "document_type_id": {"type": "string"},
                            "document_name": {"type": "string"},
                            "required": {"type": "boolean", "default": true}
                        }
                    }
                },
                "uploads": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "required": ["document_type_id"],
                        "properties": {
                            "id": {"type": "string"},
                            "document_type_id": {"type": "string"},
                            "filename": {"type": "string"},
                            "uploaded_at": {"type": "string", "format": "date-time"},
                            "expires_at": {"type": "string", "format": "date"}
                        }
                    }
                }
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
	Title:            "Document Risk API",
	Description:      "Tracks corporate clients' compliance documents and scores their expiry risk.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
