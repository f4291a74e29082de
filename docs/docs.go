// Package docs registers the OpenAPI description served under /swagger/.
// Regenerate with: swag init -g cmd/server/main.go
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
        "/login": {"post": {"tags": ["auth"], "summary": "Log in and receive a Bearer token", "consumes": ["application/json"], "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "400": {"description": "bad_request"}, "401": {"description": "unauthorized"}}}},
        "/events": {
            "get": {"tags": ["events"], "summary": "List events", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["events"], "summary": "Publish an event", "consumes": ["multipart/form-data", "application/json"], "produces": ["application/json"], "responses": {"201": {"description": "Created; data.share_url is set when sms was requested"}, "400": {"description": "bad_request"}, "401": {"description": "unauthorized"}, "500": {"description": "internal_error"}, "502": {"description": "upload_failed"}}}
        },
        "/events/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["events"], "summary": "Delete an event", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}}},
        "/events.ics": {"get": {"tags": ["events"], "summary": "Events as an iCalendar feed", "produces": ["text/calendar"], "responses": {"200": {"description": "OK"}}}},
        "/notifications": {"get": {"tags": ["events"], "summary": "List events shown on the home page", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}},
        "/members": {"get": {"tags": ["gallery"], "summary": "List gallery members", "responses": {"200": {"description": "OK"}}}},
        "/gallery": {"post": {"security": [{"BearerAuth": []}], "tags": ["gallery"], "summary": "Add a gallery member", "consumes": ["multipart/form-data", "application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "bad_request"}, "502": {"description": "upload_failed"}}}},
        "/members/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["gallery"], "summary": "Update a gallery member", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["gallery"], "summary": "Delete a gallery member", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}}
        },
        "/teacher": {
            "get": {"tags": ["teachers"], "summary": "List teachers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Add a teacher", "consumes": ["multipart/form-data", "application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "bad_request"}, "502": {"description": "upload_failed"}}}
        },
        "/teacher/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Update a teacher", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["teachers"], "summary": "Delete a teacher", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}}
        },
        "/contacts": {"post": {"tags": ["contacts"], "summary": "Submit the contact form", "consumes": ["application/json"], "responses": {"201": {"description": "Created"}, "400": {"description": "bad_request"}}}},
        "/contactsview": {"get": {"security": [{"BearerAuth": []}], "tags": ["contacts"], "summary": "List contact submissions", "responses": {"200": {"description": "OK"}}}},
        "/viewcontacts": {"get": {"security": [{"BearerAuth": []}], "tags": ["contacts"], "summary": "List contact submissions", "responses": {"200": {"description": "OK"}}}},
        "/contacts/{id}": {"put": {"security": [{"BearerAuth": []}], "tags": ["contacts"], "summary": "Set the respond flag", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}}},
        "/sent-reply": {"post": {"security": [{"BearerAuth": []}], "tags": ["contacts"], "summary": "Email a reply to a contact", "responses": {"200": {"description": "OK"}, "400": {"description": "bad_request"}, "502": {"description": "upstream_error"}}}},
        "/send-data": {"post": {"tags": ["admissions"], "summary": "Submit an admission form", "responses": {"201": {"description": "Created"}, "400": {"description": "bad_request"}}}},
        "/admissionsform": {"get": {"security": [{"BearerAuth": []}], "tags": ["admissions"], "summary": "List admission forms", "responses": {"200": {"description": "OK"}}}},
        "/admission/{id}": {"put": {"security": [{"BearerAuth": []}], "tags": ["admissions"], "summary": "Set the respond flag", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}}},
        "/users": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "List admin accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Create an admin account", "responses": {"201": {"description": "Created"}, "400": {"description": "bad_request"}, "409": {"description": "conflict"}}}
        },
        "/users/{id}": {"delete": {"security": [{"BearerAuth": []}], "tags": ["users"], "summary": "Delete an admin account", "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "404": {"description": "not_found"}}}},
        "/generate": {"post": {"security": [{"BearerAuth": []}], "tags": ["drafts"], "summary": "Draft announcement text", "responses": {"200": {"description": "OK"}, "400": {"description": "bad_request"}, "502": {"description": "upstream_error"}}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Community Site API",
	Description:      "Events, gallery, teachers, contacts, admissions and admin accounts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
