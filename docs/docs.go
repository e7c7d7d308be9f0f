// Package docs holds the Swagger document served under /swagger.
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
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/auth.RegisterRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/signin": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Sign in",
                "parameters": [
                    {
                        "description": "Credentials",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/auth.LoginRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.AuthResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/me": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "List lists",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/lists.List"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Create a list",
                "parameters": [
                    {"description": "List title", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.TitleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists/{id}": {
            "patch": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Rename a list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "New title", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.TitleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Delete a list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists/{id}/tasks": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Get the tasks of a list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/lists.Task"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "patch": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Add a task to a list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "Task", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.AddTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists/{id}/tasks/delete": {
            "patch": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Remove a task from a list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "Task to remove", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.RemoveTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists/{id}/tasks/update": {
            "patch": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Mark a task complete or incomplete",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "Completion", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.SetCompletionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists/{id}/tasks/rename": {
            "patch": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Rename a task",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "New title", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.RenameTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists/{id}/collaborators": {
            "patch": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Share a list",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"description": "User to share with", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/lists.AddCollaboratorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/lists/{id}/collaborators/{userId}": {
            "delete": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Stop sharing a list with a user",
                "parameters": [
                    {"type": "string", "description": "List ID", "name": "id", "in": "path", "required": true},
                    {"type": "string", "description": "Collaborator user ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/lists.List"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/users/username/{username}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user profile by username",
                "parameters": [
                    {"type": "string", "description": "Username", "name": "username", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.PublicProfile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user profile by ID",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/users.PublicProfile"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List my tasks",
                "parameters": [
                    {"type": "integer", "description": "Page number (default: 1)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size (default: 50, max: 100)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/tasks.Task"}}}
                }
            },
            "post": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Create a task",
                "parameters": [
                    {"description": "Task", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tasks.CreateTaskRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/tasks.Task"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        },
        "/tasks/{id}": {
            "patch": {
                "security": [{"TokenAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Update a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tasks.UpdateTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tasks.Task"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            },
            "delete": {
                "security": [{"TokenAuth": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Delete a task",
                "parameters": [
                    {"type": "string", "description": "Task ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "auth.AuthResponse": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "username": {"type": "string", "example": "alice"},
                "email": {"type": "string"},
                "accessToken": {"type": "string"}
            }
        },
        "auth.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string", "example": "alice"},
                "password": {"type": "string", "example": "password1"}
            }
        },
        "auth.RegisterRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string", "example": "alice"},
                "email": {"type": "string", "example": "alice@example.com"},
                "password": {"type": "string", "example": "password1"}
            }
        },
        "auth.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "lists.AddCollaboratorRequest": {
            "type": "object",
            "required": ["username"],
            "properties": {"username": {"type": "string", "example": "bob"}}
        },
        "lists.AddTaskRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {"title": {"type": "string", "example": "milk"}}
        },
        "lists.List": {
            "description": "Shared task list",
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "507f1f77bcf86cd799439011"},
                "title": {"type": "string", "example": "Groceries"},
                "owner": {"type": "string", "example": "507f1f77bcf86cd799439013"},
                "collaborators": {"type": "array", "items": {"type": "string"}},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/lists.Task"}},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "lists.RemoveTaskRequest": {
            "type": "object",
            "required": ["taskId"],
            "properties": {"taskId": {"type": "string", "example": "507f1f77bcf86cd799439012"}}
        },
        "lists.RenameTaskRequest": {
            "type": "object",
            "required": ["taskId", "title"],
            "properties": {
                "taskId": {"type": "string", "example": "507f1f77bcf86cd799439012"},
                "title": {"type": "string", "example": "oat milk"}
            }
        },
        "lists.SetCompletionRequest": {
            "type": "object",
            "required": ["complete", "taskId"],
            "properties": {
                "taskId": {"type": "string", "example": "507f1f77bcf86cd799439012"},
                "complete": {"type": "boolean", "example": true}
            }
        },
        "lists.Task": {
            "description": "Task entry nested inside a list",
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "507f1f77bcf86cd799439012"},
                "title": {"type": "string", "example": "milk"},
                "complete": {"type": "boolean", "example": false}
            }
        },
        "lists.TitleRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {"title": {"type": "string", "example": "Groceries"}}
        },
        "response.APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "statusCode": {"type": "integer", "example": 200},
                "message": {"type": "string"},
                "code": {"type": "string", "example": "NOT_FOUND"},
                "data": {}
            }
        },
        "tasks.CreateTaskRequest": {
            "description": "Data required to create a task",
            "type": "object",
            "required": ["text"],
            "properties": {
                "text": {"type": "string", "example": "Renew passport"},
                "deadline": {"type": "string", "example": "2026-12-31T23:59:59Z"}
            }
        },
        "tasks.Task": {
            "description": "Standalone task owned by one user",
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "507f1f77bcf86cd799439011"},
                "text": {"type": "string", "example": "Renew passport"},
                "owner": {"type": "string", "example": "507f1f77bcf86cd799439013"},
                "deadline": {"type": "string", "example": "2026-12-31T23:59:59Z"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "users.PublicProfile": {
            "description": "Public view of a user",
            "type": "object",
            "properties": {
                "id": {"type": "string", "example": "507f1f77bcf86cd799439013"},
                "username": {"type": "string", "example": "bob"}
            }
        },
        "tasks.UpdateTaskRequest": {
            "description": "Fields to change on a task; omitted fields are kept",
            "type": "object",
            "properties": {
                "text": {"type": "string", "example": "Renew passport and ID"},
                "deadline": {"type": "string", "example": "2027-01-15T12:00:00Z"}
            }
        }
    },
    "securityDefinitions": {
        "TokenAuth": {
            "description": "The access token returned by /register or /signin, optionally prefixed with \"Bearer \"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8084",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Task Lists API",
	Description:      "Shared task lists with collaborators and token authentication",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
