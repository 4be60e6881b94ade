package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "TaskFlow API Documentation",
        "title": "TaskFlow API",
        "version": "1.0"
    },
    "host": "localhost:5000",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "Server is healthy"}
                }
            }
        },
        "/api/auth/register": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "account",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {"type": "string", "example": "Ada"},
                                "email": {"type": "string", "example": "ada@taskflow.dev"},
                                "password": {"type": "string", "example": "secret"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Account created, returns user and token"},
                    "400": {"description": "Email already exists"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Login with email and password",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "credentials",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "email": {"type": "string", "example": "ada@taskflow.dev"},
                                "password": {"type": "string", "example": "secret"}
                            }
                        }
                    }
                ],
                "responses": {
                    "200": {"description": "Login successful, returns user and token"},
                    "400": {"description": "Invalid credentials"}
                }
            }
        },
        "/api/tasks/me": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List the caller's tasks",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Array of tasks owned by the caller"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/api/tasks/createTask": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "task",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {"type": "string", "example": "Monthly report"},
                                "description": {"type": "string", "example": "Compile December numbers"},
                                "priority": {"type": "string", "enum": ["high", "medium", "low"]},
                                "status": {"type": "string", "enum": ["todo", "in-progress", "completed"]},
                                "dueDate": {"type": "string", "example": "2024-01-15"},
                                "category": {"type": "string", "example": "Work"}
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {"description": "Stored task including id and createdAt"},
                    "400": {"description": "Missing required fields"},
                    "401": {"description": "Missing or invalid token"}
                }
            }
        },
        "/api/tasks/updateTask/{id}": {
            "put": {
                "tags": ["Tasks"],
                "summary": "Partially update an owned task",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Updated task"},
                    "401": {"description": "Missing or invalid token"},
                    "404": {"description": "No task matches id and owner"}
                }
            }
        },
        "/api/tasks/deleteTask/{id}": {
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete an owned task",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "path", "name": "id", "type": "string", "required": true}
                ],
                "responses": {
                    "200": {"description": "Task deleted"},
                    "401": {"description": "Missing or invalid token"},
                    "404": {"description": "No task matches id and owner"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header",
            "description": "Type \"Bearer\" followed by a space and the JWT token."
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:5000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "TaskFlow API",
	Description:      "TaskFlow API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
