// Package docs provides generated Swagger documentation.
// Regenerate with: swag init -g cmd/api/main.go -o docs
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
        "/api/v1/chat": {
            "post": {
                "description": "Routes the query by intent and returns the assistant's reply. Policy questions go through retrieval and LLM synthesis; leave commands hit the employee directory.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Ask the policy assistant",
                "parameters": [
                    {
                        "description": "Username and query",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/http.chatReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/http.chatResp"
                        }
                    },
                    "400": {
                        "description": "Bad Request - empty query or malformed body",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "404": {
                        "description": "Not Found - unknown username",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/response.Resp"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {
                    "200": {
                        "description": "API is healthy",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {
                    "200": {
                        "description": "API is alive",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Check if the API is ready to serve traffic",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {
                        "description": "API is ready",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "required": ["username"],
            "properties": {
                "query": {
                    "type": "string",
                    "maxLength": 2000
                },
                "username": {
                    "type": "string",
                    "maxLength": 255,
                    "minLength": 1
                }
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "intent": {
                    "type": "string"
                },
                "reply": {
                    "type": "string"
                }
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Bank Policy Assistant API",
	Description:      "RAG-powered assistant for bank policy questions and leave management, backed by Qdrant, Voyage AI, Google Sheets, and a Gemini/Qwen provider chain.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
