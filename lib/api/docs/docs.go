// Package docs registers the OpenAPI description of the glsteps api with
// swag. Regenerate it with go generate in lib/api after changing a handler
// annotation.
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
        "/api/kill": {
            "post": {
                "tags": ["base"],
                "summary": "Ask the render loop to exit",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["base"],
                "summary": "Frame and connection statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/stats.Snapshot"}
                    }
                }
            }
        },
        "/api/steps": {
            "get": {
                "produces": ["application/json"],
                "tags": ["step"],
                "summary": "List the tutorial steps and the one on screen",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.StepList"}
                    }
                }
            }
        },
        "/api/step": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["step"],
                "summary": "Switch to a tutorial step",
                "parameters": [
                    {
                        "description": "Step to show",
                        "name": "stepReq",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.StepReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Could not decode json request", "schema": {"type": "string"}},
                    "404": {"description": "The step does not exist", "schema": {"type": "string"}}
                }
            }
        },
        "/api/step/{step}": {
            "post": {
                "tags": ["step"],
                "summary": "Switch to a tutorial step",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Name of the step to show",
                        "name": "step",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "The step does not exist", "schema": {"type": "string"}}
                }
            }
        },
        "/api/texture": {
            "get": {
                "produces": ["image/png"],
                "tags": ["texture"],
                "summary": "Fetch the texture image",
                "responses": {"200": {"description": "OK"}}
            },
            "put": {
                "tags": ["texture"],
                "summary": "Replace the texture image",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "The body is not a decodable image", "schema": {"type": "string"}}
                }
            }
        },
        "/api/ws": {
            "get": {
                "tags": ["base"],
                "summary": "Open websocket for step changes and periodic statistics",
                "parameters": [
                    {
                        "type": "string",
                        "description": "websocket",
                        "name": "Upgrade",
                        "in": "header",
                        "required": true
                    }
                ],
                "responses": {"101": {"description": "Switching Protocols"}}
            }
        }
    },
    "definitions": {
        "api.StepList": {
            "type": "object",
            "properties": {
                "current": {"type": "string", "example": "quad"},
                "steps": {"type": "array", "items": {"type": "string"}}
            }
        },
        "api.StepReq": {
            "type": "object",
            "properties": {
                "step": {"type": "string", "example": "textured-quad"}
            }
        },
        "stats.Snapshot": {
            "type": "object",
            "properties": {
                "draw_calls": {"type": "integer"},
                "fps": {"type": "integer"},
                "frames": {"type": "integer"},
                "step": {"type": "string"},
                "uptime": {"type": "number"},
                "ws_clients": {"type": "integer"}
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
	Title:            "glsteps",
	Description:      "Remote control for the glsteps OpenGL walkthrough",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
