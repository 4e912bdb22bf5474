// Package docs registers the OpenAPI document served under /docs
// keep it in step with the @Router blocks on the handlers
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
        "/chart": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chart"],
                "summary": "Projected chart of the loaded GDP dataset",
                "parameters": [
                    {"enum": ["index", "time"], "type": "string", "description": "Horizontal layout", "name": "layout", "in": "query"},
                    {"enum": ["adaptive", "cents", "whole"], "type": "string", "description": "Tooltip money format", "name": "money", "in": "query"},
                    {"type": "number", "description": "Canvas width", "name": "width", "in": "query"},
                    {"type": "number", "description": "Canvas height", "name": "height", "in": "query"},
                    {"type": "number", "description": "Canvas padding", "name": "padding", "in": "query"},
                    {"type": "string", "description": "First date kept, YYYY-MM-DD", "name": "from", "in": "query"},
                    {"type": "string", "description": "Last date kept, YYYY-MM-DD", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.ChartView"}},
                    "422": {"description": "unprojectable dataset or canvas", "schema": {"$ref": "#/definitions/net.Wire"}},
                    "502": {"description": "dataset fetch failed", "schema": {"$ref": "#/definitions/net.Wire"}},
                    "503": {"description": "dataset still loading", "schema": {"$ref": "#/definitions/net.Wire"}}
                }
            }
        },
        "/chart.{format}": {
            "get": {
                "produces": ["image/png", "image/svg+xml", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["Chart"],
                "summary": "Chart rendered as PNG, SVG or XLSX",
                "parameters": [
                    {"enum": ["png", "svg", "xlsx"], "type": "string", "description": "Document format", "name": "format", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "rendered document", "schema": {"type": "file"}},
                    "503": {"description": "dataset still loading", "schema": {"$ref": "#/definitions/net.Wire"}}
                }
            }
        },
        "/chart/project": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chart"],
                "summary": "Project caller supplied observations",
                "parameters": [
                    {"description": "Observations as [date, value] pairs", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ProjectInput"}}
                ],
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.ChartView"}},
                    "400": {"description": "invalid payload", "schema": {"$ref": "#/definitions/net.Wire"}},
                    "422": {"description": "unprojectable data", "schema": {"$ref": "#/definitions/net.Wire"}}
                }
            }
        },
        "/chart/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chart"],
                "summary": "Dataset loader state",
                "responses": {
                    "200": {"description": "ok", "schema": {"$ref": "#/definitions/domain.StateView"}}
                }
            }
        },
        "/chart/reload": {
            "post": {
                "description": "The previous generation keeps running but its result is discarded",
                "produces": ["application/json"],
                "tags": ["Chart"],
                "summary": "Start a new dataset load",
                "responses": {
                    "202": {"description": "accepted", "schema": {"$ref": "#/definitions/domain.ReloadView"}}
                }
            }
        },
        "/meta/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Health check",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/http.HealthResponse"}}}
            }
        },
        "/meta/ready": {
            "get": {
                "description": "A dataset that is still loading reports pending and the service degraded",
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Readiness probe with dependency checks",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/http.ReadyResponse"}}}
            }
        },
        "/meta/version": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Build and version info",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/version.BuildInfo"}}}
            }
        },
        "/meta/service": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Meta"],
                "summary": "Service info and uptime",
                "responses": {"200": {"description": "ok", "schema": {"$ref": "#/definitions/http.ServiceResponse"}}}
            }
        }
    },
    "definitions": {
        "chart.BarDescriptor": {
            "type": "object",
            "properties": {
                "x": {"type": "number"},
                "y": {"type": "number"},
                "width": {"type": "number"},
                "height": {"type": "number"},
                "tooltip": {"type": "string", "example": "$243.1 Billion 1947 Q1"}
            }
        },
        "chart.Canvas": {
            "type": "object",
            "properties": {
                "width": {"type": "number", "example": 800},
                "height": {"type": "number", "example": 450},
                "padding": {"type": "number", "example": 60}
            }
        },
        "chart.Domain": {
            "type": "object",
            "properties": {
                "min_value": {"type": "number"},
                "max_value": {"type": "number"},
                "min_year": {"type": "integer"},
                "max_year": {"type": "integer"},
                "min_period": {"type": "number"},
                "max_period": {"type": "number"}
            }
        },
        "chart.Tick": {
            "type": "object",
            "properties": {
                "value": {"type": "number"},
                "position": {"type": "number"},
                "label": {"type": "string", "example": "1950"}
            }
        },
        "domain.AxisView": {
            "type": "object",
            "properties": {
                "orientation": {"type": "string", "example": "bottom"},
                "offset": {"type": "number"},
                "domain": {"type": "array", "items": {"type": "number"}},
                "range": {"type": "array", "items": {"type": "number"}},
                "ticks": {"type": "array", "items": {"$ref": "#/definitions/chart.Tick"}}
            }
        },
        "domain.AxesView": {
            "type": "object",
            "properties": {
                "bottom": {"$ref": "#/definitions/domain.AxisView"},
                "left": {"$ref": "#/definitions/domain.AxisView"}
            }
        },
        "domain.CanvasInput": {
            "type": "object",
            "required": ["width", "height"],
            "properties": {
                "width": {"type": "number", "maximum": 4000, "minimum": 100, "example": 800},
                "height": {"type": "number", "maximum": 4000, "minimum": 100, "example": 600},
                "padding": {"type": "number", "maximum": 1000, "minimum": 0, "example": 60}
            }
        },
        "domain.ChartView": {
            "type": "object",
            "properties": {
                "title": {"type": "string", "example": "US GDP"},
                "description": {"type": "string"},
                "source": {"type": "string", "example": "Federal Reserve Economic Data"},
                "generation": {"type": "string"},
                "layout": {"type": "string", "example": "index"},
                "money": {"type": "string", "example": "adaptive"},
                "canvas": {"$ref": "#/definitions/chart.Canvas"},
                "domain": {"$ref": "#/definitions/chart.Domain"},
                "bars": {"type": "array", "items": {"$ref": "#/definitions/chart.BarDescriptor"}},
                "axes": {"$ref": "#/definitions/domain.AxesView"}
            }
        },
        "domain.ProjectInput": {
            "type": "object",
            "required": ["data"],
            "properties": {
                "title": {"type": "string", "maxLength": 200, "example": "US GDP"},
                "data": {"type": "array", "maxItems": 20000, "items": {"type": "array", "items": {}}},
                "canvas": {"$ref": "#/definitions/domain.CanvasInput"},
                "layout": {"type": "string", "enum": ["index", "time"], "example": "time"},
                "money": {"type": "string", "enum": ["adaptive", "cents", "whole"], "example": "cents"}
            }
        },
        "domain.ReloadView": {
            "type": "object",
            "properties": {"generation": {"type": "string"}}
        },
        "domain.StateView": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["idle", "loading", "ready", "failed"], "example": "ready"},
                "generation": {"type": "string"},
                "since": {"type": "string", "format": "date-time"},
                "error": {"type": "string", "example": "Request failed with errorCode: 404"},
                "observations": {"type": "integer", "example": 275}
            }
        },
        "http.HealthResponse": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean", "example": true},
                "service": {"type": "string", "example": "gdpchart-api"},
                "started": {"type": "string"},
                "now": {"type": "string"}
            }
        },
        "http.ReadyCheck": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "dataset"},
                "status": {"type": "string", "example": "ok"},
                "error": {"type": "string"}
            }
        },
        "http.ReadyResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "checks": {"type": "array", "items": {"$ref": "#/definitions/http.ReadyCheck"}},
                "now": {"type": "string"}
            }
        },
        "http.ServiceResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "gdpchart-api"},
                "started": {"type": "string"},
                "uptime": {"type": "integer", "example": 300}
            }
        },
        "net.Wire": {
            "type": "object",
            "properties": {
                "status_code": {"type": "integer", "example": 503},
                "status": {"type": "string", "example": "Service Unavailable"},
                "code": {"type": "integer", "example": 10},
                "kind": {"type": "string", "example": "not_ready"},
                "error": {"type": "string", "example": "loading..."},
                "field": {"type": "string"},
                "request_id": {"type": "string"},
                "data": {}
            }
        },
        "version.BuildInfo": {
            "type": "object",
            "properties": {
                "service": {"type": "string", "example": "gdpchart-api"},
                "version": {"type": "string", "example": "v0.1.0"},
                "commit": {"type": "string"},
                "date": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "gdpchart API",
	Description:      "Quarterly US GDP as a projected bar chart: JSON descriptors, PNG, SVG and XLSX.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
