package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "YurtSwap API",
        "description": "Dorm swap listings and roommate matching service",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {"name": "Listings", "description": "Dorm swap listings and mutual matches"},
        {"name": "Roommates", "description": "Roommate searches keyed by physical room"},
        {"name": "Stats", "description": "Derived statistics, match reports and exports"},
        {"name": "Residents", "description": "Lightweight resident profiles"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Degraded"}
                }
            }
        },
        "/listings": {
            "get": {
                "tags": ["Listings"],
                "summary": "List swap listings, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Listings"],
                "summary": "Publish a swap listing",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ListingPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created with owner token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/listings/{id}": {
            "get": {
                "tags": ["Listings"],
                "summary": "Get a swap listing",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Listings"],
                "summary": "Replace a swap listing (owner token required)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ListingPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Missing or invalid owner token"},
                    "403": {"description": "Token does not authorize this record"}
                }
            },
            "delete": {
                "tags": ["Listings"],
                "summary": "Delete a swap listing (owner token required)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "401": {"description": "Missing or invalid owner token"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/listings/{id}/matches": {
            "get": {
                "tags": ["Listings"],
                "summary": "Mutual swap matches for a listing",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            }
        },
        "/roommate-searches": {
            "get": {
                "tags": ["Roommates"],
                "summary": "List roommate searches, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Roommates"],
                "summary": "Publish a roommate search",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RoommateSearchPayload"}}
                ],
                "responses": {
                    "201": {"description": "Created with owner token"},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/roommate-searches/{id}": {
            "get": {
                "tags": ["Roommates"],
                "summary": "Get a roommate search",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Roommates"],
                "summary": "Replace a roommate search (owner token required)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/RoommateSearchPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Missing or invalid owner token"}
                }
            },
            "delete": {
                "tags": ["Roommates"],
                "summary": "Delete a roommate search (owner token required)",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "401": {"description": "Missing or invalid owner token"}
                }
            }
        },
        "/stats/rooms": {
            "get": {
                "tags": ["Stats"],
                "summary": "Room statistics with zero-filled category breakdowns",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats/rooms/export": {
            "get": {
                "tags": ["Stats"],
                "summary": "Export room statistics as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "400": {"description": "Unsupported format"}
                }
            }
        },
        "/stats/roommates": {
            "get": {
                "tags": ["Stats"],
                "summary": "Roommate search statistics",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats/roommates/export": {
            "get": {
                "tags": ["Stats"],
                "summary": "Export roommate statistics as CSV or PDF",
                "parameters": [
                    {"name": "format", "in": "query", "required": true, "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File attachment"},
                    "400": {"description": "Unsupported format"}
                }
            }
        },
        "/stats/swap-matches": {
            "get": {
                "tags": ["Stats"],
                "summary": "Exact swap pair report",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats/roommate-matches": {
            "get": {
                "tags": ["Stats"],
                "summary": "Co-occupancy report over rooms with two or more claimants",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/stats/system": {
            "get": {
                "tags": ["Stats"],
                "summary": "Runtime metrics snapshot",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/residents/{id}": {
            "get": {
                "tags": ["Residents"],
                "summary": "Get a resident profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found"}
                }
            },
            "put": {
                "tags": ["Residents"],
                "summary": "Create or merge-update a resident profile",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResidentPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/residents/{id}/activity": {
            "post": {
                "tags": ["Residents"],
                "summary": "Record resident activity",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Recorded"},
                    "404": {"description": "Not found"}
                }
            }
        }
    },
    "definitions": {
        "ListingPayload": {
            "type": "object",
            "required": ["contactInfo", "currentDorm"],
            "properties": {
                "contactInfo": {"type": "string"},
                "currentDorm": {"$ref": "#/definitions/SpecificDormInfo"},
                "currentDormDetails": {"type": "string"},
                "desiredDorm": {"$ref": "#/definitions/DesiredDormInfo"},
                "optionalRoomDetails": {"$ref": "#/definitions/RoomDetails"}
            }
        },
        "SpecificDormInfo": {
            "type": "object",
            "properties": {
                "gender": {"type": "string", "enum": ["Erkek", "Kız"]},
                "campus": {"type": "string", "enum": ["Ana Kampüs", "Batı Kampüsü"]},
                "capacity": {"type": "string", "enum": ["1 Kişilik", "2 Kişilik", "3 Kişilik", "4 Kişilik", "5 Kişilik"]},
                "bunkBed": {"type": "boolean"}
            }
        },
        "DesiredDormInfo": {
            "type": "object",
            "description": "Each attribute is a concrete value or the wildcard \"any\"; capacity additionally supports capacityMode \"multiple\" with preferredCapacities",
            "properties": {
                "gender": {"type": "string"},
                "campus": {"type": "string"},
                "capacity": {"type": "string"},
                "capacityMode": {"type": "string"},
                "preferredCapacities": {"type": "array", "items": {"type": "string"}},
                "bunkBed": {"type": "string"},
                "building": {"type": "string"},
                "roomNumber": {"type": "string"}
            }
        },
        "RoomDetails": {
            "type": "object",
            "properties": {
                "roomNumber": {"type": "string"},
                "building": {"type": "string"},
                "hasBathroom": {"type": "boolean"}
            }
        },
        "RoommateSearchPayload": {
            "type": "object",
            "required": ["name", "contactInfo", "campus", "building", "roomNumber"],
            "properties": {
                "name": {"type": "string"},
                "contactInfo": {"type": "string"},
                "campus": {"type": "string", "enum": ["Ana Kampüs", "Batı Kampüsü"]},
                "building": {"type": "string"},
                "roomNumber": {"type": "string"}
            }
        },
        "ResidentPayload": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "preferences": {
                    "type": "object",
                    "properties": {
                        "notifications": {"type": "boolean"},
                        "theme": {"type": "string"}
                    }
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
