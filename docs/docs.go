// Package docs holds the OpenAPI document served under app.docsPath.
// `go generate ./cmd/server` rebuilds this file from the handler annotations.
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
        "/actividades-proyecto": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every project activity",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "actividades-proyecto"
                ],
                "summary": "List project activities",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.ProjectActivity"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "actividades-proyecto"
                ],
                "summary": "Create project activity",
                "parameters": [
                    {
                        "description": "Project activity payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProjectActivityInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.ProjectActivity"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/actividades-proyecto/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a project activity by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "actividades-proyecto"
                ],
                "summary": "Get project activity",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project activity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.ProjectActivity"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a project activity. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "actividades-proyecto"
                ],
                "summary": "Update project activity",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project activity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProjectActivityInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.ProjectActivity"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "actividades-proyecto"
                ],
                "summary": "Delete project activity",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project activity ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/aplicaciones-estudiantes": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every application",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "aplicaciones-estudiantes"
                ],
                "summary": "List applications",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Application"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "aplicaciones-estudiantes"
                ],
                "summary": "Create application",
                "parameters": [
                    {
                        "description": "Application payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ApplicationInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Application"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/aplicaciones-estudiantes/estudiante/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Applications with their project and a summary of the student.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "aplicaciones-estudiantes"
                ],
                "summary": "List applications of a student",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Student (user) ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/service.StudentApplication"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/aplicaciones-estudiantes/proyecto/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The project and every student that applied to it, with the application id and status.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "aplicaciones-estudiantes"
                ],
                "summary": "List applicants of a project",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ProjectApplicants"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/aplicaciones-estudiantes/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get an application by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "aplicaciones-estudiantes"
                ],
                "summary": "Get application",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Application ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Application"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update an application. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "aplicaciones-estudiantes"
                ],
                "summary": "Update application",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Application ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ApplicationInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Application"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "aplicaciones-estudiantes"
                ],
                "summary": "Delete application",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Application ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bitacora-items": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every logbook item",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacora-items"
                ],
                "summary": "List logbook items",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.LogbookItem"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacora-items"
                ],
                "summary": "Create logbook item",
                "parameters": [
                    {
                        "description": "Logbook item payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.LogbookItemInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.LogbookItem"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bitacora-items/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a logbook item by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacora-items"
                ],
                "summary": "Get logbook item",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.LogbookItem"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a logbook item. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacora-items"
                ],
                "summary": "Update logbook item",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.LogbookItemInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.LogbookItem"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "bitacora-items"
                ],
                "summary": "Delete logbook item",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook item ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bitacoras-proyecto": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every logbook",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacoras-proyecto"
                ],
                "summary": "List logbooks",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Logbook"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacoras-proyecto"
                ],
                "summary": "Create logbook",
                "parameters": [
                    {
                        "description": "Logbook payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.LogbookInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Logbook"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bitacoras-proyecto/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a logbook by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacoras-proyecto"
                ],
                "summary": "Get logbook",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Logbook"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a logbook. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacoras-proyecto"
                ],
                "summary": "Update logbook",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.LogbookInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Logbook"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "bitacoras-proyecto"
                ],
                "summary": "Delete logbook",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bitacoras-proyecto/{id}/perfiles": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bitacoras-proyecto"
                ],
                "summary": "Assign a profile to a logbook",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Profile to assign",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.AssignProfileReq"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.LogbookProfile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/bitacoras-proyecto/{id}/perfiles/{perfil_id}": {
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "bitacoras-proyecto"
                ],
                "summary": "Remove a profile from a logbook",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Logbook ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Profile ID",
                        "name": "perfil_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/carreras": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every career",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "carreras"
                ],
                "summary": "List careers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Career"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "carreras"
                ],
                "summary": "Create career",
                "parameters": [
                    {
                        "description": "Career payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CareerInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Career"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/carreras/escuela/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "carreras"
                ],
                "summary": "List careers of a school",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "School ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Career"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/carreras/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a career by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "carreras"
                ],
                "summary": "Get career",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Career ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Career"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a career. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "carreras"
                ],
                "summary": "Update career",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Career ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CareerInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Career"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "carreras"
                ],
                "summary": "Delete career",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Career ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/contactos-emergencia": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every emergency contact",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactos-emergencia"
                ],
                "summary": "List emergency contacts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.EmergencyContact"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactos-emergencia"
                ],
                "summary": "Create emergency contact",
                "parameters": [
                    {
                        "description": "Emergency contact payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.EmergencyContactInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.EmergencyContact"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/contactos-emergencia/usuario/{id_usuario}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactos-emergencia"
                ],
                "summary": "List emergency contacts of a user",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User ID",
                        "name": "id_usuario",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.EmergencyContact"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/contactos-emergencia/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get an emergency contact by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactos-emergencia"
                ],
                "summary": "Get emergency contact",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Emergency contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.EmergencyContact"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update an emergency contact. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "contactos-emergencia"
                ],
                "summary": "Update emergency contact",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Emergency contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.EmergencyContactInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.EmergencyContact"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "contactos-emergencia"
                ],
                "summary": "Delete emergency contact",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Emergency contact ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/coordinadores-carrera": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every career coordinator",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "coordinadores-carrera"
                ],
                "summary": "List career coordinators",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Coordinator"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "coordinadores-carrera"
                ],
                "summary": "Create career coordinator",
                "parameters": [
                    {
                        "description": "Career coordinator payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CoordinatorInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Coordinator"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/coordinadores-carrera/carrera/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "coordinadores-carrera"
                ],
                "summary": "List coordinators of a career",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Career ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Coordinator"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/coordinadores-carrera/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a career coordinator by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "coordinadores-carrera"
                ],
                "summary": "Get career coordinator",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Career coordinator ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Coordinator"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a career coordinator. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "coordinadores-carrera"
                ],
                "summary": "Update career coordinator",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Career coordinator ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.CoordinatorInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Coordinator"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "coordinadores-carrera"
                ],
                "summary": "Delete career coordinator",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Career coordinator ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/encargados-institucion": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every institution manager",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "encargados-institucion"
                ],
                "summary": "List institution managers",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.InstitutionManager"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "encargados-institucion"
                ],
                "summary": "Create institution manager",
                "parameters": [
                    {
                        "description": "Institution manager payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.InstitutionManagerInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.InstitutionManager"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/encargados-institucion/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get an institution manager by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "encargados-institucion"
                ],
                "summary": "Get institution manager",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Institution manager ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.InstitutionManager"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update an institution manager. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "encargados-institucion"
                ],
                "summary": "Update institution manager",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Institution manager ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.InstitutionManagerInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.InstitutionManager"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "encargados-institucion"
                ],
                "summary": "Delete institution manager",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Institution manager ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/escuelas": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every school",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "escuelas"
                ],
                "summary": "List schools",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.School"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "escuelas"
                ],
                "summary": "Create school",
                "parameters": [
                    {
                        "description": "School payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.SchoolInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.School"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/escuelas/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a school by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "escuelas"
                ],
                "summary": "Get school",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "School ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.School"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a school. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "escuelas"
                ],
                "summary": "Update school",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "School ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.SchoolInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.School"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "escuelas"
                ],
                "summary": "Delete school",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "School ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/habilidades": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every skill",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "habilidades"
                ],
                "summary": "List skills",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Skill"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "habilidades"
                ],
                "summary": "Create skill",
                "parameters": [
                    {
                        "description": "Skill payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.SkillInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Skill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/habilidades/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a skill by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "habilidades"
                ],
                "summary": "Get skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Skill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a skill. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "habilidades"
                ],
                "summary": "Update skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.SkillInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Skill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "habilidades"
                ],
                "summary": "Delete skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.Health"
                        }
                    }
                }
            }
        },
        "/instituciones": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every institution",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instituciones"
                ],
                "summary": "List institutions",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Institution"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instituciones"
                ],
                "summary": "Create institution",
                "parameters": [
                    {
                        "description": "Institution payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.InstitutionInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Institution"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/instituciones/estado/{estado}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instituciones"
                ],
                "summary": "List institutions by status",
                "parameters": [
                    {
                        "enum": [
                            "Pendiente",
                            "Aprobado",
                            "Rechazado"
                        ],
                        "type": "string",
                        "description": "Status",
                        "name": "estado",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Institution"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/instituciones/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get an institution by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instituciones"
                ],
                "summary": "Get institution",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Institution ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Institution"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update an institution. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "instituciones"
                ],
                "summary": "Update institution",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Institution ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.InstitutionInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Institution"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "instituciones"
                ],
                "summary": "Delete institution",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Institution ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/perfiles-usuario": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every profile",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "List profiles",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Profile"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "Create profile",
                "parameters": [
                    {
                        "description": "Profile payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProfileInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Profile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/perfiles-usuario/genero/{genero}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "List profiles by gender",
                "parameters": [
                    {
                        "enum": [
                            "Masculino",
                            "Femenino",
                            "Otro"
                        ],
                        "type": "string",
                        "description": "Gender",
                        "name": "genero",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Profile"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/perfiles-usuario/usuario/{usuario_id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "Get profile of a user",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User ID",
                        "name": "usuario_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Profile"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/perfiles-usuario/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a profile by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "Get profile",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Profile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a profile. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "Update profile",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProfileInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Profile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "Delete profile",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/perfiles-usuario/{id}/foto": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Return a presigned download URL for the profile photo.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "Get profile photo URL",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.PhotoURL"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Store an image in object storage and save its key in foto_perfil.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "perfiles-usuario"
                ],
                "summary": "Upload profile photo",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Profile ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "file",
                        "description": "jpeg, png, webp or gif image",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Profile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/proyectos-institucion": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every project",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-institucion"
                ],
                "summary": "List projects",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Project"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-institucion"
                ],
                "summary": "Create project",
                "parameters": [
                    {
                        "description": "Project payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProjectInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Project"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/proyectos-institucion/estado/{estado}/{disponibilidad}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-institucion"
                ],
                "summary": "List projects by status and availability",
                "parameters": [
                    {
                        "enum": [
                            "Pendiente",
                            "Aprobado",
                            "Rechazado"
                        ],
                        "type": "string",
                        "description": "Status",
                        "name": "estado",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "boolean",
                        "example": true,
                        "description": "Availability",
                        "name": "disponibilidad",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Project"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/proyectos-institucion/institucion/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-institucion"
                ],
                "summary": "List projects of an institution",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Institution ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Project"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/proyectos-institucion/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a project by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-institucion"
                ],
                "summary": "Get project",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Project"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a project. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-institucion"
                ],
                "summary": "Update project",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProjectInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Project"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "proyectos-institucion"
                ],
                "summary": "Delete project",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/proyectos-instituciones-habilidades": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every project skill",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-instituciones-habilidades"
                ],
                "summary": "List project skills",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.ProjectSkill"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-instituciones-habilidades"
                ],
                "summary": "Create project skill",
                "parameters": [
                    {
                        "description": "Project skill payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProjectSkillInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.ProjectSkill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/proyectos-instituciones-habilidades/proyecto/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-instituciones-habilidades"
                ],
                "summary": "List skills a project requires",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.ProjectSkills"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/proyectos-instituciones-habilidades/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a project skill by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-instituciones-habilidades"
                ],
                "summary": "Get project skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.ProjectSkill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a project skill. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "proyectos-instituciones-habilidades"
                ],
                "summary": "Update project skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.ProjectSkillInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.ProjectSkill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "proyectos-instituciones-habilidades"
                ],
                "summary": "Delete project skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Project skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "description": "Pings PostgreSQL, and Redis when configured.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/serializer.Health"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/serializer.Health"
                        }
                    }
                }
            }
        },
        "/roles": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every role",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "List roles",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.Role"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Create role",
                "parameters": [
                    {
                        "description": "Role payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.RoleInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.Role"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/roles/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a role by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Get role",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Role ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Role"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a role. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Update role",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Role ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.RoleInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Role"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "roles"
                ],
                "summary": "Delete role",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "Role ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuarios": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.User"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios"
                ],
                "summary": "Create user",
                "parameters": [
                    {
                        "description": "User payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UserInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.User"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuarios-habilidades": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get every user skill",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios-habilidades"
                ],
                "summary": "List user skills",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/model.UserSkill"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios-habilidades"
                ],
                "summary": "Create user skill",
                "parameters": [
                    {
                        "description": "User skill payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UserSkillInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/model.UserSkill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuarios-habilidades/usuario/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios-habilidades"
                ],
                "summary": "List skills of a user",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/service.UserSkills"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuarios-habilidades/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a user skill by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios-habilidades"
                ],
                "summary": "Get user skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.UserSkill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a user skill. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios-habilidades"
                ],
                "summary": "Update user skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UserSkillInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.UserSkill"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "usuarios-habilidades"
                ],
                "summary": "Delete user skill",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User skill ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuarios/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get a user by its ID",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios"
                ],
                "summary": "Get user",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.User"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Partially update a user. Omitted fields keep their stored value.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios"
                ],
                "summary": "Update user",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Fields to change",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UserInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.User"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "tags": [
                    "usuarios"
                ],
                "summary": "Delete user",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/usuarios/{id}/perfil": {
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creating the profile requires carnet.",
                "consumes": [
                    "json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "usuarios"
                ],
                "summary": "Update user and profile",
                "parameters": [
                    {
                        "type": "integer",
                        "example": 1,
                        "description": "User ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "User and profile fields",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/service.UserProfileInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/model.Profile"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/serializer.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.AssignProfileReq": {
            "type": "object",
            "required": [
                "id_perfil_usuario"
            ],
            "properties": {
                "id_perfil_usuario": {
                    "type": "integer",
                    "minimum": 1,
                    "example": 1
                }
            }
        },
        "model.Application": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "estado": {
                    "type": "string"
                },
                "estudiante": {
                    "$ref": "#/definitions/model.User"
                },
                "estudiante_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "proyecto": {
                    "$ref": "#/definitions/model.Project"
                },
                "proyecto_id": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.Career": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "escuela": {
                    "$ref": "#/definitions/model.School"
                },
                "id": {
                    "type": "integer"
                },
                "id_escuela": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.Coordinator": {
            "type": "object",
            "properties": {
                "apellidos": {
                    "type": "string"
                },
                "carrera": {
                    "$ref": "#/definitions/model.Career"
                },
                "correo_institucional": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_carrera": {
                    "type": "integer"
                },
                "nombres": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.EmergencyContact": {
            "type": "object",
            "properties": {
                "apellidos": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_perfil_usuario": {
                    "type": "integer"
                },
                "nombres": {
                    "type": "string"
                },
                "perfil": {
                    "$ref": "#/definitions/model.Profile"
                },
                "telefono": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.Institution": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "encargado": {
                    "$ref": "#/definitions/model.InstitutionManager"
                },
                "estado": {
                    "type": "string"
                },
                "fecha_fundacion": {
                    "type": "string",
                    "format": "date"
                },
                "id": {
                    "type": "integer"
                },
                "id_encargado": {
                    "type": "integer"
                },
                "nit": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.InstitutionManager": {
            "type": "object",
            "properties": {
                "apellidos": {
                    "type": "string"
                },
                "correo": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombres": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.Logbook": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "estado": {
                    "type": "string"
                },
                "fecha_fin": {
                    "type": "string",
                    "format": "date"
                },
                "fecha_inicio": {
                    "type": "string",
                    "format": "date"
                },
                "id": {
                    "type": "integer"
                },
                "id_proyecto": {
                    "type": "integer"
                },
                "observaciones": {
                    "type": "string"
                },
                "proyecto": {
                    "$ref": "#/definitions/model.Project"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.LogbookItem": {
            "type": "object",
            "properties": {
                "bitacora": {
                    "$ref": "#/definitions/model.Logbook"
                },
                "created_at": {
                    "type": "string"
                },
                "detalle_actividades": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_bitacora": {
                    "type": "integer"
                },
                "punch_in": {
                    "type": "string"
                },
                "punch_out": {
                    "type": "string"
                },
                "total_horas": {
                    "type": "number"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.LogbookProfile": {
            "type": "object",
            "properties": {
                "bitacora": {
                    "$ref": "#/definitions/model.Logbook"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_bitacora": {
                    "type": "integer"
                },
                "id_perfil_usuario": {
                    "type": "integer"
                },
                "perfil": {
                    "$ref": "#/definitions/model.Profile"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.Profile": {
            "type": "object",
            "properties": {
                "anio_academico": {
                    "type": "integer"
                },
                "carnet": {
                    "type": "string"
                },
                "carrera": {
                    "$ref": "#/definitions/model.Career"
                },
                "created_at": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string",
                    "format": "date"
                },
                "foto_perfil": {
                    "type": "string"
                },
                "genero": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_carrera": {
                    "type": "integer"
                },
                "telefono": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "usuario": {
                    "$ref": "#/definitions/model.User"
                },
                "usuario_id": {
                    "type": "integer"
                }
            }
        },
        "model.Project": {
            "type": "object",
            "properties": {
                "actividad_principal": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "disponibilidad": {
                    "type": "boolean"
                },
                "encargado": {
                    "$ref": "#/definitions/model.InstitutionManager"
                },
                "estado": {
                    "type": "string"
                },
                "fecha_fin": {
                    "type": "string",
                    "format": "date"
                },
                "fecha_inicio": {
                    "type": "string",
                    "format": "date"
                },
                "horario_requerido": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_encargado": {
                    "type": "integer"
                },
                "institucion": {
                    "$ref": "#/definitions/model.Institution"
                },
                "institucion_id": {
                    "type": "integer"
                },
                "modalidad": {
                    "type": "string"
                },
                "nombre": {
                    "type": "string"
                },
                "sitio_web": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.ProjectActivity": {
            "type": "object",
            "properties": {
                "actividad_a_realizar": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "duracion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_proyecto": {
                    "type": "integer"
                },
                "meta": {
                    "type": "string"
                },
                "objetivo": {
                    "type": "string"
                },
                "proyecto": {
                    "$ref": "#/definitions/model.Project"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.ProjectSkill": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "habilidad": {
                    "$ref": "#/definitions/model.Skill"
                },
                "habilidad_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "proyecto": {
                    "$ref": "#/definitions/model.Project"
                },
                "proyecto_id": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.Role": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.School": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "nombre": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.Skill": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "activo": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "primer_apellido": {
                    "type": "string"
                },
                "primer_nombre": {
                    "type": "string"
                },
                "rol": {
                    "$ref": "#/definitions/model.Role"
                },
                "rol_id": {
                    "type": "integer"
                },
                "segundo_apellido": {
                    "type": "string"
                },
                "segundo_nombre": {
                    "type": "string"
                },
                "telefono": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "model.UserSkill": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "habilidad": {
                    "$ref": "#/definitions/model.Skill"
                },
                "habilidad_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                },
                "usuario": {
                    "$ref": "#/definitions/model.User"
                },
                "usuario_id": {
                    "type": "integer"
                }
            }
        },
        "serializer.ErrorBody": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string",
                    "example": "NOT_FOUND"
                },
                "details": {
                    "type": "string"
                },
                "message": {
                    "type": "string",
                    "example": "school not found"
                }
            }
        },
        "serializer.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "$ref": "#/definitions/serializer.ErrorBody"
                },
                "success": {
                    "type": "boolean",
                    "example": false
                }
            }
        },
        "serializer.Health": {
            "type": "object",
            "properties": {
                "checks": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                },
                "status": {
                    "type": "string",
                    "example": "ok"
                }
            }
        },
        "serializer.PhotoURL": {
            "type": "object",
            "properties": {
                "expires_in": {
                    "type": "integer",
                    "example": 900
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "service.Applicant": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "estado": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "id_aplicacion": {
                    "type": "integer"
                },
                "primer_apellido": {
                    "type": "string"
                },
                "primer_nombre": {
                    "type": "string"
                },
                "segundo_apellido": {
                    "type": "string"
                },
                "segundo_nombre": {
                    "type": "string"
                }
            }
        },
        "service.ApplicationInput": {
            "type": "object",
            "properties": {
                "estado": {
                    "type": "string",
                    "enum": [
                        "Pendiente",
                        "Aprobado",
                        "Rechazado"
                    ]
                },
                "estudiante_id": {
                    "type": "integer",
                    "example": 1
                },
                "proyecto_id": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "service.CareerInput": {
            "type": "object",
            "properties": {
                "id_escuela": {
                    "type": "integer",
                    "example": 1
                },
                "nombre": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "Ingenieria en Sistemas"
                }
            }
        },
        "service.CoordinatorInput": {
            "type": "object",
            "properties": {
                "apellidos": {
                    "type": "string",
                    "maxLength": 100
                },
                "correo_institucional": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "coordinador@universidad.edu"
                },
                "id_carrera": {
                    "type": "integer",
                    "example": 1
                },
                "nombres": {
                    "type": "string",
                    "maxLength": 100
                },
                "telefono": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "service.EmergencyContactInput": {
            "type": "object",
            "properties": {
                "apellidos": {
                    "type": "string",
                    "maxLength": 100
                },
                "direccion": {
                    "type": "string"
                },
                "id_perfil_usuario": {
                    "type": "integer",
                    "example": 1
                },
                "nombres": {
                    "type": "string",
                    "maxLength": 100
                },
                "telefono": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "service.InstitutionInput": {
            "type": "object",
            "properties": {
                "direccion": {
                    "type": "string"
                },
                "email": {
                    "type": "string",
                    "maxLength": 150
                },
                "estado": {
                    "type": "string",
                    "enum": [
                        "Pendiente",
                        "Aprobado",
                        "Rechazado"
                    ]
                },
                "fecha_fundacion": {
                    "type": "string",
                    "format": "date",
                    "example": "1990-01-15"
                },
                "id_encargado": {
                    "type": "integer"
                },
                "nit": {
                    "type": "string",
                    "maxLength": 20
                },
                "nombre": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "Empresa S.A."
                },
                "telefono": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "service.InstitutionManagerInput": {
            "type": "object",
            "properties": {
                "apellidos": {
                    "type": "string",
                    "maxLength": 100
                },
                "correo": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "encargado@empresa.com"
                },
                "nombres": {
                    "type": "string",
                    "maxLength": 100
                },
                "telefono": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "service.LogbookInput": {
            "type": "object",
            "properties": {
                "estado": {
                    "type": "string",
                    "enum": [
                        "'En",
                        "Proceso'",
                        "Aprobado",
                        "Rechazado"
                    ]
                },
                "fecha_fin": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-02-28"
                },
                "fecha_inicio": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-02-01"
                },
                "id_proyecto": {
                    "type": "integer",
                    "example": 1
                },
                "observaciones": {
                    "type": "string"
                }
            }
        },
        "service.LogbookItemInput": {
            "type": "object",
            "properties": {
                "detalle_actividades": {
                    "type": "string",
                    "example": "Reunion con el encargado"
                },
                "id_bitacora": {
                    "type": "integer",
                    "example": 1
                },
                "punch_in": {
                    "type": "string",
                    "example": "2025-02-03T08:00:00Z"
                },
                "punch_out": {
                    "type": "string",
                    "example": "2025-02-03T12:30:00Z"
                }
            }
        },
        "service.ProfileInput": {
            "type": "object",
            "properties": {
                "anio_academico": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 10,
                    "example": 4
                },
                "carnet": {
                    "type": "string",
                    "maxLength": 20,
                    "example": "LO200101"
                },
                "direccion": {
                    "type": "string"
                },
                "fecha_nacimiento": {
                    "type": "string",
                    "format": "date",
                    "example": "2001-05-20"
                },
                "foto_perfil": {
                    "type": "string",
                    "maxLength": 255
                },
                "genero": {
                    "type": "string",
                    "enum": [
                        "Masculino",
                        "Femenino",
                        "Otro"
                    ],
                    "example": "Femenino"
                },
                "id_carrera": {
                    "type": "integer",
                    "example": 1
                },
                "telefono": {
                    "type": "string",
                    "maxLength": 20
                },
                "usuario_id": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "service.ProjectActivityInput": {
            "type": "object",
            "properties": {
                "actividad_a_realizar": {
                    "type": "string",
                    "example": "Levantamiento de requerimientos"
                },
                "duracion": {
                    "type": "string",
                    "maxLength": 50,
                    "example": "2 semanas"
                },
                "id_proyecto": {
                    "type": "integer",
                    "example": 1
                },
                "meta": {
                    "type": "string"
                },
                "objetivo": {
                    "type": "string"
                }
            }
        },
        "service.ProjectApplicants": {
            "type": "object",
            "properties": {
                "estudiantes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.Applicant"
                    }
                },
                "proyecto": {
                    "$ref": "#/definitions/model.Project"
                }
            }
        },
        "service.ProjectInput": {
            "type": "object",
            "properties": {
                "actividad_principal": {
                    "type": "string"
                },
                "descripcion": {
                    "type": "string"
                },
                "direccion": {
                    "type": "string"
                },
                "disponibilidad": {
                    "type": "boolean"
                },
                "estado": {
                    "type": "string",
                    "enum": [
                        "Pendiente",
                        "Aprobado",
                        "Rechazado"
                    ]
                },
                "fecha_fin": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-07-31"
                },
                "fecha_inicio": {
                    "type": "string",
                    "format": "date",
                    "example": "2025-02-01"
                },
                "horario_requerido": {
                    "type": "string",
                    "maxLength": 100
                },
                "id_encargado": {
                    "type": "integer"
                },
                "institucion_id": {
                    "type": "integer",
                    "example": 1
                },
                "modalidad": {
                    "type": "string",
                    "maxLength": 50,
                    "example": "Presencial"
                },
                "nombre": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "Desarrollo de sistema de inventario"
                },
                "sitio_web": {
                    "type": "string",
                    "maxLength": 255
                }
            }
        },
        "service.ProjectSkillInput": {
            "type": "object",
            "properties": {
                "habilidad_id": {
                    "type": "integer",
                    "example": 1
                },
                "proyecto_id": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "service.ProjectSkills": {
            "type": "object",
            "properties": {
                "habilidades": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.SkillLink"
                    }
                },
                "proyecto_id": {
                    "type": "integer"
                }
            }
        },
        "service.RoleInput": {
            "type": "object",
            "properties": {
                "descripcion": {
                    "type": "string",
                    "example": "Estudiante en busca de practicas"
                },
                "nombre": {
                    "type": "string",
                    "maxLength": 50,
                    "example": "Estudiante"
                }
            }
        },
        "service.SchoolInput": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "Ingenieria"
                }
            }
        },
        "service.SkillInput": {
            "type": "object",
            "properties": {
                "descripcion": {
                    "type": "string",
                    "maxLength": 255,
                    "example": "Programacion en Go"
                }
            }
        },
        "service.SkillLink": {
            "type": "object",
            "properties": {
                "descripcion": {
                    "type": "string"
                },
                "habilidad_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                }
            }
        },
        "service.StudentApplication": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "estado": {
                    "type": "string"
                },
                "estudiante": {
                    "$ref": "#/definitions/service.StudentSummary"
                },
                "estudiante_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "proyecto": {
                    "$ref": "#/definitions/model.Project"
                },
                "proyecto_id": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "service.StudentSummary": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "integer"
                },
                "primer_apellido": {
                    "type": "string"
                },
                "primer_nombre": {
                    "type": "string"
                },
                "segundo_apellido": {
                    "type": "string"
                },
                "segundo_nombre": {
                    "type": "string"
                }
            }
        },
        "service.UserInput": {
            "type": "object",
            "properties": {
                "activo": {
                    "type": "boolean"
                },
                "email": {
                    "type": "string",
                    "maxLength": 150,
                    "example": "ana@example.com"
                },
                "password": {
                    "type": "string",
                    "maxLength": 72
                },
                "primer_apellido": {
                    "type": "string",
                    "maxLength": 100,
                    "example": "Lopez"
                },
                "primer_nombre": {
                    "type": "string",
                    "maxLength": 100,
                    "example": "Ana"
                },
                "rol_id": {
                    "type": "integer",
                    "example": 1
                },
                "segundo_apellido": {
                    "type": "string",
                    "maxLength": 100
                },
                "segundo_nombre": {
                    "type": "string",
                    "maxLength": 100
                },
                "telefono": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "service.UserProfileInput": {
            "type": "object",
            "properties": {
                "anio_academico": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 10
                },
                "carnet": {
                    "type": "string",
                    "maxLength": 20,
                    "example": "LO200101"
                },
                "direccion": {
                    "type": "string"
                },
                "email": {
                    "type": "string",
                    "maxLength": 150
                },
                "fecha_nacimiento": {
                    "type": "string",
                    "format": "date"
                },
                "genero": {
                    "type": "string",
                    "enum": [
                        "Masculino",
                        "Femenino",
                        "Otro"
                    ]
                },
                "id_carrera": {
                    "type": "integer"
                },
                "primer_apellido": {
                    "type": "string",
                    "maxLength": 100
                },
                "primer_nombre": {
                    "type": "string",
                    "maxLength": 100
                },
                "segundo_apellido": {
                    "type": "string",
                    "maxLength": 100
                },
                "segundo_nombre": {
                    "type": "string",
                    "maxLength": 100
                },
                "telefono": {
                    "type": "string",
                    "maxLength": 20
                }
            }
        },
        "service.UserSkillInput": {
            "type": "object",
            "properties": {
                "habilidad_id": {
                    "type": "integer",
                    "example": 1
                },
                "usuario_id": {
                    "type": "integer",
                    "example": 1
                }
            }
        },
        "service.UserSkills": {
            "type": "object",
            "properties": {
                "habilidades": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/service.SkillLink"
                    }
                },
                "usuario_id": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "API bearer token (e.g., \"Bearer s3cret\")",
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
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Practicas API",
	Description:      "Internship management API: institutions, projects, students, applications and logbooks.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
