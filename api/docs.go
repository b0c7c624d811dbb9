// Package api holds the OpenAPI specification served at /docs.
package api

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
                "description": "Redirects to the month view for the current month",
                "tags": [
                    "General"
                ],
                "summary": "Current month",
                "responses": {
                    "302": {
                        "description": "Found"
                    }
                }
            }
        },
        "/budget/add": {
            "post": {
                "description": "Creates a transaction from the add form",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Create transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Date as YYYY-MM-DD",
                        "name": "date",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID of the category",
                        "name": "category_id",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ID of the card, empty for cash",
                        "name": "card_id",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Amount as a decimal string",
                        "name": "amount",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Notes",
                        "name": "notes",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "303": {
                        "description": "See Other"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/budget/transaction/{id}": {
            "put": {
                "description": "Updates a transaction and returns its rendered table row",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Update transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the transaction",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Transaction",
                        "name": "transaction",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.TransactionEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a transaction",
                "tags": [
                    "Budget"
                ],
                "summary": "Delete transaction",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the transaction",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budget"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/budget/{month}": {
            "get": {
                "description": "Renders the budget and transactions of a month",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Month view",
                "parameters": [
                    {
                        "type": "string",
                        "description": "The month as YYYY-MM",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/budget/{month}/json": {
            "get": {
                "description": "Returns the month view model as JSON",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budget"
                ],
                "summary": "Month view data",
                "parameters": [
                    {
                        "type": "string",
                        "description": "The month as YYYY-MM",
                        "name": "month",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/controllers.MonthView"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/cards": {
            "get": {
                "description": "Renders the card management page",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "Cards"
                ],
                "summary": "Manage cards",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new card",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "tags": [
                    "Cards"
                ],
                "summary": "Create card",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Name of the card",
                        "name": "name",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "See Other"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/cards/api": {
            "get": {
                "description": "Returns a list of all active cards",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Cards"
                ],
                "summary": "Get cards",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Card"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/cards/{id}": {
            "put": {
                "description": "Updates a card, setting isActive to false hides it from the add form",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Cards"
                ],
                "summary": "Update card",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the card",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Card",
                        "name": "card",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.CardEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Card"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Renders the category management page",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Manage categories",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "post": {
                "description": "Creates a new category with an optional limit for the current month",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Create category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Name of the category",
                        "name": "name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Hex color, random pastel when empty",
                        "name": "color",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Limit for the current month as a decimal string",
                        "name": "monthly_limit",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Set to 'on' for an income category",
                        "name": "is_income",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "303": {
                        "description": "See Other"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/categories/api": {
            "get": {
                "description": "Returns a list of all categories",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Get categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.Category"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/categories/budget": {
            "get": {
                "description": "Returns the merged category and limit data for a month",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Budget views",
                "parameters": [
                    {
                        "type": "string",
                        "description": "The month as YYYY-MM",
                        "name": "month",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/models.CategoryBudgetView"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/categories/limit": {
            "post": {
                "description": "Sets the monthly limit for a category",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Set limit",
                "parameters": [
                    {
                        "description": "Limit",
                        "name": "limit",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.LimitEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.MonthlyBudget"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/categories/{id}": {
            "put": {
                "description": "Updates a category",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Categories"
                ],
                "summary": "Update category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the category",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Category",
                        "name": "category",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/controllers.CategoryEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/models.Category"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a category",
                "tags": [
                    "Categories"
                ],
                "summary": "Delete category",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID of the category",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the health of the backend, including database connectivity",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Health",
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/controllers.httpError"
                        }
                    }
                }
            }
        },
        "/login": {
            "get": {
                "description": "Renders the login form, or redirects to the month view when no password is configured",
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Login form",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            },
            "post": {
                "description": "Checks the password and sets the session cookie",
                "consumes": [
                    "application/x-www-form-urlencoded"
                ],
                "produces": [
                    "text/html"
                ],
                "tags": [
                    "General"
                ],
                "summary": "Login",
                "parameters": [
                    {
                        "type": "string",
                        "description": "The shared password",
                        "name": "password",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "303": {
                        "description": "See Other"
                    },
                    "401": {
                        "description": "Unauthorized"
                    }
                }
            }
        }
    },
    "definitions": {
        "controllers.BudgetRow": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "type": "string",
                    "example": "52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"
                },
                "color": {
                    "type": "string",
                    "example": "#BAFFC9"
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "isIncome": {
                    "type": "boolean",
                    "example": false
                },
                "isOverBudget": {
                    "type": "boolean",
                    "example": false
                },
                "limit": {
                    "type": "string",
                    "example": "100.00"
                },
                "name": {
                    "type": "string",
                    "example": "Groceries"
                },
                "percentRemaining": {
                    "type": "string",
                    "example": "75"
                },
                "percentSpent": {
                    "type": "string",
                    "example": "25"
                },
                "remaining": {
                    "type": "string",
                    "example": "75.00"
                },
                "spent": {
                    "type": "string",
                    "example": "25.00"
                }
            }
        },
        "controllers.CardEditable": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "type": "string",
                    "example": "Visa Gold"
                }
            }
        },
        "controllers.CategoryEditable": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "color": {
                    "type": "string",
                    "example": "#BAFFC9"
                },
                "isActive": {
                    "type": "boolean",
                    "example": true
                },
                "isIncome": {
                    "type": "boolean",
                    "example": false
                },
                "name": {
                    "type": "string",
                    "example": "Groceries"
                }
            }
        },
        "controllers.LimitEditable": {
            "type": "object",
            "required": [
                "categoryId",
                "month"
            ],
            "properties": {
                "categoryId": {
                    "type": "string",
                    "example": "52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"
                },
                "limit": {
                    "description": "Decimal limit amount, never negative",
                    "type": "number",
                    "example": 100.00
                },
                "month": {
                    "type": "string",
                    "example": "2026-01"
                }
            }
        },
        "controllers.MonthView": {
            "type": "object",
            "properties": {
                "budgetRows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.BudgetRow"
                    }
                },
                "cards": {
                    "description": "For the add-transaction form",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Card"
                    }
                },
                "categories": {
                    "description": "For the add-transaction form",
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.Category"
                    }
                },
                "month": {
                    "type": "string",
                    "example": "2026-01"
                },
                "monthDisplay": {
                    "type": "string",
                    "example": "January 2026"
                },
                "next": {
                    "description": "Month key of the next month",
                    "type": "string",
                    "example": "2026-02"
                },
                "overview": {
                    "$ref": "#/definitions/controllers.Overview"
                },
                "previous": {
                    "description": "Month key of the previous month",
                    "type": "string",
                    "example": "2025-12"
                },
                "transactions": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.TransactionRow"
                    }
                },
                "virtualRows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/controllers.VirtualRow"
                    }
                }
            }
        },
        "controllers.Overview": {
            "type": "object",
            "properties": {
                "netBalance": {
                    "type": "string",
                    "example": "980.34"
                },
                "netIsPositive": {
                    "type": "boolean",
                    "example": true
                },
                "totalExpenses": {
                    "type": "string",
                    "example": "1337.00"
                },
                "totalIncome": {
                    "type": "string",
                    "example": "2317.34"
                }
            }
        },
        "controllers.TransactionEditable": {
            "type": "object",
            "required": [
                "categoryId",
                "date"
            ],
            "properties": {
                "amount": {
                    "description": "Decimal amount, the sign follows the category",
                    "type": "number",
                    "example": 45.50
                },
                "cardId": {
                    "type": "string",
                    "example": "10b9705d-3356-459e-9d5a-28d42a6c4547"
                },
                "categoryId": {
                    "type": "string",
                    "example": "52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"
                },
                "date": {
                    "type": "string",
                    "example": "2026-01-05"
                },
                "notes": {
                    "type": "string",
                    "example": "Weekly groceries"
                }
            }
        },
        "controllers.TransactionRow": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "45.50"
                },
                "cardId": {
                    "type": "string",
                    "example": "10b9705d-3356-459e-9d5a-28d42a6c4547"
                },
                "cardName": {
                    "type": "string",
                    "example": "Visa Gold"
                },
                "categoryColor": {
                    "type": "string",
                    "example": "#BAFFC9"
                },
                "categoryId": {
                    "type": "string",
                    "example": "52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"
                },
                "categoryName": {
                    "type": "string",
                    "example": "Groceries"
                },
                "date": {
                    "type": "string",
                    "example": "2026-01-05"
                },
                "dateDisplay": {
                    "type": "string",
                    "example": "5 Jan 2026"
                },
                "id": {
                    "type": "string",
                    "example": "d1b4a4a4-37b6-4350-bb7a-794c6fcef668"
                },
                "isIncome": {
                    "type": "boolean",
                    "example": false
                },
                "notes": {
                    "type": "string",
                    "example": "Weekly groceries"
                }
            }
        },
        "controllers.VirtualRow": {
            "type": "object",
            "properties": {
                "amount": {
                    "type": "string",
                    "example": "2317.34"
                },
                "isIncome": {
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "type": "string",
                    "example": "Total Income"
                }
            }
        },
        "controllers.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "there is no category matching your query"
                }
            }
        },
        "gorm.DeletedAt": {
            "type": "object",
            "properties": {
                "time": {
                    "type": "string"
                },
                "valid": {
                    "description": "Valid is true if Time is not NULL",
                    "type": "boolean"
                }
            }
        },
        "models.Card": {
            "type": "object",
            "properties": {
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "description": "Time the resource was marked as deleted",
                    "$ref": "#/definitions/gorm.DeletedAt"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isActive": {
                    "description": "Inactive cards are not offered for new transactions",
                    "type": "boolean",
                    "example": true
                },
                "name": {
                    "description": "Name of the card, unique",
                    "type": "string",
                    "example": "Visa Gold"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.Category": {
            "type": "object",
            "properties": {
                "color": {
                    "description": "Hex color used when rendering the category",
                    "type": "string",
                    "example": "#BAFFC9"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "description": "Time the resource was marked as deleted",
                    "$ref": "#/definitions/gorm.DeletedAt"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "isActive": {
                    "description": "Inactive categories are hidden unless they have a budget",
                    "type": "boolean",
                    "example": true
                },
                "isIncome": {
                    "description": "Does money in this category count as income?",
                    "type": "boolean",
                    "example": false
                },
                "name": {
                    "description": "Name of the category, unique",
                    "type": "string",
                    "example": "Groceries"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        },
        "models.CategoryBudgetView": {
            "type": "object",
            "properties": {
                "budget": {
                    "description": "nil if no limit is set for the month",
                    "$ref": "#/definitions/models.MonthlyBudget"
                },
                "category": {
                    "$ref": "#/definitions/models.Category"
                },
                "remaining": {
                    "description": "Good-direction distance from the limit",
                    "type": "integer"
                },
                "spent": {
                    "description": "Actual spend (or income) in the month",
                    "type": "integer"
                }
            }
        },
        "models.MonthlyBudget": {
            "type": "object",
            "properties": {
                "categoryId": {
                    "description": "ID of the category the limit applies to",
                    "type": "string",
                    "example": "52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"
                },
                "createdAt": {
                    "description": "Time the resource was created",
                    "type": "string",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "deletedAt": {
                    "description": "Time the resource was marked as deleted",
                    "$ref": "#/definitions/gorm.DeletedAt"
                },
                "id": {
                    "description": "UUID for the resource",
                    "type": "string",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "limitAmount": {
                    "description": "The limit in cents, never negative",
                    "type": "integer",
                    "example": 10000
                },
                "month": {
                    "description": "The month the limit applies to",
                    "type": "string",
                    "example": "2026-01"
                },
                "updatedAt": {
                    "description": "Last time the resource was updated",
                    "type": "string",
                    "example": "2022-04-17T20:14:01.048145Z"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
