// Package docs регистрирует описание API для swagger UI.
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
				"produces": [
					"application/json"
				],
				"tags": [
					"system"
				],
				"summary": "Health check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "object",
							"additionalProperties": true
						}
					}
				}
			}
		},
		"/rates": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"rates"
				],
				"summary": "Текущие курсы",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.RatesResponse"
						}
					}
				}
			}
		},
		"/currencies": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"rates"
				],
				"summary": "Список валют",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.CurrenciesResponse"
						}
					}
				}
			}
		},
		"/convert": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"rates"
				],
				"summary": "Разовый пересчёт суммы",
				"parameters": [
					{
						"description": "Параметры пересчёта",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.ConvertRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.ConvertResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Создать сессию калькулятора",
				"parameters": [
					{
						"description": "Начальные валюты и режим",
						"name": "request",
						"in": "body",
						"required": false,
						"schema": {
							"$ref": "#/definitions/models.CreateSessionRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Состояние сессии",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Удалить сессию",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
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
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions/{id}/mode": {
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Сменить режим обмена",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Режим",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.SetModeRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions/{id}/currencies": {
			"put": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Сменить валюты",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Валюты",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.SetCurrenciesRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions/{id}/focus": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Фокус на поле ввода",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Поле",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.FocusRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions/{id}/blur": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Снять фокус",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions/{id}/input": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Ввод суммы",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Текст поля",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/models.InputRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/sessions/{id}/swap": {
			"post": {
				"produces": [
					"application/json"
				],
				"tags": [
					"sessions"
				],
				"summary": "Поменять валюты местами",
				"parameters": [
					{
						"type": "string",
						"description": "ID сессии",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/models.SessionResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/models.ErrorResponse"
						}
					}
				}
			}
		},
		"/accounts": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"funds"
				],
				"summary": "Счета клиента",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Account"
							}
						}
					}
				}
			}
		},
		"/cards": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"funds"
				],
				"summary": "Карты клиента",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.Card"
							}
						}
					}
				}
			}
		},
		"/sources": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"funds"
				],
				"summary": "Источники средств",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/models.SourceItem"
							}
						}
					}
				}
			}
		}
	},
	"definitions": {
		"models.Account": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"name": {
					"type": "string"
				},
				"balance": {
					"type": "number"
				}
			}
		},
		"models.Card": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"limit": {
					"type": "number"
				}
			}
		},
		"models.ConvertRequest": {
			"type": "object",
			"required": [
				"from",
				"to"
			],
			"properties": {
				"amount": {
					"type": "number"
				},
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"mode": {
					"type": "string",
					"enum": [
						"cash",
						"cashless"
					]
				},
				"solve": {
					"type": "string",
					"enum": [
						"from",
						"to"
					]
				}
			}
		},
		"models.ConvertResponse": {
			"type": "object",
			"properties": {
				"amount": {
					"type": "number"
				},
				"result": {
					"type": "number"
				},
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"mode": {
					"type": "string"
				},
				"solve": {
					"type": "string"
				}
			}
		},
		"models.CreateSessionRequest": {
			"type": "object",
			"properties": {
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"mode": {
					"type": "string",
					"enum": [
						"cash",
						"cashless"
					]
				}
			}
		},
		"models.CurrenciesResponse": {
			"type": "object",
			"properties": {
				"base": {
					"type": "string"
				},
				"currencies": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"models.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				}
			}
		},
		"models.FocusRequest": {
			"type": "object",
			"required": [
				"field"
			],
			"properties": {
				"field": {
					"type": "string",
					"enum": [
						"from",
						"to"
					]
				}
			}
		},
		"models.InputRequest": {
			"type": "object",
			"required": [
				"field"
			],
			"properties": {
				"field": {
					"type": "string",
					"enum": [
						"from",
						"to"
					]
				},
				"text": {
					"type": "string"
				}
			}
		},
		"models.RateQuote": {
			"type": "object",
			"properties": {
				"external_id": {
					"type": "string"
				},
				"cash_sell": {
					"type": "number"
				},
				"cashless_sell": {
					"type": "number"
				},
				"cash_buy": {
					"type": "number"
				},
				"cashless_buy": {
					"type": "number"
				}
			}
		},
		"models.RatesResponse": {
			"type": "object",
			"properties": {
				"base": {
					"type": "string"
				},
				"loaded_at": {
					"type": "string"
				},
				"rates": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.RateQuote"
					}
				}
			}
		},
		"models.SessionResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"mode": {
					"type": "string"
				},
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				},
				"from_options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"to_options": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"from_amount": {
					"type": "string"
				},
				"to_amount": {
					"type": "string"
				},
				"raw_from": {
					"type": "number"
				},
				"raw_to": {
					"type": "number"
				},
				"last_edited": {
					"type": "string"
				},
				"editing": {
					"type": "string"
				},
				"accepted": {
					"type": "boolean"
				}
			}
		},
		"models.SetCurrenciesRequest": {
			"type": "object",
			"properties": {
				"from": {
					"type": "string"
				},
				"to": {
					"type": "string"
				}
			}
		},
		"models.SetModeRequest": {
			"type": "object",
			"required": [
				"mode"
			],
			"properties": {
				"mode": {
					"type": "string",
					"enum": [
						"cash",
						"cashless"
					]
				}
			}
		},
		"models.SourceItem": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string"
				},
				"raw_id": {},
				"type": {
					"type": "string"
				},
				"name": {
					"type": "string"
				},
				"amount": {
					"type": "number"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Exchange Calculator API",
	Description:      "Двусторонний калькулятор обмена валют по таблице курсов",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
