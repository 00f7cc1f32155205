package main

// @title Stock Tracking API
// @version 1.0
// @description Inventory and stock-out tracking service for food goods with full observability (logging, tracing, metrics)
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/canakboyraz/StokTakipUygulamasi
// @contact.email support@example.com

// @license.name MIT
// @license.url https://github.com/canakboyraz/StokTakipUygulamasi/blob/main/LICENSE

// @host localhost:8080
// @BasePath /

// @tag.name Products
// @tag.description Product management endpoints

// @tag.name Categories
// @tag.description Category management endpoints

// @tag.name StockOut
// @tag.description Stock-out transaction and history endpoints

// @tag.name Health
// @tag.description Health check endpoints

// @tag.name Swagger
// @tag.description Swagger documentation endpoints
