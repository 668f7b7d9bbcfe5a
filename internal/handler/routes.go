package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, categoryHandler *CategoryHandler, dashboardHandler *DashboardHandler, preferencesHandler *PreferencesHandler, tipsHandler *TipsHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/recent", transactionHandler.GetRecentTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := api.Group("/budgets")
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.PUT("/:category", budgetHandler.SetBudget)

	// Category routes
	categories := api.Group("/categories")
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/expense", categoryHandler.GetExpenseCategories)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:name", categoryHandler.DeleteCategory)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", dashboardHandler.GetSummary)

	// Accessibility preference routes
	preferences := api.Group("/preferences")
	preferences.GET("", preferencesHandler.GetPreferences)
	preferences.PATCH("", preferencesHandler.UpdatePreferences)
	preferences.POST("/reset", preferencesHandler.ResetPreferences)

	// Financial tips routes
	tips := api.Group("/tips")
	tips.GET("", tipsHandler.GetTips)
	tips.POST("/refresh", tipsHandler.RefreshTips)

	// WebSocket push channel
	e.GET("/ws", wsHandler.HandleWS)
}
