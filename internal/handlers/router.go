package handlers

import (
	"github.com/gin-gonic/gin"

	"banglabet-backend/internal/config"
	"banglabet-backend/internal/middleware"
	"banglabet-backend/internal/services"
)

// RegisterRoutes wires every endpoint onto the router. Catalog reads are
// public; catalog writes require authentication; everything under
// /api/admin additionally requires the admin flag.
func RegisterRoutes(router *gin.Engine, store *services.Store, sessions *services.SessionService, cfg *config.Config, ws *WebSocketHandler) {
	authHandler := NewAuthHandler(store, sessions, cfg)
	walletHandler := NewWalletHandler(store)
	catalogHandler := NewCatalogHandler(store)
	adminHandler := NewAdminHandler(store)

	router.GET("/ws", ws.HandleWebSocket)

	api := router.Group("/api")

	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	api.GET("/slots", catalogHandler.ListSlotGames)
	api.GET("/slots/:id", catalogHandler.GetSlotGame)
	api.GET("/live-casino", catalogHandler.ListLiveCasinoGames)
	api.GET("/live-casino/:id", catalogHandler.GetLiveCasinoGame)
	api.GET("/sports", catalogHandler.ListSportMatches)
	api.GET("/sports/live", catalogHandler.ListLiveSportMatches)
	api.GET("/sports/:id", catalogHandler.GetSportMatch)
	api.GET("/promotions", catalogHandler.ListPromotions)
	api.GET("/deposit-phones", catalogHandler.ListActiveDepositPhones)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(store, sessions))
	{
		authed.POST("/logout", authHandler.Logout)
		authed.GET("/user", authHandler.CurrentUser)
		authed.POST("/make-admin", authHandler.MakeAdmin)
		authed.PATCH("/profile", authHandler.UpdateProfile)
		authed.POST("/password", authHandler.ChangePassword)

		authed.POST("/slots", catalogHandler.CreateSlotGame)
		authed.POST("/live-casino", catalogHandler.CreateLiveCasinoGame)
		authed.POST("/sports", catalogHandler.CreateSportMatch)
		authed.POST("/promotions", catalogHandler.CreatePromotion)

		authed.GET("/transactions", walletHandler.ListTransactions)
		authed.POST("/transactions/deposit", walletHandler.Deposit)
		authed.POST("/transactions/withdraw", walletHandler.Withdraw)
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(store, sessions), middleware.AdminRequired())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.PATCH("/users/:id", adminHandler.UpdateUser)
		admin.GET("/stats", adminHandler.Stats)

		admin.GET("/transactions", adminHandler.ListTransactions)
		admin.POST("/transactions", adminHandler.CreateTransaction)
		admin.PATCH("/transactions/:id/status", adminHandler.UpdateTransactionStatus)

		admin.GET("/deposit-phones", adminHandler.ListDepositPhones)
		admin.POST("/deposit-phones", adminHandler.CreateDepositPhone)
		admin.PATCH("/deposit-phones/:id", adminHandler.UpdateDepositPhone)
		admin.DELETE("/deposit-phones/:id", adminHandler.DeleteDepositPhone)
		admin.POST("/deposit-phones/:id/toggle", adminHandler.ToggleDepositPhone)
	}
}
