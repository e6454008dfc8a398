package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"banglabet-backend/internal/models"
	"banglabet-backend/internal/services"
)

type CatalogHandler struct {
	store *services.Store
}

func NewCatalogHandler(store *services.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) ListSlotGames(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"games": h.store.SlotGamesByCategory(category)})
		return
	}
	if c.Query("popular") == "true" {
		c.JSON(http.StatusOK, gin.H{"games": h.store.PopularSlotGames()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": h.store.ListSlotGames()})
}

func (h *CatalogHandler) GetSlotGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	game := h.store.GetSlotGame(id)
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": game})
}

func (h *CatalogHandler) CreateSlotGame(c *gin.Context) {
	var game models.SlotGame
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"game": h.store.CreateSlotGame(&game)})
}

func (h *CatalogHandler) ListLiveCasinoGames(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"games": h.store.LiveCasinoGamesByCategory(category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"games": h.store.ListLiveCasinoGames()})
}

func (h *CatalogHandler) GetLiveCasinoGame(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	game := h.store.GetLiveCasinoGame(id)
	if game == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"game": game})
}

func (h *CatalogHandler) CreateLiveCasinoGame(c *gin.Context) {
	var game models.LiveCasinoGame
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"game": h.store.CreateLiveCasinoGame(&game)})
}

func (h *CatalogHandler) ListSportMatches(c *gin.Context) {
	if c.Query("live") == "true" {
		c.JSON(http.StatusOK, gin.H{"matches": h.store.LiveSportMatches()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"matches": h.store.ListSportMatches()})
}

func (h *CatalogHandler) ListLiveSportMatches(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"matches": h.store.LiveSportMatches()})
}

func (h *CatalogHandler) GetSportMatch(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	match := h.store.GetSportMatch(id)
	if match == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Match not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": match})
}

func (h *CatalogHandler) CreateSportMatch(c *gin.Context) {
	var match models.SportMatch
	if err := c.ShouldBindJSON(&match); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"match": h.store.CreateSportMatch(&match)})
}

func (h *CatalogHandler) ListPromotions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"promotions": h.store.ListPromotions()})
}

func (h *CatalogHandler) CreatePromotion(c *gin.Context) {
	var promo models.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"promotion": h.store.CreatePromotion(&promo)})
}

// ListActiveDepositPhones is the public read used by the deposit page.
func (h *CatalogHandler) ListActiveDepositPhones(c *gin.Context) {
	phones := h.store.ActiveDepositPhones()
	if phones == nil {
		phones = []*models.DepositPhone{}
	}
	c.JSON(http.StatusOK, gin.H{"phones": phones})
}

// pathID parses the :id path parameter, answering 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
