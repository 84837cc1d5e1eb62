package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/m-lima/connect4/internal/api/models"
	"github.com/m-lima/connect4/internal/api/response"
	"github.com/m-lima/connect4/internal/api/service"
	"github.com/m-lima/connect4/internal/game"
)

// GameController handles game-related HTTP requests.
type GameController struct {
	gameService service.GameService
}

// NewGameController creates a new GameController.
func NewGameController(gameService service.GameService) *GameController {
	return &GameController{
		gameService: gameService,
	}
}

// Create handles the new game endpoint.
func (gc *GameController) Create(c *gin.Context) {
	var req models.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := gc.gameService.Create(c.Request.Context(), &req)
	if err != nil {
		gc.fail(c, err)
		return
	}

	response.CreatedResponse(c, msg)
}

// Get handles the game snapshot endpoint.
func (gc *GameController) Get(c *gin.Context) {
	msg, err := gc.gameService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponse(c, msg)
}

// Move handles the move endpoint.
func (gc *GameController) Move(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := gc.gameService.Move(c.Request.Context(), c.Param("id"), *req.Column)
	if err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponse(c, msg)
}

// Delete handles the end game endpoint.
func (gc *GameController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := gc.gameService.Delete(c.Request.Context(), id); err != nil {
		gc.fail(c, err)
		return
	}

	response.SuccessResponse(c, gin.H{"id": id, "message": "Game deleted"})
}

func (gc *GameController) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		response.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrGameOver):
		response.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrComputerMove):
		slog.WarnContext(c.Request.Context(), "Computer move failed", "http.path", c.FullPath(), "error", err)
		response.ErrorResponse(c, http.StatusServiceUnavailable, service.ErrComputerMove.Error())
	case errors.Is(err, game.ErrOutOfBounds), errors.Is(err, game.ErrColumnFull):
		response.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.ErrorContext(c.Request.Context(), "Request failed", "http.path", c.FullPath(), "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "internal error")
	}
}
