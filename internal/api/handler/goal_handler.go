package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/moneyvault/vault-api/internal/core/domain"
	"github.com/moneyvault/vault-api/internal/core/ports"
)

// GoalHandler handles HTTP requests for savings goals.
type GoalHandler struct {
	service ports.GoalService
}

func NewGoalHandler(service ports.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

type saveGoalRequest struct {
	Username   string      `json:"username"`
	Target     looseNumber `json:"target"`
	Strategies any         `json:"strategies"`
}

// Save stores a new goal record. No field is required: a non-numeric
// target coerces to 0 and the save still succeeds.
//
// @Summary      Save a savings goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        body  body      saveGoalRequest  true  "Goal details"
// @Success      200   {object}  statusResponse
// @Router       /save_goal [post]
func (h *GoalHandler) Save(c echo.Context) error {
	var req saveGoalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.service.SaveGoal(c.Request().Context(), ports.SaveGoalInput{
		Username:   req.Username,
		Target:     float64(req.Target),
		Strategies: req.Strategies,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{Status: "success"})
}

// List returns all goals for a user, newest first.
//
// @Summary      List savings goals
// @Tags         goals
// @Produce      json
// @Param        name  query  string  false  "Username"
// @Success      200   {array}  domain.Goal
// @Router       /get_goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	goals, err := h.service.Goals(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return err
	}
	if goals == nil {
		goals = []domain.Goal{}
	}
	return c.JSON(http.StatusOK, goals)
}
