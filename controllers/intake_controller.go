package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bharathz8/Nutri-Go/services"
)

type IntakeController struct {
	Users   *services.UserService
	Entries *services.EntryService
}

func NewIntakeController(users *services.UserService, entries *services.EntryService) *IntakeController {
	return &IntakeController{Users: users, Entries: entries}
}

func (h *IntakeController) DailyIntake(c *gin.Context) {
	profile, err := h.Users.Get(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	out, err := h.Entries.DailyIntake(profile, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *IntakeController) WeeklySummary(c *gin.Context) {
	profile, err := h.Users.Get(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	start := time.Now().AddDate(0, 0, -6)
	if v := c.Query("start_date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	out, err := h.Entries.WeeklySummary(profile, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}
