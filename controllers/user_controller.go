package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharathz8/Nutri-Go/models"
	"github.com/bharathz8/Nutri-Go/services"
	"github.com/bharathz8/Nutri-Go/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

type RegisterRequest struct {
	UserID              string   `json:"user_id" binding:"required"`
	Height              float64  `json:"height" binding:"required"`
	Weight              float64  `json:"weight" binding:"required"`
	Age                 int      `json:"age" binding:"required"`
	Gender              string   `json:"gender" binding:"required"`
	ActivityLevel       string   `json:"activity_level" binding:"required"`
	Goal                string   `json:"goal" binding:"required"`
	DietaryRestrictions []string `json:"dietary_restrictions"`
	HealthConditions    []string `json:"health_conditions"`
	PreferredLanguage   string   `json:"preferred_language"`
}

func (h *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.DietaryRestrictions == nil {
		req.DietaryRestrictions = []string{}
	}
	if req.HealthConditions == nil {
		req.HealthConditions = []string{}
	}
	if req.PreferredLanguage == "" {
		req.PreferredLanguage = models.DefaultLanguage
	}

	profile := &models.UserProfile{
		UserID:              req.UserID,
		Height:              req.Height,
		Weight:              req.Weight,
		Age:                 req.Age,
		Gender:              req.Gender,
		ActivityLevel:       req.ActivityLevel,
		Goal:                req.Goal,
		DietaryRestrictions: req.DietaryRestrictions,
		HealthConditions:    req.HealthConditions,
		PreferredLanguage:   req.PreferredLanguage,
	}

	if err := h.Users.Register(profile); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bmi := utils.CalculateBMI(profile.Height, profile.Weight)
	c.JSON(http.StatusOK, gin.H{
		"message":              "User registered successfully",
		"user_id":              profile.UserID,
		"bmi":                  bmi,
		"bmi_category":         utils.BMICategory(bmi),
		"daily_calorie_target": utils.DailyCalorieTarget(profile),
		"preferred_language":   profile.PreferredLanguage,
	})
}

func (h *UserController) GetUser(c *gin.Context) {
	profile, err := h.Users.Get(c.Param("user_id"))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	bmi := utils.CalculateBMI(profile.Height, profile.Weight)
	c.JSON(http.StatusOK, gin.H{
		"profile":              profile,
		"bmi":                  bmi,
		"bmi_category":         utils.BMICategory(bmi),
		"daily_calorie_target": utils.DailyCalorieTarget(profile),
	})
}
