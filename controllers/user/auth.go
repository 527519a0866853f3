package userControllers

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/aliroohan/TagHeuer-Backend/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Terms       bool       `json:"terms"`
	News        bool       `json:"news"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Country     string     `json:"country"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// generateToken signs a JWT carrying the user identity and role.
func generateToken(user models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"is_admin": user.IsAdmin,
		"exp":      time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// POST /api/users
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}
		if input.Email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide email, password, first name and last name"})
			return
		}

		var existing models.User
		if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email already registered"})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
			return
		}

		user := models.User{
			Email:       input.Email,
			Password:    string(hash),
			FirstName:   input.FirstName,
			LastName:    input.LastName,
			Terms:       input.Terms,
			News:        input.News,
			Phone:       input.Phone,
			DateOfBirth: input.DateOfBirth,
			Country:     input.Country,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create user"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "data": user})
	}
}

func login(db *gorm.DB, input LoginInput) (models.User, string, error) {
	var user models.User
	if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		return models.User{}, "", errors.New("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return models.User{}, "", errors.New("invalid email or password")
	}
	token, err := generateToken(user)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}

// POST /api/users/login
func LoginUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide email and password"})
			return
		}

		user, token, err := login(db, input)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": user, "token": token}})
	}
}

// POST /api/users/adminLogin
func LoginAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide email and password"})
			return
		}

		user, token, err := login(db, input)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
			return
		}
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied. Admin privileges required"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"user": user, "token": token}})
	}
}
