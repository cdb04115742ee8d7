// file: internals/features/users/controller/user_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"careconnect_backend/internals/configs"
	"careconnect_backend/internals/constants"
	"careconnect_backend/internals/features/users/dto"
	"careconnect_backend/internals/features/users/model"
	helper "careconnect_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		DB:       db,
		Validate: validator.New(),
	}
}

// 📝 POST /api/users/register
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := model.UserModel{
		UserName:     req.Name,
		UserEmail:    req.Email,
		UserPassword: string(hashed),
		UserRole:     constants.RoleUser,
	}
	if req.Role != "" {
		user.UserRole = req.Role
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return helper.Error(c, fiber.StatusBadRequest, "Email already exists")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  user.UserID,
	})
}

// 🔑 POST /api/users/login
func (ctrl *UserController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_email = ?", req.Email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid password")
	}

	claims := jwt.MapClaims{
		"id":    user.UserID.String(),
		"role":  user.UserRole,
		"email": user.UserEmail,
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"user": dto.UserResponse{
			UserID: user.UserID.String(),
			Name:   user.UserName,
			Email:  user.UserEmail,
			Role:   user.UserRole,
			Points: user.UserPoint,
		},
	})
}

// 👤 GET /api/users/me
func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	return helper.Success(c, "OK", user)
}

// 📋 GET /api/users — admin only
func (ctrl *UserController) GetAll(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := ctrl.DB.Order("created_at DESC").Find(&users).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}
	return helper.List(c, users, len(users))
}
