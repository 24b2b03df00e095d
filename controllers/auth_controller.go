package controllers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"math/big"
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"
	"github.com/aswin-roy/jjjj/utils"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	verificationCodeTTL = 10 * time.Minute
	resetTokenTTL       = 15 * time.Minute
)

func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// POST /auth/register
func Register(c *fiber.Ctx) error {
	var body struct {
		FullName string `json:"fullname"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.FullName == "" || body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "fullname, email and password are required"})
	}
	if len(body.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "password must be at least 6 characters"})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	user := models.User{
		ID:        primitive.NewObjectID(),
		FullName:  body.FullName,
		Email:     body.Email,
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	if _, err := repository.CreateUser(user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "email already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "user registered successfully", "data": user})
}

// POST /auth/login
func Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.Email == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email and password are required"})
	}

	user, err := repository.GetUserByEmail(body.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid email or password"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "invalid email or password"})
	}

	token, err := utils.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "login successful", "token": token, "data": user})
}

// POST /auth/forgot-password
//
// Always answers 200 for unknown emails so the endpoint does not reveal
// which addresses are registered.
func ForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email is required"})
	}

	user, err := repository.GetUserByEmail(body.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.JSON(fiber.Map{"message": "if the email exists, a verification code has been sent"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	code, err := generateVerificationCode()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	expires := time.Now().Add(verificationCodeTTL)
	if err := repository.UpdateUserFields(user.ID, bson.M{
		"verificationCode":        code,
		"verificationCodeExpires": expires,
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	if err := utils.SendVerificationCode(user.Email, code); err != nil {
		log.Printf("verification mail to %s failed: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to send verification email"})
	}
	return c.JSON(fiber.Map{"message": "if the email exists, a verification code has been sent"})
}

// POST /auth/verify-code
func VerifyCode(c *fiber.Ctx) error {
	var body struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.BodyParser(&body); err != nil || body.Email == "" || body.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "email and code are required"})
	}

	user, err := repository.GetUserByEmail(body.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid or expired verification code"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	if user.VerificationCode == "" || user.VerificationCode != body.Code ||
		user.VerificationCodeExpires == nil || time.Now().After(*user.VerificationCodeExpires) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid or expired verification code"})
	}

	token, err := generateResetToken()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	expires := time.Now().Add(resetTokenTTL)
	if err := repository.UpdateUserFields(user.ID, bson.M{
		"resetPasswordToken":   token,
		"resetPasswordExpires": expires,
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if err := repository.ClearUserFields(user.ID, "verificationCode", "verificationCodeExpires"); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "code verified", "resetToken": token})
}

// POST /auth/reset-password
func ResetPassword(c *fiber.Ctx) error {
	var body struct {
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil || body.Token == "" || body.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "token and password are required"})
	}
	if len(body.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "password must be at least 6 characters"})
	}

	user, err := repository.GetUserByResetToken(body.Token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid or expired reset token"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if err := repository.UpdateUserFields(user.ID, bson.M{"password": string(hashed)}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if err := repository.ClearUserFields(user.ID, "resetPasswordToken", "resetPasswordExpires"); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "password reset successfully"})
}
