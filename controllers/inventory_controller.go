package controllers

import (
	"errors"
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /inventory
func GetAllInventory(c *fiber.Ctx) error {
	items, err := repository.GetAllInventory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": items})
}

// GET /inventory/:id
func GetInventoryByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Inventory ID format"})
	}
	item, err := repository.GetInventoryByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "inventory item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": item})
}

// POST /inventory
func CreateInventory(c *fiber.Ctx) error {
	var body models.InventoryInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.ProductName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productname is required"})
	}
	if body.Price != nil && *body.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price cannot be negative"})
	}
	if body.Stock != nil && *body.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "stock cannot be negative"})
	}

	now := time.Now()
	item := models.InventoryItem{
		ID:          primitive.NewObjectID(),
		ProductName: body.ProductName,
		SKUCode:     body.SKUCode,
		Category:    body.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if body.Price != nil {
		item.Price = *body.Price
	}
	if body.Stock != nil {
		item.Stock = *body.Stock
	}
	if _, err := repository.CreateInventory(item); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "inventory item created successfully", "data": item})
}

// PUT /inventory/:id
func UpdateInventory(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Inventory ID format"})
	}

	var body models.InventoryInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.Price != nil && *body.Price < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price cannot be negative"})
	}
	if body.Stock != nil && *body.Stock < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "stock cannot be negative"})
	}

	item, err := repository.UpdateInventory(id, body)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "inventory item not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "inventory item updated successfully", "data": item})
}

// DELETE /inventory/:id
func DeleteInventory(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Inventory ID format"})
	}
	res, err := repository.DeleteInventory(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "inventory item not found"})
	}
	return c.JSON(fiber.Map{"message": "inventory item deleted successfully"})
}
