package controllers

import (
	"errors"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GET /customers
func GetAllCustomers(c *fiber.Ctx) error {
	customers, err := repository.GetAllCustomers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": customers})
}

// GET /customers/:id
func GetCustomerByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}
	customer, err := repository.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": customer})
}

// POST /customers
func CreateCustomer(c *fiber.Ctx) error {
	var body models.CustomerInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "customername is required"})
	}
	if body.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "customerphone is required"})
	}

	customer := models.Customer{
		ID:      primitive.NewObjectID(),
		Name:    body.Name,
		Phone:   body.Phone,
		Address: body.Address,
	}
	if _, err := repository.CreateCustomer(customer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "customer created successfully", "data": customer})
}

// PUT /customers/:id
func UpdateCustomer(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}

	var body models.CustomerInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	customer, err := repository.UpdateCustomer(id, body)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "customer updated successfully", "data": customer})
}

// DELETE /customers/:id
//
// Hard delete. Measurements, orders and sales entries keep their customer
// refs; readers render Unknown for dangling ones.
func DeleteCustomer(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}
	res, err := repository.DeleteCustomer(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
	}
	return c.JSON(fiber.Map{"message": "customer deleted successfully"})
}
