package controllers

import (
	"errors"
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MeasurementView is a measurement record with its customer resolved.
type MeasurementView struct {
	models.Measurement
	CustomerName  string `json:"customername"`
	CustomerPhone string `json:"customerphone,omitempty"`
}

func buildMeasurementViews(measurements []models.Measurement, customers map[string]models.Customer) []MeasurementView {
	views := make([]MeasurementView, 0, len(measurements))
	for _, m := range measurements {
		view := MeasurementView{Measurement: m, CustomerName: "Unknown Customer"}
		if cust, ok := customers[m.CustomerID.Hex()]; ok && cust.Name != "" {
			view.CustomerName = cust.Name
			view.CustomerPhone = cust.Phone
		}
		views = append(views, view)
	}
	return views
}

// GET /measurements
func GetAllMeasurements(c *fiber.Ctx) error {
	measurements, err := repository.GetAllMeasurements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	ids := make([]primitive.ObjectID, 0, len(measurements))
	for _, m := range measurements {
		ids = append(ids, m.CustomerID)
	}
	customers, err := repository.GetCustomersByIDs(ids)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": buildMeasurementViews(measurements, customers)})
}

// GET /measurements/:customerId
func GetMeasurementByCustomer(c *fiber.Ctx) error {
	customerID, err := primitive.ObjectIDFromHex(c.Params("customerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}
	m, err := repository.GetMeasurementByCustomer(customerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "measurement not found for this customer"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": m})
}

func measurementSet(in models.MeasurementInput) bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if in.UpperBody != nil {
		set["upperBody"] = in.UpperBody
	}
	if in.LowerBody != nil {
		set["lowerBody"] = in.LowerBody
	}
	if in.Notes != "" {
		set["notes"] = in.Notes
	}
	return set
}

// POST /measurements/:customerId
//
// Upsert: one measurement record per customer. Posting again overwrites the
// sections supplied and leaves the rest in place.
func SaveMeasurement(c *fiber.Ctx) error {
	customerID, err := primitive.ObjectIDFromHex(c.Params("customerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}

	if _, err := repository.GetCustomerByID(customerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	var body models.MeasurementInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.UpperBody == nil && body.LowerBody == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "at least one of upperBody or lowerBody is required"})
	}

	m, err := repository.UpsertMeasurement(customerID, measurementSet(body))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "measurement saved successfully", "data": m})
}

// PUT /measurements/:customerId
//
// Unlike the POST upsert, updating requires the record to exist.
func UpdateMeasurement(c *fiber.Ctx) error {
	customerID, err := primitive.ObjectIDFromHex(c.Params("customerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}

	var body models.MeasurementInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.UpperBody == nil && body.LowerBody == nil && body.Notes == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no fields to update"})
	}

	m, err := repository.UpdateMeasurement(customerID, measurementSet(body))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "measurement not found for this customer"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "measurement updated successfully", "data": m})
}
