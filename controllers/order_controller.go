package controllers

import (
	"errors"
	"fmt"
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssignmentView is a worker assignment with the worker's name resolved.
type AssignmentView struct {
	Worker     primitive.ObjectID `json:"worker"`
	WorkerName string             `json:"workerName"`
	Task       string             `json:"task"`
	Date       time.Time          `json:"date"`
	Commission float64            `json:"commission"`
}

// OrderView is an order projected for reads, with customer and assignment
// worker names resolved. Dangling refs render as Unknown.
type OrderView struct {
	ID               primitive.ObjectID `json:"_id"`
	CustomerID       primitive.ObjectID `json:"customerId"`
	CustomerName     string             `json:"customerName"`
	CustomerPhone    string             `json:"customerPhone"`
	Item             string             `json:"item,omitempty"`
	Status           string             `json:"status"`
	DeliveryDate     time.Time          `json:"deliveryDate,omitempty"`
	WorkerAssignment []AssignmentView   `json:"workerAssignment"`
	CreatedAt        time.Time          `json:"createdAt"`
}

func buildOrderViews(orders []models.Order, customers map[string]models.Customer, workers map[string]models.Worker) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		view := OrderView{
			ID:               o.ID,
			CustomerID:       o.CustomerID,
			CustomerName:     "Unknown",
			Item:             o.Item,
			Status:           o.Status,
			DeliveryDate:     o.DeliveryDate,
			WorkerAssignment: make([]AssignmentView, 0, len(o.WorkerAssignment)),
			CreatedAt:        o.CreatedAt,
		}
		if cust, ok := customers[o.CustomerID.Hex()]; ok && cust.Name != "" {
			view.CustomerName = cust.Name
			view.CustomerPhone = cust.Phone
		}
		for _, wa := range o.WorkerAssignment {
			av := AssignmentView{
				Worker:     wa.Worker,
				WorkerName: "Unknown",
				Task:       wa.Task,
				Date:       wa.Date,
				Commission: wa.Commission,
			}
			if w, ok := workers[wa.Worker.Hex()]; ok && w.Name != "" {
				av.WorkerName = w.Name
			}
			view.WorkerAssignment = append(view.WorkerAssignment, av)
		}
		views = append(views, view)
	}
	return views
}

func collectAssignmentWorkerIDs(orders []models.Order) []primitive.ObjectID {
	seen := map[string]struct{}{}
	var ids []primitive.ObjectID
	for _, o := range orders {
		for _, wa := range o.WorkerAssignment {
			if _, ok := seen[wa.Worker.Hex()]; ok {
				continue
			}
			seen[wa.Worker.Hex()] = struct{}{}
			ids = append(ids, wa.Worker)
		}
	}
	return ids
}

func resolveOrderViews(c *fiber.Ctx, orders []models.Order) ([]OrderView, error) {
	customers, err := repository.GetCustomersByIDs(collectOrderCustomerIDs(orders))
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	workers, err := repository.GetWorkersByIDs(collectAssignmentWorkerIDs(orders))
	if err != nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return buildOrderViews(orders, customers, workers), nil
}

// GET /orders
func GetAllOrders(c *fiber.Ctx) error {
	orders, err := repository.GetAllOrders()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	views, err := resolveOrderViews(c, orders)
	if views == nil {
		return err
	}
	return c.JSON(fiber.Map{"data": views})
}

// GET /orders/:id
func GetOrderByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Order ID format"})
	}
	order, err := repository.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	views, verr := resolveOrderViews(c, []models.Order{*order})
	if views == nil {
		return verr
	}
	return c.JSON(fiber.Map{"data": views[0]})
}

// POST /orders
func CreateOrder(c *fiber.Ctx) error {
	var body struct {
		CustomerID   string `json:"customerId"`
		Item         string `json:"item"`
		Status       string `json:"status"`
		DeliveryDate string `json:"deliveryDate"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	customerID, err := primitive.ObjectIDFromHex(body.CustomerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}
	if _, err := repository.GetCustomerByID(customerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	status := body.Status
	if status == "" {
		status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order status"})
	}

	order := models.Order{
		ID:               primitive.NewObjectID(),
		CustomerID:       customerID,
		Item:             body.Item,
		Status:           status,
		WorkerAssignment: []models.WorkerAssignment{},
		CreatedAt:        time.Now(),
	}
	if body.DeliveryDate != "" {
		d, err := time.ParseInLocation("2006-01-02", body.DeliveryDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "deliveryDate must be YYYY-MM-DD"})
		}
		order.DeliveryDate = d
	}

	if _, err := repository.CreateOrder(order); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "order created successfully", "data": order})
}

// assignmentInput is one caller-supplied worker assignment line.
type assignmentInput struct {
	Worker     string  `json:"worker"`
	Task       string  `json:"task"`
	Date       string  `json:"date"`
	Commission float64 `json:"commission"`
}

// parseAssignments validates and converts caller-supplied assignment lines.
// A missing date defaults to now.
func parseAssignments(inputs []assignmentInput) ([]models.WorkerAssignment, error) {
	parsed := make([]models.WorkerAssignment, 0, len(inputs))
	for idx, in := range inputs {
		workerID, err := primitive.ObjectIDFromHex(in.Worker)
		if err != nil {
			return nil, fmt.Errorf("workerAssignment[%d].worker is not a valid id", idx)
		}
		if in.Task == "" {
			return nil, fmt.Errorf("workerAssignment[%d].task is required", idx)
		}
		if in.Commission < 0 {
			return nil, fmt.Errorf("workerAssignment[%d].commission cannot be negative", idx)
		}
		wa := models.WorkerAssignment{
			Worker:     workerID,
			Task:       in.Task,
			Date:       time.Now(),
			Commission: in.Commission,
		}
		if in.Date != "" {
			d, err := time.ParseInLocation("2006-01-02", in.Date, time.Local)
			if err != nil {
				return nil, fmt.Errorf("workerAssignment[%d].date must be YYYY-MM-DD", idx)
			}
			wa.Date = d
		}
		parsed = append(parsed, wa)
	}
	return parsed, nil
}

// PUT /orders/:id
//
// Generic update: besides the scalar fields, the whole workerAssignment
// array is replaceable here; POST /orders/:id/assign appends a single one.
func UpdateOrder(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Order ID format"})
	}

	var body struct {
		CustomerID       string             `json:"customerId"`
		Item             string             `json:"item"`
		Status           string             `json:"status"`
		DeliveryDate     string             `json:"deliveryDate"`
		WorkerAssignment *[]assignmentInput `json:"workerAssignment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	set := bson.M{}
	if body.CustomerID != "" {
		customerID, err := primitive.ObjectIDFromHex(body.CustomerID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
		}
		if _, err := repository.GetCustomerByID(customerID); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
		}
		set["customerId"] = customerID
	}
	if body.Item != "" {
		set["item"] = body.Item
	}
	if body.Status != "" {
		if !models.ValidOrderStatus(body.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order status"})
		}
		set["status"] = body.Status
	}
	if body.DeliveryDate != "" {
		d, err := time.ParseInLocation("2006-01-02", body.DeliveryDate, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "deliveryDate must be YYYY-MM-DD"})
		}
		set["deliveryDate"] = d
	}
	if body.WorkerAssignment != nil {
		// full replacement; an empty array clears the assignments
		assignments, err := parseAssignments(*body.WorkerAssignment)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		set["workerAssignment"] = assignments
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no fields to update"})
	}

	order, err := repository.UpdateOrder(id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "order updated successfully", "data": order})
}

// POST /orders/:id/assign
//
// Appends one worker assignment atomically. Assignments are append-only;
// there is no unassign.
func AddWorkerAssignment(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Order ID format"})
	}

	var body assignmentInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	parsed, err := parseAssignments([]assignmentInput{body})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	assignment := parsed[0]

	if _, err := repository.GetWorkerByID(assignment.Worker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "worker not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	order, err := repository.PushWorkerAssignment(id, assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "worker assigned successfully", "data": order})
}

// DELETE /orders/:id
func DeleteOrder(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Order ID format"})
	}
	res, err := repository.DeleteOrder(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
	}
	return c.JSON(fiber.Map{"message": "order deleted successfully"})
}
