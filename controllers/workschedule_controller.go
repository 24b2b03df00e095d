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

type workScheduleBody struct {
	OrderID        string   `json:"orderId"`
	WorkerID       string   `json:"workerId"`
	Task           string   `json:"task"`
	ScheduledDate  string   `json:"scheduledDate"`
	StartDate      string   `json:"startDate"`
	EndDate        string   `json:"endDate"`
	Status         string   `json:"status"`
	Notes          string   `json:"notes"`
	EstimatedHours *float64 `json:"estimatedHours"`
	ActualHours    *float64 `json:"actualHours"`
}

func parseScheduleDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// POST /workschedule
func CreateWorkSchedule(c *fiber.Ctx) error {
	var body workScheduleBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	orderID, err := primitive.ObjectIDFromHex(body.OrderID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Order ID format"})
	}
	workerID, err := primitive.ObjectIDFromHex(body.WorkerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Worker ID format"})
	}
	if body.Task == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "task is required"})
	}
	if body.ScheduledDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "scheduledDate is required"})
	}
	scheduledDate, err := parseScheduleDate(body.ScheduledDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "scheduledDate must be YYYY-MM-DD"})
	}

	status := body.Status
	if status == "" {
		status = models.ScheduleStatusPending
	}
	if !models.ValidScheduleStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid schedule status"})
	}

	// Schedules must point at live records; dangling refs are rejected here
	if _, err := repository.GetOrderByID(orderID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if _, err := repository.GetWorkerByID(workerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "worker not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	now := time.Now()
	schedule := models.WorkSchedule{
		ID:             primitive.NewObjectID(),
		OrderID:        orderID,
		WorkerID:       workerID,
		Task:           body.Task,
		ScheduledDate:  scheduledDate,
		Status:         status,
		Notes:          body.Notes,
		EstimatedHours: body.EstimatedHours,
		ActualHours:    body.ActualHours,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if body.StartDate != "" {
		d, err := parseScheduleDate(body.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "startDate must be YYYY-MM-DD"})
		}
		schedule.StartDate = &d
	}
	if body.EndDate != "" {
		d, err := parseScheduleDate(body.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "endDate must be YYYY-MM-DD"})
		}
		schedule.EndDate = &d
	}

	if _, err := repository.CreateWorkSchedule(schedule); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "work schedule created successfully", "data": schedule})
}

// GET /workschedule
func GetAllWorkSchedules(c *fiber.Ctx) error {
	filter := bson.M{}
	if status := c.Query("status", ""); status != "" {
		if !models.ValidScheduleStatus(status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid schedule status"})
		}
		filter["status"] = status
	}
	if workerStr := c.Query("workerId", ""); workerStr != "" {
		workerID, err := primitive.ObjectIDFromHex(workerStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Worker ID format"})
		}
		filter["workerId"] = workerID
	}
	if orderStr := c.Query("orderId", ""); orderStr != "" {
		orderID, err := primitive.ObjectIDFromHex(orderStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Order ID format"})
		}
		filter["orderId"] = orderID
	}
	if startStr := c.Query("startDate", ""); startStr != "" {
		start, err := parseScheduleDate(startStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "startDate must be YYYY-MM-DD"})
		}
		endStr := c.Query("endDate", "")
		rangeFilter := bson.M{"$gte": start}
		if endStr != "" {
			end, err := parseScheduleDate(endStr)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "endDate must be YYYY-MM-DD"})
			}
			rangeFilter["$lte"] = end.AddDate(0, 0, 1).Add(-time.Millisecond)
		}
		filter["scheduledDate"] = rangeFilter
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 50)
	if limit < 1 {
		limit = 50
	}

	skip := int64((page - 1) * limit)
	schedules, total, err := repository.ListWorkSchedules(filter, "scheduledDate", 1, skip, int64(limit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"data": schedules,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}

// GET /workschedule/:id
func GetWorkScheduleByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Schedule ID format"})
	}
	schedule, err := repository.GetWorkScheduleByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "work schedule not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": schedule})
}

// PUT /workschedule/:id
func UpdateWorkSchedule(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Schedule ID format"})
	}

	var body workScheduleBody
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	set := bson.M{}
	if body.Task != "" {
		set["task"] = body.Task
	}
	if body.Status != "" {
		if !models.ValidScheduleStatus(body.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid schedule status"})
		}
		set["status"] = body.Status
	}
	if body.Notes != "" {
		set["notes"] = body.Notes
	}
	if body.ScheduledDate != "" {
		d, err := parseScheduleDate(body.ScheduledDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "scheduledDate must be YYYY-MM-DD"})
		}
		set["scheduledDate"] = d
	}
	if body.StartDate != "" {
		d, err := parseScheduleDate(body.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "startDate must be YYYY-MM-DD"})
		}
		set["startDate"] = d
	}
	if body.EndDate != "" {
		d, err := parseScheduleDate(body.EndDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "endDate must be YYYY-MM-DD"})
		}
		set["endDate"] = d
	}
	if body.EstimatedHours != nil {
		set["estimatedHours"] = *body.EstimatedHours
	}
	if body.ActualHours != nil {
		set["actualHours"] = *body.ActualHours
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no fields to update"})
	}
	set["updatedAt"] = time.Now()

	schedule, err := repository.UpdateWorkSchedule(id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "work schedule not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "work schedule updated successfully", "data": schedule})
}

// DELETE /workschedule/:id
func DeleteWorkSchedule(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Schedule ID format"})
	}
	res, err := repository.DeleteWorkSchedule(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "work schedule not found"})
	}
	return c.JSON(fiber.Map{"message": "work schedule deleted successfully"})
}

// GET /workschedule/worker/:workerId
func GetWorkSchedulesByWorker(c *fiber.Ctx) error {
	workerID, err := primitive.ObjectIDFromHex(c.Params("workerId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Worker ID format"})
	}

	filter := bson.M{"workerId": workerID}
	if status := c.Query("status", ""); status != "" {
		if !models.ValidScheduleStatus(status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid schedule status"})
		}
		filter["status"] = status
	}
	if startStr := c.Query("startDate", ""); startStr != "" {
		start, err := parseScheduleDate(startStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "startDate must be YYYY-MM-DD"})
		}
		rangeFilter := bson.M{"$gte": start}
		if endStr := c.Query("endDate", ""); endStr != "" {
			end, err := parseScheduleDate(endStr)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "endDate must be YYYY-MM-DD"})
			}
			rangeFilter["$lte"] = end.AddDate(0, 0, 1).Add(-time.Millisecond)
		}
		filter["scheduledDate"] = rangeFilter
	}

	schedules, err := repository.FindWorkSchedules(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": schedules})
}

// GET /workschedule/order/:orderId
func GetWorkSchedulesByOrder(c *fiber.Ctx) error {
	orderID, err := primitive.ObjectIDFromHex(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Order ID format"})
	}
	schedules, err := repository.FindWorkSchedules(bson.M{"orderId": orderID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": schedules})
}

// GET /workschedule/upcoming?days=7
//
// Schedules already READY or DELIVERED are excluded; they need no reminder.
func GetUpcomingWorkSchedules(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	if days < 1 {
		days = 7
	}

	start, end := upcomingDeliveryWindow(time.Now(), days)
	schedules, err := repository.FindWorkSchedules(bson.M{
		"scheduledDate": bson.M{"$gte": start, "$lte": end},
		"status":        bson.M{"$nin": []string{models.ScheduleStatusReady, models.ScheduleStatusDelivered}},
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": schedules})
}
