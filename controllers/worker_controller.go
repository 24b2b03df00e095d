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

// GET /workers
func GetAllWorkers(c *fiber.Ctx) error {
	workers, err := repository.GetAllWorkers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": workers})
}

// GET /workers/:id
func GetWorkerByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Worker ID format"})
	}
	worker, err := repository.GetWorkerByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "worker not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": worker})
}

// POST /workers
func CreateWorker(c *fiber.Ctx) error {
	var body struct {
		Name     string `json:"name"`
		Role     string `json:"role"`
		IsActive *bool  `json:"isActive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}
	if body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}

	worker := models.Worker{
		ID:        primitive.NewObjectID(),
		Name:      body.Name,
		Role:      body.Role,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if body.IsActive != nil {
		worker.IsActive = *body.IsActive
	}

	if _, err := repository.CreateWorker(worker); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "worker created successfully", "data": worker})
}

// PUT /workers/:id
func UpdateWorker(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Worker ID format"})
	}

	var body struct {
		Name     string `json:"name"`
		Role     string `json:"role"`
		IsActive *bool  `json:"isActive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	set := bson.M{}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Role != "" {
		set["role"] = body.Role
	}
	if body.IsActive != nil {
		set["isActive"] = *body.IsActive
	}
	if len(set) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no fields to update"})
	}

	worker, err := repository.UpdateWorker(id, set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "worker not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "worker updated successfully", "data": worker})
}

// DELETE /workers/:id
func DeleteWorker(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Worker ID format"})
	}
	res, err := repository.DeleteWorker(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "worker not found"})
	}
	return c.JSON(fiber.Map{"message": "worker deleted successfully"})
}

// buildAssignmentDateFilter resolves the commission report window from query
// parameters, over the assignment's own date field. Exactly one rule wins:
//
//	startDate + endDate (both present) > type=day + date > month + year
//	> year > current calendar month
//
// The returned label describes the resolved window for the response payload.
func buildAssignmentDateFilter(startStr, endStr, typeStr, dateStr, monthStr, yearStr string, now time.Time) (bson.M, string, error) {
	const field = "workerAssignment.date"

	if startStr != "" && endStr != "" {
		start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return nil, "", errors.New("startDate must be YYYY-MM-DD")
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return nil, "", errors.New("endDate must be YYYY-MM-DD")
		}
		end = end.AddDate(0, 0, 1).Add(-time.Millisecond)
		label := fmt.Sprintf("%s to %s", startStr, endStr)
		return bson.M{field: bson.M{"$gte": start, "$lte": end}}, label, nil
	}

	if typeStr == "day" && dateStr != "" {
		day, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
		if err != nil {
			return nil, "", errors.New("date must be YYYY-MM-DD")
		}
		end := day.AddDate(0, 0, 1).Add(-time.Millisecond)
		return bson.M{field: bson.M{"$gte": day, "$lte": end}}, dateStr, nil
	}

	if monthStr != "" && yearStr != "" {
		var month, year int
		if _, err := fmt.Sscanf(monthStr, "%d", &month); err != nil || month < 1 || month > 12 {
			return nil, "", errors.New("month is not valid")
		}
		if _, err := fmt.Sscanf(yearStr, "%d", &year); err != nil || year < 1900 {
			return nil, "", errors.New("year is not valid")
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
		label := start.Format("January 2006")
		return bson.M{field: bson.M{"$gte": start, "$lte": end}}, label, nil
	}

	if yearStr != "" {
		var year int
		if _, err := fmt.Sscanf(yearStr, "%d", &year); err != nil || year < 1900 {
			return nil, "", errors.New("year is not valid")
		}
		start := time.Date(year, 1, 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(1, 0, 0).Add(-time.Millisecond)
		return bson.M{field: bson.M{"$gte": start, "$lte": end}}, yearStr, nil
	}

	start := startOfMonth(now)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return bson.M{field: bson.M{"$gte": start, "$lte": end}}, start.Format("January 2006"), nil
}

// TaskCommission is one task's summed commission inside a worker report.
type TaskCommission struct {
	Task  string  `json:"task"`
	Total float64 `json:"total"`
}

// WorkerReport is the per-worker commission breakdown for the window.
type WorkerReport struct {
	WorkerID        string           `json:"workerId"`
	Name            string           `json:"name"`
	Role            string           `json:"role"`
	Tasks           []TaskCommission `json:"tasks"`
	TotalCommission float64          `json:"totalCommission"`
}

// assembleWorkerReports joins the worker roster against the aggregated
// commission rows. Every roster worker appears, with an empty breakdown when
// nothing was earned in the window; rows whose worker is no longer on the
// roster are dropped.
func assembleWorkerReports(workers []models.Worker, rows []repository.CommissionRow) []WorkerReport {
	byWorker := make(map[string][]repository.CommissionRow)
	for _, r := range rows {
		key := r.Worker.Hex()
		byWorker[key] = append(byWorker[key], r)
	}

	reports := make([]WorkerReport, 0, len(workers))
	for _, w := range workers {
		report := WorkerReport{
			WorkerID: w.ID.Hex(),
			Name:     w.Name,
			Role:     w.Role,
			Tasks:    []TaskCommission{},
		}
		for _, r := range byWorker[w.ID.Hex()] {
			report.Tasks = append(report.Tasks, TaskCommission{Task: r.Task, Total: r.Total})
			report.TotalCommission += r.Total
		}
		reports = append(reports, report)
	}
	return reports
}

// GET /workers/:id/report
func GetWorkerReport(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Worker ID format"})
	}

	worker, err := repository.GetWorkerByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "worker not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	// The per-worker report covers the worker's entire assignment history;
	// only the all-workers report takes a date window.
	rows, err := repository.AggregateWorkerCommission(&id, nil)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	reports := assembleWorkerReports([]models.Worker{*worker}, rows)
	return c.JSON(fiber.Map{"data": reports[0]})
}

// GET /workers/report/all
func GetAllWorkersReport(c *fiber.Ctx) error {
	filter, label, err := buildAssignmentDateFilter(
		c.Query("startDate", ""), c.Query("endDate", ""),
		c.Query("type", ""), c.Query("date", ""),
		c.Query("month", ""), c.Query("year", ""),
		time.Now(),
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	workers, err := repository.GetAllWorkers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	rows, err := repository.AggregateWorkerCommission(nil, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	reports := assembleWorkerReports(workers, rows)
	grandTotal := 0.0
	totalsByTask := map[string]float64{}
	for _, r := range reports {
		grandTotal += r.TotalCommission
		for _, task := range r.Tasks {
			totalsByTask[task.Task] += task.Total
		}
	}

	return c.JSON(fiber.Map{
		"data":            reports,
		"period":          label,
		"totalsByTask":    totalsByTask,
		"totalCommission": grandTotal,
	})
}
