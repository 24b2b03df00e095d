package controllers

import (
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func collectOrderCustomerIDs(orders []models.Order) []primitive.ObjectID {
	seen := map[string]struct{}{}
	var ids []primitive.ObjectID
	for _, o := range orders {
		if _, ok := seen[o.CustomerID.Hex()]; ok {
			continue
		}
		seen[o.CustomerID.Hex()] = struct{}{}
		ids = append(ids, o.CustomerID)
	}
	return ids
}

// startOfDay returns local midnight of t's calendar day.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfMonth returns local midnight of the first day of t's month.
func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// upcomingDeliveryWindow is the inclusive [today .. today+days] range used
// for the delivery reminder list.
func upcomingDeliveryWindow(now time.Time, days int) (time.Time, time.Time) {
	start := startOfDay(now)
	return start, start.AddDate(0, 0, days)
}

// UpcomingDelivery is one reminder row on the dashboard.
type UpcomingDelivery struct {
	OrderID      string `json:"orderId"`
	Customer     string `json:"customer"`
	Item         string `json:"item"`
	Status       string `json:"status"`
	DeliveryDate string `json:"deliveryDate"`
}

// buildUpcomingDeliveries projects undelivered orders into reminder rows,
// resolving the customer name from the bulk-loaded map. Orders whose
// customer record is gone still show up, labelled Unknown.
func buildUpcomingDeliveries(orders []models.Order, customers map[string]models.Customer) []UpcomingDelivery {
	rows := make([]UpcomingDelivery, 0, len(orders))
	for _, o := range orders {
		name := "Unknown"
		if c, ok := customers[o.CustomerID.Hex()]; ok && c.Name != "" {
			name = c.Name
		}
		rows = append(rows, UpcomingDelivery{
			OrderID:      o.ID.Hex(),
			Customer:     name,
			Item:         o.Item,
			Status:       o.Status,
			DeliveryDate: o.DeliveryDate.Format("2006-01-02"),
		})
	}
	return rows
}

// GET /dashboard/stats
//
// All time boundaries come from a single clock read so the today/month
// figures cannot straddle midnight within one response.
func GetDashboardStats(c *fiber.Ctx) error {
	now := time.Now()

	todaySales, err := repository.SumTotalAmountSince(startOfDay(now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	monthlySales, err := repository.SumTotalAmountSince(startOfMonth(now))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	pendingOrders, err := repository.CountOrdersByStatus([]string{
		models.OrderStatusPending, models.OrderStatusCutting,
		models.OrderStatusStitching, models.OrderStatusInProgress,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	readyOrders, err := repository.CountOrdersByStatus([]string{models.OrderStatusReady})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	unpaidBills, err := repository.SumUnpaidBalance()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	start, end := upcomingDeliveryWindow(now, 7)
	orders, err := repository.GetUpcomingDeliveries(start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	customerIDs := collectOrderCustomerIDs(orders)
	customers, err := repository.GetCustomersByIDs(customerIDs)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"todaySales":         todaySales,
		"monthlySales":       monthlySales,
		"pendingOrders":      pendingOrders,
		"readyOrders":        readyOrders,
		"unpaidBills":        unpaidBills,
		"upcomingDeliveries": buildUpcomingDeliveries(orders, customers),
	}})
}
