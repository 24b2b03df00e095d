package controllers

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sales tax applied on top of the item subtotal.
const salesTaxRate = 0.05

// balanceTolerance is the permitted floating-point slack when checking that
// paidAmount does not exceed totalAmount. Totals are float64 money values, so
// an exact-zero comparison after the tax multiplication is unreliable.
const balanceTolerance = -0.1

// computeItemsAndTotals validates the caller-supplied lines and derives the
// persisted items and the taxed total. Amounts are always computed here;
// a caller-supplied amount is never trusted.
func computeItemsAndTotals(items []models.SalesEntryItemInput) ([]models.SalesEntryItem, float64, error) {
	if len(items) == 0 {
		return nil, 0, errors.New("items array is required and cannot be empty")
	}

	computed := make([]models.SalesEntryItem, 0, len(items))
	subtotal := 0.0
	for idx, it := range items {
		if it.Product == "" {
			return nil, 0, fmt.Errorf("items[%d].product is required", idx)
		}
		productID, err := primitive.ObjectIDFromHex(it.Product)
		if err != nil {
			return nil, 0, fmt.Errorf("items[%d].product is not a valid id", idx)
		}
		if it.Quantity <= 0 {
			return nil, 0, fmt.Errorf("items[%d].quantity must be > 0", idx)
		}
		if it.Rate < 0 {
			return nil, 0, fmt.Errorf("items[%d].rate must be >= 0", idx)
		}
		amount := it.Rate * float64(it.Quantity)
		computed = append(computed, models.SalesEntryItem{
			Product:  productID,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   amount,
		})
		subtotal += amount
	}

	tax := subtotal * salesTaxRate
	totalAmount := subtotal + tax
	return computed, totalAmount, nil
}

// POST /salesentries
func CreateSalesEntry(c *fiber.Ctx) error {
	var body models.SalesEntryInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	if body.CustomerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "customerId is required"})
	}
	customerID, err := primitive.ObjectIDFromHex(body.CustomerID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
	}
	if body.PaymentMethod == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paymentMethod is required"})
	}
	if !models.ValidPaymentMethod(body.PaymentMethod) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paymentMethod must be one of: upi, cash, card"})
	}
	if body.PaidAmount < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paidAmount must be >= 0"})
	}

	items, totalAmount, err := computeItemsAndTotals(body.Items)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	balance := totalAmount - body.PaidAmount
	if balance < balanceTolerance {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paidAmount cannot exceed totalAmount"})
	}

	now := time.Now()
	entry := models.SalesEntry{
		ID:            primitive.NewObjectID(),
		CustomerID:    customerID,
		Items:         items,
		PaymentMethod: body.PaymentMethod,
		TotalAmount:   totalAmount,
		PaidAmount:    body.PaidAmount,
		Balance:       balance,
		Notes:         body.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := repository.CreateSalesEntry(entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	// Decrease inventory stock, one atomic $inc per line. The entry is already
	// persisted at this point; a failed decrement leaves the books ahead of the
	// stock, so it is logged and surfaced to the caller instead of failing the
	// sale.
	var stockWarnings []string
	for _, it := range entry.Items {
		if err := repository.DecrementStock(it.Product, it.Quantity); err != nil {
			log.Printf("stock decrement failed for product %s on entry %s: %v", it.Product.Hex(), entry.ID.Hex(), err)
			stockWarnings = append(stockWarnings, fmt.Sprintf("stock not decremented for product %s", it.Product.Hex()))
		}
	}

	resp := fiber.Map{"message": "sales entry created", "data": entry}
	if len(stockWarnings) > 0 {
		resp["stockWarnings"] = stockWarnings
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GET /salesentries
func GetAllSalesEntries(c *fiber.Ctx) error {
	entries, err := repository.GetAllSalesEntries()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": entries})
}

// GET /salesentries/:id
func GetSalesEntryByID(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Sales Entry ID format"})
	}

	entry, err := repository.GetSalesEntryByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "sales entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": entry})
}

// PUT /salesentries/:id
func UpdateSalesEntry(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Sales Entry ID format"})
	}

	var body struct {
		CustomerID    *string                       `json:"customerId"`
		Items         []models.SalesEntryItemInput  `json:"items"`
		PaymentMethod *string                       `json:"paymentMethod"`
		PaidAmount    *float64                      `json:"paidAmount"`
		Notes         *string                       `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	entry, err := repository.GetSalesEntryByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "sales entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	set := bson.M{}
	if body.CustomerID != nil {
		customerID, err := primitive.ObjectIDFromHex(*body.CustomerID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Customer ID format"})
		}
		set["customerId"] = customerID
	}
	if body.PaymentMethod != nil {
		if !models.ValidPaymentMethod(*body.PaymentMethod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paymentMethod must be one of: upi, cash, card"})
		}
		set["paymentMethod"] = *body.PaymentMethod
	}
	if body.Notes != nil {
		set["notes"] = *body.Notes
	}

	paidAmount := entry.PaidAmount
	if body.PaidAmount != nil {
		if *body.PaidAmount < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paidAmount must be >= 0"})
		}
		paidAmount = *body.PaidAmount
		set["paidAmount"] = paidAmount
	}

	// Totals are fully recomputed when items are replaced. Inventory stock is
	// a create-time side effect only and is not re-adjusted here.
	totalAmount := entry.TotalAmount
	if body.Items != nil {
		items, recomputed, err := computeItemsAndTotals(body.Items)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		totalAmount = recomputed
		set["items"] = items
		set["totalAmount"] = totalAmount
	}

	balance := totalAmount - paidAmount
	if balance < balanceTolerance {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paidAmount cannot exceed totalAmount"})
	}
	set["balance"] = balance
	set["updatedAt"] = time.Now()

	updated, err := repository.UpdateSalesEntry(id, set)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "sales entry updated", "data": updated})
}

// DELETE /salesentries/:id (hard delete, no restock)
func DeleteSalesEntry(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Sales Entry ID format"})
	}

	res, err := repository.DeleteSalesEntry(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	if res.DeletedCount == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "sales entry not found"})
	}
	return c.JSON(fiber.Map{"message": "sales entry deleted"})
}
