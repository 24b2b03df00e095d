package controllers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aswin-roy/jjjj/models"
	"github.com/aswin-roy/jjjj/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// paidStatusTolerance: a balance at or below this counts as settled when
// labelling a report row, absorbing rounding left over from the tax math.
const paidStatusTolerance = 0.5

// deriveBillNo builds the synthetic bill number shown on reports and
// invoices: "B" followed by the last 6 hex characters of the entry id,
// uppercased. Deterministic for a given entry.
func deriveBillNo(id primitive.ObjectID) string {
	hex := id.Hex()
	return "B" + strings.ToUpper(hex[len(hex)-6:])
}

// paymentStatus labels a row Paid once the outstanding balance is inside the
// settle tolerance.
func paymentStatus(balance float64) string {
	if balance <= paidStatusTolerance {
		return "Paid"
	}
	return "Unpaid"
}

// buildCreatedAtFilter turns the report query parameters into a createdAt
// range filter. Priority: month+year calendar window, then explicit
// startDate/endDate (either bound may stand alone), else no date filter.
func buildCreatedAtFilter(monthStr, yearStr, startStr, endStr string) (bson.M, error) {
	if monthStr != "" && yearStr != "" {
		var month, year int
		if _, err := fmt.Sscanf(monthStr, "%d", &month); err != nil || month < 1 || month > 12 {
			return nil, errors.New("month is not valid")
		}
		if _, err := fmt.Sscanf(yearStr, "%d", &year); err != nil || year < 1900 {
			return nil, errors.New("year is not valid")
		}
		start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
		end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
		return bson.M{"createdAt": bson.M{"$gte": start, "$lte": end}}, nil
	}

	rangeFilter := bson.M{}
	if startStr != "" {
		start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			return nil, errors.New("startDate must be YYYY-MM-DD")
		}
		rangeFilter["$gte"] = start
	}
	if endStr != "" {
		end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			return nil, errors.New("endDate must be YYYY-MM-DD")
		}
		rangeFilter["$lte"] = end
	}
	if len(rangeFilter) > 0 {
		return bson.M{"createdAt": rangeFilter}, nil
	}
	return bson.M{}, nil
}

// SalesReportRow is one listing row projected from a sales entry.
type SalesReportRow struct {
	ID        primitive.ObjectID `json:"_id"`
	BillNo    string             `json:"billNo"`
	Customer  string             `json:"customer"`
	Phone     string             `json:"phone"`
	Mode      string             `json:"mode"`
	Total     float64            `json:"total"`
	Paid      float64            `json:"paid"`
	Pending   float64            `json:"pending"`
	Status    string             `json:"status"`
	Date      string             `json:"date"`
	CreatedAt time.Time          `json:"createdAt"`
}

// buildReportRows projects fetched entries into report rows, resolving
// customer name/phone from the bulk-loaded map.
func buildReportRows(entries []models.SalesEntry, customers map[string]models.Customer) []SalesReportRow {
	rows := make([]SalesReportRow, 0, len(entries))
	for _, e := range entries {
		name := "Unknown Customer"
		phone := ""
		if c, ok := customers[e.CustomerID.Hex()]; ok {
			if c.Name != "" {
				name = c.Name
			}
			phone = c.Phone
		}
		rows = append(rows, SalesReportRow{
			ID:        e.ID,
			BillNo:    deriveBillNo(e.ID),
			Customer:  name,
			Phone:     phone,
			Mode:      e.PaymentMethod,
			Total:     e.TotalAmount,
			Paid:      e.PaidAmount,
			Pending:   e.Balance,
			Status:    paymentStatus(e.Balance),
			Date:      e.CreatedAt.Format("2006-01-02"),
			CreatedAt: e.CreatedAt,
		})
	}
	return rows
}

// applyReportSearch filters rows by a free-text term matched against billNo,
// customer name (both case-insensitive) and phone substring. It runs against
// the already-fetched page only, never the whole collection, so when a
// search is active the pagination totals collapse to the filtered count.
func applyReportSearch(rows []SalesReportRow, search string) []SalesReportRow {
	if search == "" {
		return rows
	}
	needle := strings.ToLower(search)
	filtered := make([]SalesReportRow, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.BillNo), needle) ||
			strings.Contains(strings.ToLower(r.Customer), needle) ||
			strings.Contains(r.Phone, search) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// collectCustomerIDs dedupes the customer refs of a page of entries.
func collectCustomerIDs(entries []models.SalesEntry) []primitive.ObjectID {
	seen := map[string]struct{}{}
	var ids []primitive.ObjectID
	for _, e := range entries {
		if _, ok := seen[e.CustomerID.Hex()]; ok {
			continue
		}
		seen[e.CustomerID.Hex()] = struct{}{}
		ids = append(ids, e.CustomerID)
	}
	return ids
}

// POST /api/sales-report (legacy direct report record)
func CreateSalesReport(c *fiber.Ctx) error {
	var body models.SalesReportInput
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid request body"})
	}

	if body.BillNo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "billNo is required"})
	}
	if body.Customer == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "customer is required"})
	}
	if body.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "phone is required"})
	}
	if body.Mode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "mode is required"})
	}
	if !models.ValidPaymentMethod(body.Mode) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "mode must be one of: upi, cash, card"})
	}
	if body.Total == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "total is required"})
	}
	if body.Paid == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paid is required"})
	}

	calculatedPending := *body.Total - *body.Paid
	if calculatedPending < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "paid amount cannot exceed total amount"})
	}
	pending := calculatedPending
	if body.Pending != nil {
		if *body.Pending != calculatedPending {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": fmt.Sprintf("pending (%v) must equal total (%v) - paid (%v) = %v",
					*body.Pending, *body.Total, *body.Paid, calculatedPending),
			})
		}
		pending = *body.Pending
	}

	date := time.Now()
	if body.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", body.Date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "date must be YYYY-MM-DD"})
		}
		date = parsed
	}

	report := models.SalesReport{
		ID:        primitive.NewObjectID(),
		BillNo:    body.BillNo,
		Customer:  body.Customer,
		Phone:     body.Phone,
		Mode:      body.Mode,
		Total:     *body.Total,
		Paid:      *body.Paid,
		Pending:   pending,
		Date:      date,
		CreatedAt: time.Now(),
	}

	if _, err := repository.CreateSalesReport(report); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "billNo already exists"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "sales report created successfully", "data": report})
}

// GET /api/sales-report
func GetAllSalesReports(c *fiber.Ctx) error {
	filter, err := buildCreatedAtFilter(
		c.Query("month", ""), c.Query("year", ""),
		c.Query("startDate", ""), c.Query("endDate", ""),
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// Mode filter is case-insensitive and silently ignored when unknown
	if mode := strings.ToLower(c.Query("mode", "")); models.ValidPaymentMethod(mode) {
		filter["paymentMethod"] = mode
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 50)
	if limit < 1 {
		limit = 50
	}

	sortField := c.Query("sortBy", "createdAt")
	if sortField == "date" {
		sortField = "createdAt"
	}
	sortOrder := -1
	if c.Query("sortOrder", "desc") == "asc" {
		sortOrder = 1
	}

	skip := int64((page - 1) * limit)
	entries, total, err := repository.ListSalesEntries(filter, sortField, sortOrder, skip, int64(limit))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	customers, err := repository.GetCustomersByIDs(collectCustomerIDs(entries))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	rows := buildReportRows(entries, customers)

	// Search is applied after pagination/transformation, against the fetched
	// page only. With a search term the reported totals are the filtered
	// count; without one they reflect the whole matching collection.
	search := c.Query("search", "")
	rows = applyReportSearch(rows, search)

	reportedTotal := total
	if search != "" {
		reportedTotal = int64(len(rows))
	}

	return c.JSON(fiber.Map{
		"data": rows,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      reportedTotal,
			"totalPages": (reportedTotal + int64(limit) - 1) / int64(limit),
		},
	})
}

// GET /api/sales-report/summary
func GetSalesReportSummary(c *fiber.Ctx) error {
	filter, err := buildCreatedAtFilter(
		c.Query("month", ""), c.Query("year", ""),
		c.Query("startDate", ""), c.Query("endDate", ""),
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	summary, err := repository.AggregateSalesSummary(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.JSON(fiber.Map{"data": summary})
}

// GET /api/sales-report/export/excel
func ExportSalesReportExcel(c *fiber.Ctx) error {
	filter, err := buildCreatedAtFilter(
		c.Query("month", ""), c.Query("year", ""),
		c.Query("startDate", ""), c.Query("endDate", ""),
	)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if mode := strings.ToLower(c.Query("mode", "")); models.ValidPaymentMethod(mode) {
		filter["paymentMethod"] = mode
	}

	// Export is unpaginated: the whole matching window goes into the sheet
	entries, _, err := repository.ListSalesEntries(filter, "createdAt", -1, 0, 0)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	customers, err := repository.GetCustomersByIDs(collectCustomerIDs(entries))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	rows := buildReportRows(entries, customers)

	f := excelize.NewFile()
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	sheet := "Sales Report"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"Bill No", "Date", "Customer", "Phone", "Mode", "Total", "Paid", "Pending", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	totalAmount := 0.0
	totalPaid := 0.0
	totalPending := 0.0
	for i, r := range rows {
		values := []interface{}{r.BillNo, r.Date, r.Customer, r.Phone, r.Mode, r.Total, r.Paid, r.Pending, r.Status}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
		totalAmount += r.Total
		totalPaid += r.Paid
		totalPending += r.Pending
	}

	summaryRow := len(rows) + 3
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", summaryRow), totalAmount)
	f.SetCellValue(sheet, fmt.Sprintf("G%d", summaryRow), totalPaid)
	f.SetCellValue(sheet, fmt.Sprintf("H%d", summaryRow), totalPending)

	f.AutoFilter(sheet, "A1:I1", []excelize.AutoFilterOptions{})
	f.SetPanes(sheet, &excelize.Panes{Freeze: true, Split: true, YSplit: 1})

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", "attachment; filename=sales_report.xlsx")
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}
	return c.Send(buf.Bytes())
}

// InvoiceLine is one flattened invoice row with the product name resolved.
type InvoiceLine struct {
	Product  string  `json:"product"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

func buildInvoiceLines(entry *models.SalesEntry, products map[string]models.InventoryItem) []InvoiceLine {
	lines := make([]InvoiceLine, 0, len(entry.Items))
	for _, it := range entry.Items {
		name := "Product"
		if p, ok := products[it.Product.Hex()]; ok && p.ProductName != "" {
			name = p.ProductName
		}
		lines = append(lines, InvoiceLine{
			Product:  name,
			Quantity: it.Quantity,
			Rate:     it.Rate,
			Amount:   it.Amount,
		})
	}
	return lines
}

func loadInvoiceEntry(c *fiber.Ctx) (*models.SalesEntry, *models.Customer, []InvoiceLine, error) {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return nil, nil, nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid Invoice ID format"})
	}

	entry, err := repository.GetSalesEntryByID(id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil, nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "invoice not found"})
		}
		return nil, nil, nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	// Customer may be dangling; the invoice still renders with placeholders
	customer, err := repository.GetCustomerByID(entry.CustomerID)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil, nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	var productIDs []primitive.ObjectID
	for _, it := range entry.Items {
		productIDs = append(productIDs, it.Product)
	}
	products, err := repository.GetInventoryByIDs(productIDs)
	if err != nil {
		return nil, nil, nil, c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "server error", "error": err.Error()})
	}

	return entry, customer, buildInvoiceLines(entry, products), nil
}

// GET /api/invoice/:id
func GetInvoiceByID(c *fiber.Ctx) error {
	entry, customer, lines, err := loadInvoiceEntry(c)
	if entry == nil {
		return err
	}

	name, phone, address := "Unknown Customer", "", ""
	if customer != nil {
		if customer.Name != "" {
			name = customer.Name
		}
		phone = customer.Phone
		address = customer.Address
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"_id":      entry.ID,
		"billNo":   deriveBillNo(entry.ID),
		"customer": name,
		"phone":    phone,
		"address":  address,
		"mode":     entry.PaymentMethod,
		"total":    entry.TotalAmount,
		"paid":     entry.PaidAmount,
		"pending":  entry.Balance,
		"date":     entry.CreatedAt,
		"items":    lines,
		"notes":    entry.Notes,
	}})
}

// GET /api/invoice-print/:id
func GetInvoiceForPrint(c *fiber.Ctx) error {
	entry, customer, lines, err := loadInvoiceEntry(c)
	if entry == nil {
		return err
	}

	name, phone, address := "Unknown Customer", "", ""
	if customer != nil {
		if customer.Name != "" {
			name = customer.Name
		}
		phone = customer.Phone
		address = customer.Address
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"billNo": deriveBillNo(entry.ID),
		"date":   entry.CreatedAt,
		"customer": fiber.Map{
			"name":    name,
			"phone":   phone,
			"address": address,
		},
		"items": lines,
		"payment": fiber.Map{
			"method":  entry.PaymentMethod,
			"total":   entry.TotalAmount,
			"paid":    entry.PaidAmount,
			"pending": entry.Balance,
		},
		"notes": entry.Notes,
	}})
}
