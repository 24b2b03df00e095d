package controllers

import (
	"strings"
	"testing"
	"time"

	"github.com/aswin-roy/jjjj/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestDeriveBillNo(t *testing.T) {
	id, err := primitive.ObjectIDFromHex("64a9f31b2c8d4e0f1a2b3cde")
	require.NoError(t, err)

	billNo := deriveBillNo(id)
	assert.Equal(t, "B2B3CDE", billNo)
	assert.Len(t, billNo, 7)
	assert.Equal(t, billNo, deriveBillNo(id), "must be deterministic")

	// lowercase hex always uppercases
	assert.Equal(t, strings.ToUpper(billNo), billNo)
}

func TestPaymentStatus(t *testing.T) {
	assert.Equal(t, "Paid", paymentStatus(0))
	assert.Equal(t, "Paid", paymentStatus(-0.05))
	assert.Equal(t, "Paid", paymentStatus(0.5))
	assert.Equal(t, "Unpaid", paymentStatus(0.51))
	assert.Equal(t, "Unpaid", paymentStatus(120))
}

func TestBuildCreatedAtFilter(t *testing.T) {
	t.Run("month and year build a calendar window", func(t *testing.T) {
		filter, err := buildCreatedAtFilter("2", "2026", "", "")
		require.NoError(t, err)

		rangeFilter, ok := filter["createdAt"].(bson.M)
		require.True(t, ok)
		start := rangeFilter["$gte"].(time.Time)
		end := rangeFilter["$lte"].(time.Time)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.Local), start)
		assert.Equal(t, time.February, end.Month())
		assert.Equal(t, 28, end.Day())
	})

	t.Run("month and year win over explicit range", func(t *testing.T) {
		filter, err := buildCreatedAtFilter("6", "2026", "2026-01-01", "2026-01-31")
		require.NoError(t, err)
		rangeFilter := filter["createdAt"].(bson.M)
		start := rangeFilter["$gte"].(time.Time)
		assert.Equal(t, time.June, start.Month())
	})

	t.Run("start date alone is an open-ended lower bound", func(t *testing.T) {
		filter, err := buildCreatedAtFilter("", "", "2026-03-15", "")
		require.NoError(t, err)
		rangeFilter := filter["createdAt"].(bson.M)
		assert.Contains(t, rangeFilter, "$gte")
		assert.NotContains(t, rangeFilter, "$lte")
	})

	t.Run("end date alone is an open-ended upper bound", func(t *testing.T) {
		filter, err := buildCreatedAtFilter("", "", "", "2026-03-15")
		require.NoError(t, err)
		rangeFilter := filter["createdAt"].(bson.M)
		assert.Contains(t, rangeFilter, "$lte")
		assert.NotContains(t, rangeFilter, "$gte")
	})

	t.Run("no parameters means no filter", func(t *testing.T) {
		filter, err := buildCreatedAtFilter("", "", "", "")
		require.NoError(t, err)
		assert.Empty(t, filter)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := buildCreatedAtFilter("13", "2026", "", "")
		assert.Error(t, err)
		_, err = buildCreatedAtFilter("1", "abc", "", "")
		assert.Error(t, err)
		_, err = buildCreatedAtFilter("", "", "15-03-2026", "")
		assert.Error(t, err)
	})
}

func TestBuildReportRows(t *testing.T) {
	customerID := primitive.NewObjectID()
	ghostID := primitive.NewObjectID()
	created := time.Date(2026, 8, 14, 17, 30, 0, 0, time.Local)

	entries := []models.SalesEntry{
		{
			ID:            primitive.NewObjectID(),
			CustomerID:    customerID,
			PaymentMethod: "cash",
			TotalAmount:   210,
			PaidAmount:    210,
			Balance:       0,
			CreatedAt:     created,
		},
		{
			ID:            primitive.NewObjectID(),
			CustomerID:    ghostID,
			PaymentMethod: "upi",
			TotalAmount:   105,
			PaidAmount:    50,
			Balance:       55,
			CreatedAt:     created,
		},
	}
	customers := map[string]models.Customer{
		customerID.Hex(): {ID: customerID, Name: "Meera", Phone: "9876543210"},
	}

	rows := buildReportRows(entries, customers)
	require.Len(t, rows, 2)

	assert.Equal(t, "Meera", rows[0].Customer)
	assert.Equal(t, "9876543210", rows[0].Phone)
	assert.Equal(t, "Paid", rows[0].Status)
	assert.Equal(t, "2026-08-14", rows[0].Date)
	assert.Equal(t, deriveBillNo(entries[0].ID), rows[0].BillNo)

	// dangling customer ref still yields a row
	assert.Equal(t, "Unknown Customer", rows[1].Customer)
	assert.Equal(t, "Unpaid", rows[1].Status)
}

func TestApplyReportSearch(t *testing.T) {
	rows := []SalesReportRow{
		{BillNo: "B2B3CDE", Customer: "Meera", Phone: "9876543210"},
		{BillNo: "BFF0011", Customer: "Arjun", Phone: "9123456780"},
		{BillNo: "BAA9922", Customer: "Lakshmi", Phone: "9000000001"},
	}

	t.Run("empty search returns everything", func(t *testing.T) {
		assert.Len(t, applyReportSearch(rows, ""), 3)
	})

	t.Run("matches bill number case-insensitively", func(t *testing.T) {
		got := applyReportSearch(rows, "b2b3")
		require.Len(t, got, 1)
		assert.Equal(t, "Meera", got[0].Customer)
	})

	t.Run("matches customer name case-insensitively", func(t *testing.T) {
		got := applyReportSearch(rows, "arJUN")
		require.Len(t, got, 1)
		assert.Equal(t, "BFF0011", got[0].BillNo)
	})

	t.Run("matches phone substring", func(t *testing.T) {
		got := applyReportSearch(rows, "912345")
		require.Len(t, got, 1)
		assert.Equal(t, "Arjun", got[0].Customer)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		assert.Empty(t, applyReportSearch(rows, "zzz"))
	})

	t.Run("search only sees the supplied page", func(t *testing.T) {
		// a row matching the term but outside this page is invisible
		page2 := rows[2:]
		assert.Empty(t, applyReportSearch(page2, "Meera"))
	})
}

func TestCollectCustomerIDs(t *testing.T) {
	a := primitive.NewObjectID()
	b := primitive.NewObjectID()
	entries := []models.SalesEntry{
		{CustomerID: a}, {CustomerID: b}, {CustomerID: a},
	}
	ids := collectCustomerIDs(entries)
	assert.Len(t, ids, 2)
}
