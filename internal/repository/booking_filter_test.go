package repository

import (
    "strings"
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestBuildDetailQueryNoFilter(t *testing.T) {
    q, args := buildDetailQuery(BookingFilter{})

    assert.Empty(t, args)
    assert.Contains(t, q, "JOIN customers c ON c.id = b.customer_id")
    assert.Contains(t, q, "JOIN tables t ON t.id = b.table_id")
    assert.NotContains(t, q, "AND")
    assert.True(t, strings.HasSuffix(q, "ORDER BY b.reserved_at DESC"))
}

func TestBuildDetailQueryByID(t *testing.T) {
    q, args := buildDetailQuery(BookingFilter{ID: 7})

    assert.Contains(t, q, "AND b.id = ?")
    assert.Equal(t, []any{uint64(7)}, args)
}

func TestBuildDetailQueryByStatus(t *testing.T) {
    q, args := buildDetailQuery(BookingFilter{Status: "pending"})

    assert.Contains(t, q, "AND b.status = ?")
    assert.Equal(t, []any{"pending"}, args)
}

func TestBuildDetailQueryDateRange(t *testing.T) {
    q, args := buildDetailQuery(BookingFilter{FromDate: "2026-09-01", ToDate: "2026-09-30"})

    assert.Contains(t, q, "AND DATE(b.reserved_at) >= ?")
    assert.Contains(t, q, "AND DATE(b.reserved_at) <= ?")
    assert.Equal(t, []any{"2026-09-01", "2026-09-30"}, args)
}

func TestBuildDetailQueryArgumentOrderMatchesClauses(t *testing.T) {
    q, args := buildDetailQuery(BookingFilter{Status: "confirmed", FromDate: "2026-09-01", ToDate: "2026-09-02"})

    statusIdx := strings.Index(q, "b.status = ?")
    fromIdx := strings.Index(q, "DATE(b.reserved_at) >= ?")
    toIdx := strings.Index(q, "DATE(b.reserved_at) <= ?")
    assert.True(t, statusIdx < fromIdx && fromIdx < toIdx)
    assert.Equal(t, []any{"confirmed", "2026-09-01", "2026-09-02"}, args)
}
