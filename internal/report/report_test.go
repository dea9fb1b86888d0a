package report

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/restaurant-table-reservation/internal/repository"
)

func row(name string, table, party int, status string) repository.BookingDetail {
    return repository.BookingDetail{
        CustomerName: name,
        TableNumber:  table,
        PartySize:    party,
        Status:       status,
    }
}

func TestAggregateEmptyReturnsNil(t *testing.T) {
    assert.Nil(t, Aggregate(nil))
    assert.Nil(t, Aggregate([]repository.BookingDetail{}))
}

func TestAggregateCountsAndAverages(t *testing.T) {
    rows := []repository.BookingDetail{
        row("Budi", 5, 2, "pending"),
        row("Siti", 7, 4, "confirmed"),
        row("Budi", 5, 6, "completed"),
        row("Agus", 3, 2, "cancelled"),
        row("Budi", 7, 1, "pending"),
    }

    stats := Aggregate(rows)
    require.NotNil(t, stats)

    assert.Equal(t, 5, stats.TotalBookings)
    assert.Equal(t, 15, stats.TotalGuests)
    assert.InDelta(t, 3.0, stats.AvgPartySize, 1e-9)
    assert.Equal(t, map[string]int{
        "pending":   2,
        "confirmed": 1,
        "completed": 1,
        "cancelled": 1,
    }, stats.StatusCounts)
    assert.Equal(t, TableRank{Number: 5, Count: 2}, stats.TopTable)
    assert.Equal(t, CustomerRank{Name: "Budi", Count: 3}, stats.TopCustomer)
}

func TestAggregateTieGoesToFirstEncountered(t *testing.T) {
    rows := []repository.BookingDetail{
        row("Siti", 7, 2, "pending"),
        row("Budi", 5, 2, "pending"),
        row("Siti", 7, 2, "pending"),
        row("Budi", 5, 2, "pending"),
    }

    stats := Aggregate(rows)
    require.NotNil(t, stats)

    assert.Equal(t, TableRank{Number: 7, Count: 2}, stats.TopTable)
    assert.Equal(t, CustomerRank{Name: "Siti", Count: 2}, stats.TopCustomer)
}

func TestAggregateSingleRow(t *testing.T) {
    stats := Aggregate([]repository.BookingDetail{row("Budi", 5, 3, "confirmed")})
    require.NotNil(t, stats)

    assert.Equal(t, 1, stats.TotalBookings)
    assert.Equal(t, 3, stats.TotalGuests)
    assert.InDelta(t, 3.0, stats.AvgPartySize, 1e-9)
    assert.Equal(t, TableRank{Number: 5, Count: 1}, stats.TopTable)
    assert.Equal(t, CustomerRank{Name: "Budi", Count: 1}, stats.TopCustomer)
}
