// Package report aggregates booking records into the statistics shown on
// the management dashboard.
package report

import "github.com/iliyamo/restaurant-table-reservation/internal/repository"

// TableRank names the table with the most bookings in a report window.
type TableRank struct {
    Number int `json:"number"`
    Count  int `json:"count"`
}

// CustomerRank names the customer with the most bookings in a report
// window.
type CustomerRank struct {
    Name  string `json:"name"`
    Count int    `json:"count"`
}

// Stats summarizes a set of booking rows.
type Stats struct {
    TotalBookings int            `json:"total_bookings"`
    TotalGuests   int            `json:"total_guests"`
    AvgPartySize  float64        `json:"avg_party_size"`
    StatusCounts  map[string]int `json:"status_counts"`
    TopTable      TableRank      `json:"top_table"`
    TopCustomer   CustomerRank   `json:"top_customer"`
}

// Aggregate computes statistics over booking rows in a single
// left-to-right scan.  Ties for the most-booked table or most-frequent
// customer go to whichever was encountered first.  Empty input yields
// nil.
func Aggregate(rows []repository.BookingDetail) *Stats {
    if len(rows) == 0 {
        return nil
    }
    stats := &Stats{
        TotalBookings: len(rows),
        StatusCounts:  make(map[string]int, 4),
    }

    tableCounts := make(map[int]int)
    var tableOrder []int
    customerCounts := make(map[string]int)
    var customerOrder []string

    for _, row := range rows {
        stats.TotalGuests += row.PartySize
        stats.StatusCounts[row.Status]++
        if _, seen := tableCounts[row.TableNumber]; !seen {
            tableOrder = append(tableOrder, row.TableNumber)
        }
        tableCounts[row.TableNumber]++
        if _, seen := customerCounts[row.CustomerName]; !seen {
            customerOrder = append(customerOrder, row.CustomerName)
        }
        customerCounts[row.CustomerName]++
    }

    stats.AvgPartySize = float64(stats.TotalGuests) / float64(stats.TotalBookings)

    // Strict > over first-encountered order keeps the earliest winner on
    // ties.
    for _, number := range tableOrder {
        if tableCounts[number] > stats.TopTable.Count {
            stats.TopTable = TableRank{Number: number, Count: tableCounts[number]}
        }
    }
    for _, name := range customerOrder {
        if customerCounts[name] > stats.TopCustomer.Count {
            stats.TopCustomer = CustomerRank{Name: name, Count: customerCounts[name]}
        }
    }
    return stats
}
