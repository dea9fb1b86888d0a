package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestTableValidate(t *testing.T) {
    tests := []struct {
        name    string
        table   Table
        wantOK  bool
        wantMsg string
    }{
        {
            name:   "valid",
            table:  Table{Number: 12, Capacity: 4, Status: TableAvailable},
            wantOK: true,
        },
        {
            name:    "zero number",
            table:   Table{Number: 0, Capacity: 4, Status: TableAvailable},
            wantOK:  false,
            wantMsg: "table number must be greater than 0",
        },
        {
            name:    "number above range",
            table:   Table{Number: 1000, Capacity: 4, Status: TableAvailable},
            wantOK:  false,
            wantMsg: "table number must not exceed 999",
        },
        {
            name:    "zero capacity",
            table:   Table{Number: 12, Capacity: 0, Status: TableAvailable},
            wantOK:  false,
            wantMsg: "capacity must be greater than 0",
        },
        {
            name:    "capacity above range",
            table:   Table{Number: 12, Capacity: 21, Status: TableAvailable},
            wantOK:  false,
            wantMsg: "capacity must not exceed 20 guests",
        },
        {
            name:    "unknown status",
            table:   Table{Number: 12, Capacity: 4, Status: "broken"},
            wantOK:  false,
            wantMsg: "status must be one of: available, occupied, reserved",
        },
        {
            name:   "boundary values",
            table:  Table{Number: 999, Capacity: 20, Status: TableReserved},
            wantOK: true,
        },
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            ok, msg := tt.table.Validate()
            assert.Equal(t, tt.wantOK, ok)
            assert.Equal(t, tt.wantMsg, msg)
        })
    }
}

func TestTableIsAvailable(t *testing.T) {
    assert.True(t, (&Table{Status: TableAvailable}).IsAvailable())
    assert.False(t, (&Table{Status: TableReserved}).IsAvailable())
    assert.False(t, (&Table{Status: TableOccupied}).IsAvailable())
}

func TestValidTableStatus(t *testing.T) {
    for _, s := range []string{TableAvailable, TableOccupied, TableReserved} {
        assert.True(t, ValidTableStatus(s), s)
    }
    assert.False(t, ValidTableStatus("pending"))
    assert.False(t, ValidTableStatus(""))
}
