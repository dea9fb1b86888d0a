package model

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestCustomerValidate(t *testing.T) {
    tests := []struct {
        name    string
        cust    Customer
        wantOK  bool
        wantMsg string
    }{
        {
            name:   "valid with local prefix",
            cust:   Customer{Name: "Budi Santoso", Phone: "081234567890"},
            wantOK: true,
        },
        {
            name:   "valid with international prefix",
            cust:   Customer{Name: "Siti", Phone: "+62 812-3456-7890", Email: "siti@example.com"},
            wantOK: true,
        },
        {
            name:    "empty name",
            cust:    Customer{Name: "   ", Phone: "081234567890"},
            wantOK:  false,
            wantMsg: "name must not be empty",
        },
        {
            name:    "single character name",
            cust:    Customer{Name: "B", Phone: "081234567890"},
            wantOK:  false,
            wantMsg: "name must be at least 2 characters",
        },
        {
            name:    "name with digits",
            cust:    Customer{Name: "Budi2", Phone: "081234567890"},
            wantOK:  false,
            wantMsg: "name must not contain digits",
        },
        {
            name:    "empty phone",
            cust:    Customer{Name: "Budi", Phone: ""},
            wantOK:  false,
            wantMsg: "phone must not be empty",
        },
        {
            name:    "phone with letters",
            cust:    Customer{Name: "Budi", Phone: "0812abc4567"},
            wantOK:  false,
            wantMsg: "phone may only contain digits and separators",
        },
        {
            name:    "wrong prefix",
            cust:    Customer{Name: "Budi", Phone: "021234567890"},
            wantOK:  false,
            wantMsg: "phone must start with 628, 08 or +628",
        },
        {
            name:    "plus with local prefix",
            cust:    Customer{Name: "Budi", Phone: "+081234567890"},
            wantOK:  false,
            wantMsg: "phone must start with 628, 08 or +628",
        },
        {
            name:    "too short",
            cust:    Customer{Name: "Budi", Phone: "08123456"},
            wantOK:  false,
            wantMsg: "phone must be 10-15 digits",
        },
        {
            name:    "too long",
            cust:    Customer{Name: "Budi", Phone: "6281234567890123"},
            wantOK:  false,
            wantMsg: "phone must be 10-15 digits",
        },
        {
            name:    "email without at sign",
            cust:    Customer{Name: "Budi", Phone: "081234567890", Email: "budi.example.com"},
            wantOK:  false,
            wantMsg: "email must contain exactly one @",
        },
        {
            name:    "email with at sign at end",
            cust:    Customer{Name: "Budi", Phone: "081234567890", Email: "budi@"},
            wantOK:  false,
            wantMsg: "email must have text before and after @",
        },
        {
            name:    "email domain without dot",
            cust:    Customer{Name: "Budi", Phone: "081234567890", Email: "budi@example"},
            wantOK:  false,
            wantMsg: "email domain must contain a dot",
        },
        {
            name:   "empty email is allowed",
            cust:   Customer{Name: "Budi", Phone: "081234567890", Email: ""},
            wantOK: true,
        },
    }

    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            ok, msg := tt.cust.Validate()
            assert.Equal(t, tt.wantOK, ok)
            assert.Equal(t, tt.wantMsg, msg)
        })
    }
}

func TestCustomerValidateFirstFailureWins(t *testing.T) {
    // Several rules are broken at once; only the earliest message comes
    // back.
    c := Customer{Name: "", Phone: "abc"}
    ok, msg := c.Validate()
    assert.False(t, ok)
    assert.Equal(t, "name must not be empty", msg)
}

func TestNormalizePhoneStripsSeparators(t *testing.T) {
    digits, plus, ok := normalizePhone("+62 (812) 3456-78.90")
    assert.True(t, ok)
    assert.True(t, plus)
    assert.Equal(t, "6281234567890", digits)

    digits, plus, ok = normalizePhone("0812-3456-7890")
    assert.True(t, ok)
    assert.False(t, plus)
    assert.Equal(t, "081234567890", digits)
}

func TestCustomerString(t *testing.T) {
    c := Customer{ID: 7, Name: "Budi", Phone: "081234567890"}
    assert.Equal(t, "Customer #7 | Budi | 081234567890 | -", c.String())
}
