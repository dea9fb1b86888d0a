package model

import (
    "fmt"
    "strings"
    "time"
    "unicode"
)

// Customer represents a restaurant guest record as stored in the
// `customers` table.  A customer owns zero or more bookings; deleting
// a customer cascades to their bookings at the database level.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – customer name, letters only, at least two characters.
//  Phone     – Indonesian mobile number (628/08/+628 prefix).
//  Email     – optional contact email.
//  CreatedAt – creation timestamp.
type Customer struct {
    ID        uint64    // customers.id
    Name      string    // customers.name
    Phone     string    // customers.phone
    Email     string    // customers.email (may be empty)
    CreatedAt time.Time // customers.created_at
}

// Validate checks the customer's fields and returns (false, message) for
// the first rule that fails, or (true, "") when all rules pass.  Invalid
// input is a normal return value, never an error.
func (c *Customer) Validate() (bool, string) {
    name := strings.TrimSpace(c.Name)
    if name == "" {
        return false, "name must not be empty"
    }
    if len([]rune(name)) < 2 {
        return false, "name must be at least 2 characters"
    }
    for _, r := range name {
        if unicode.IsDigit(r) {
            return false, "name must not contain digits"
        }
    }
    if strings.TrimSpace(c.Phone) == "" {
        return false, "phone must not be empty"
    }
    digits, plus, ok := normalizePhone(c.Phone)
    if !ok {
        return false, "phone may only contain digits and separators"
    }
    // A plus sign marks international form, so only +628 qualifies;
    // the local 08 form never carries one.
    if plus {
        if !strings.HasPrefix(digits, "628") {
            return false, "phone must start with 628, 08 or +628"
        }
    } else if !strings.HasPrefix(digits, "628") && !strings.HasPrefix(digits, "08") {
        return false, "phone must start with 628, 08 or +628"
    }
    if len(digits) < 10 || len(digits) > 15 {
        return false, "phone must be 10-15 digits"
    }
    if c.Email != "" {
        if ok, msg := validateEmail(c.Email); !ok {
            return false, msg
        }
    }
    return true, ""
}

// normalizePhone strips common separators (spaces, dashes, dots and
// parentheses) and an optional leading plus sign, returning the bare
// digit string and whether that plus sign was present.  The last return
// value is false when any other character remains.
func normalizePhone(raw string) (string, bool, bool) {
    s := strings.TrimSpace(raw)
    plus := strings.HasPrefix(s, "+")
    s = strings.TrimPrefix(s, "+")
    var b strings.Builder
    for _, r := range s {
        switch {
        case r >= '0' && r <= '9':
            b.WriteRune(r)
        case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
            // separator, ignore
        default:
            return "", plus, false
        }
    }
    return b.String(), plus, true
}

// validateEmail enforces the minimal local@domain.tld shape: exactly one
// @ that is not at either end of the string, and a dot somewhere in the
// domain part.
func validateEmail(email string) (bool, string) {
    if strings.Count(email, "@") != 1 {
        return false, "email must contain exactly one @"
    }
    at := strings.Index(email, "@")
    if at == 0 || at == len(email)-1 {
        return false, "email must have text before and after @"
    }
    if !strings.Contains(email[at+1:], ".") {
        return false, "email domain must contain a dot"
    }
    return true, ""
}

// String renders the customer for plain-text output such as log lines.
func (c *Customer) String() string {
    email := c.Email
    if email == "" {
        email = "-"
    }
    return fmt.Sprintf("Customer #%d | %s | %s | %s", c.ID, c.Name, c.Phone, email)
}
