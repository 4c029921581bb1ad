package extract

import "strings"

// Address holds the parts derived from a one-line address.
type Address struct {
	City    string
	State   string
	ZipCode string
}

const (
	addressSeparator = ", "
	minAddressParts  = 3
)

// Decompose splits "street, city, STATE zip". Addresses with fewer than three
// comma-separated parts are left entirely undecomposed. Tokens are not
// validated.
func Decompose(address string) Address {
	parts := strings.Split(address, addressSeparator)
	if len(parts) < minAddressParts {
		return Address{}
	}

	a := Address{City: parts[1]}
	stateZip := strings.Fields(parts[2])
	if len(stateZip) > 0 {
		a.State = stateZip[0]
	}
	if len(stateZip) > 1 {
		a.ZipCode = stateZip[1]
	}
	return a
}
