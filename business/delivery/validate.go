package delivery

// IsValidZipCode reports whether raw contains exactly five digits once every
// non-digit character is stripped. Inputs like "123-45" or "12 345" therefore
// pass: the storefront accepts punctuated forms of a 5-digit code on purpose.
func IsValidZipCode(raw string) bool {
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits == 5
}
