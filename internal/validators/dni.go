package validators

import "strings"

const dniLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// IsValidDNI comprova el format del DNI espanyol: vuit dígits i la lletra
// de control que correspon al número mòdul 23.
func IsValidDNI(dni string) bool {
	dni = strings.ToUpper(strings.TrimSpace(dni))
	if len(dni) != 9 {
		return false
	}

	number := 0
	for _, r := range dni[:8] {
		if r < '0' || r > '9' {
			return false
		}
		number = number*10 + int(r-'0')
	}

	return dni[8] == dniLetters[number%23]
}
