package vars

import "strings"

// StrToBool parses switch arguments. Unrecognized words read as false.
func StrToBool(str string) bool {
	str = strings.ToLower(str)
	switch str {
	case "true", "t", "yes", "y":
		return true
	case "false", "f", "no", "n":
		return false
	}
	return false
}
