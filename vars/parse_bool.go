package vars

import (
	"fmt"
	"strings"
)

// ParseBool parses switch arguments like "yes", "off" or "1".
func ParseBool(str string) (bool, error) {
	switch strings.ToLower(str) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("convert %s to bool: unknown value", str)
}
