package utils

import (
	"log"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

func SDump(a ...interface{}) string {
	return strings.TrimSpace(spewConfig.Sdump(a...))
}

// SValue is compact single line representation, used for pin values in logs
func SValue(a interface{}) string {
	return spewConfig.Sprintf("%v", a)
}

func LogDump(prefix string, a ...interface{}) {
	log.Printf("%s %s", prefix, SDump(a...))
}
