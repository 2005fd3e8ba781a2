package utils

import (
	"fmt"
	"log"
	"strings"
)

// LogEvent prints a standardized line with module/action/request_id followed
// by key=value pairs. Never pass passwords or full form payloads.
func LogEvent(requestID, module, action string, kv ...any) {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] action=%s request_id=%s", strings.ToUpper(module), action, strings.TrimSpace(requestID))
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(&b, " %v=%v", kv[i], kv[i+1])
	}
	if len(kv)%2 == 1 {
		fmt.Fprintf(&b, " msg=%v", kv[len(kv)-1])
	}
	log.Print(b.String())
}
