package complete

import (
	"fmt"
	"hash/fnv"
)

// Script renders the bash hook for appName. Sourcing it registers a function
// that feeds COMP_LINE back to the application and collects the proposals.
func Script(appName string) string {
	return fmt.Sprintf(`#!/bin/bash
%[1]s() {
COMPREPLY=( $(%[2]s --bash-autocomplete ${COMP_LINE}) )
}
complete -F %[1]s %[2]s
`, functionName(appName), appName)
}

// InstallPath is the conventional location for appName's completion script,
// sourced by bash-completion on shell startup.
func InstallPath(appName string) string {
	return fmt.Sprintf("/etc/bash_completion.d/autocomplete_%s.sh", appName)
}

// functionName derives a hook name that stays stable for an application and
// is unlikely to collide with other completers in the same shell.
func functionName(appName string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(appName))
	return fmt.Sprintf("_autocomplete_%d", h.Sum32()%100_000_000)
}
