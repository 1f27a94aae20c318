package complete

import (
	"os"
	"slices"
)

// Files is a choice producer listing the working directory, usable anywhere a
// dynamic choice source fits. Directories keep a trailing separator so a
// completed directory name invites another round instead of ending the word.
func Files() func() []string {
	return func() []string {
		entries, err := os.ReadDir(".")
		if err != nil {
			return nil
		}
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				names = append(names, entry.Name()+"/")
				continue
			}
			names = append(names, entry.Name())
		}
		slices.Sort(names)
		return names
	}
}
