package value

import "os"

func writeTestFile(path string) error {
	return os.WriteFile(path, []byte("content"), 0o600)
}
