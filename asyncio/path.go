package asyncio

import "path/filepath"

func dirOf(path string) string {
	dir := filepath.Dir(path)
	if dir == "" {
		return "."
	}

	return dir
}

func tempPattern(path string) string {
	return filepath.Base(path) + ".zdoc-tmp-*"
}
