//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kacebover/algorithm-runner/catalog"
)

// extra scripts that are not catalog entries
var extras = map[string]string{
	"edited_linear_search.star": `
def linear_search(arr, target):
    for i in range(len(arr)):
        if arr[i] == target:
            return i
    return -1

print("Element found at index:", linear_search([5, 6, 7], 7))
`,
	"runaway_loop.star": `
x = 0
while True:
    x += 1
`,
	"empty.star": "\n   \n",
}

func main() {
	baseDir := "testdata"
	if len(os.Args) > 1 {
		baseDir = os.Args[1]
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}

	fmt.Println("📁 Writing test scripts...")

	for _, e := range catalog.All() {
		write(baseDir, slug(e.Name)+".star", e.Source)
	}
	for name, src := range extras {
		write(baseDir, name, src)
	}

	fmt.Println("✅ Done")
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

func write(dir, name, content string) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		fmt.Println("❌", path, err)
		os.Exit(1)
	}
	fmt.Println("  ✓", path)
}
