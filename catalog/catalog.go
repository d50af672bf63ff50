// Package catalog holds the fixed set of demo algorithms shown in the dropdown.
package catalog

import "strings"

// Entry is a named algorithm with its script source and Big-O label
type Entry struct {
	Name       string
	Source     string
	Complexity string
}

// Entries are listed in dropdown order. Sources are evaluated as-is, so the
// Selection Sort typo is kept on purpose: running it must report an error.
var entries = []Entry{
	{
		Name: "Insertion Sort",
		Source: `
def insertion_sort(arr):
    for i in range(1, len(arr)):
        key = arr[i]
        j = i - 1
        while j >= 0 and key < arr[j]:
            arr[j + 1] = arr[j]
            j -= 1
        arr[j + 1] = key

arr = [38, 27, 43, 3, 9, 82, 10]
insertion_sort(arr)
print("Sorted array:", arr)
`,
		Complexity: "O(n^2)",
	},
	{
		Name: "Selection Sort",
		Source: `
def selection_sort(arr):
    for i in range(len(arr)):
        min_idx = i
        for j in range(i + 1, len(arr)):
            if arr[j] < min_idx]:
                min_idx = j
        arr[i], arr[min_idx] = arr[min_idx], arr[i]

arr = [38, 27, 43, 3, 9, 82, 10]
selection_sort(arr)
print("Sorted array:", arr)
`,
		Complexity: "O(n^2)",
	},
	{
		Name: "Bubble Sort",
		Source: `
def bubble_sort(arr):
    n = len(arr)
    for i in range(n):
        for j in range(0, n - i - 1):
            if arr[j] > arr[j + 1]:
                arr[j], arr[j + 1] = arr[j + 1], arr[j]

arr = [38, 27, 43, 3, 9, 82, 10]
bubble_sort(arr)
print("Sorted array:", arr)
`,
		Complexity: "O(n^2)",
	},
	{
		Name: "Linear Search",
		Source: `
def linear_search(arr, target):
    for i in range(len(arr)):
        if arr[i] == target:
            return i
    return -1

arr = [38, 27, 43, 3, 9, 82, 10]
target = 9
result = linear_search(arr, target)
print("Element found at index:" if result != -1 else "Element not found", result)
`,
		Complexity: "O(n)",
	},
	{
		Name: "Binary Search",
		Source: `
def binary_search(arr, target):
    low, high = 0, len(arr) - 1
    while low <= high:
        mid = (low + high) // 2
        if arr[mid] == target:
            return mid
        elif arr[mid] < target:
            low = mid + 1
        else:
            high = mid - 1
    return -1

arr = [3, 9, 10, 27, 38, 43, 82]  # Sorted array for binary search
target = 9
result = binary_search(arr, target)
print("Element found at index:" if result != -1 else "Element not found", result)
`,
		Complexity: "O(log n)",
	},
}

var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[e.Name] = e
	}
	return m
}()

// Lookup returns the entry registered under name
func Lookup(name string) (Entry, bool) {
	e, ok := byName[name]
	return e, ok
}

// Names returns algorithm names in dropdown order
func Names() []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// All returns a copy of every entry
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Match reports whether source is the unedited script of the named entry.
// Comparison ignores only leading and trailing whitespace, so any edit inside
// the script (including reindentation) drops the Big-O label.
func Match(name, source string) (Entry, bool) {
	e, ok := byName[name]
	if !ok {
		return Entry{}, false
	}
	if strings.TrimSpace(source) != strings.TrimSpace(e.Source) {
		return Entry{}, false
	}
	return e, true
}
