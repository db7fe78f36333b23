package strata_test

import (
	"fmt"

	"github.com/0xalexb/strata"
)

func ExampleLoader_Load() {
	loader := strata.New()

	defaults := map[string]any{
		"host": "localhost",
		"port": 8080,
	}
	overrides := map[string]any{
		"host": "example.com",
	}

	merged, err := loader.Load(overrides, defaults)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(merged["host"], merged["port"])
	// Output: example.com 8080
}
