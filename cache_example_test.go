package keyedlru_test

import (
	"fmt"

	keyedlru "github.com/djdv/go-keyedlru"
)

func ExampleCache() {
	const (
		capacity = 3 // TODO(Anyone): Use contextual capacity.
		key      = "renders"
	)
	cache, err := keyedlru.New[string, int](capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	for _, variant := range []int{1, 2, 3} {
		if err := cache.Add(key, variant); err != nil {
			panic(err) // TODO(Anyone): Handle error.
		}
	}
	if recent, ok := cache.Get(key); ok {
		fmt.Printf("%s: %v\n", key, recent)
	}
	// Output:
	// renders: [3 2 1]
}

func ExampleCache_Use() {
	const (
		capacity = 3 // TODO(Anyone): Use contextual capacity.
		key      = "renders"
	)
	cache, err := keyedlru.New[string, int](capacity)
	if err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	for _, variant := range []int{1, 2, 3} {
		if err := cache.Add(key, variant); err != nil {
			panic(err) // TODO(Anyone): Handle error.
		}
	}
	if err := cache.Use(key, 1); err != nil {
		panic(err) // TODO(Anyone): Handle error.
	}
	recent, _ := cache.Get(key)
	fmt.Printf("used: %v\n", recent)
	if err := cache.Add(key, 4); err != nil { // Evicts 2.
		panic(err) // TODO(Anyone): Handle error.
	}
	recent, _ = cache.Get(key)
	fmt.Printf("added: %v\n", recent)
	// Output:
	// used: [1 3 2]
	// added: [4 1 3]
}
