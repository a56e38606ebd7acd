// Command btreeindex is a small demo binary exercising pkg/index end to
// end: insert, find, ordered extrema scans, and delete.
package main

import (
	"fmt"
	"log"

	"btreeindex/pkg/btree"
	"btreeindex/pkg/index"
)

// fruitStore is a trivial in-memory ContentStore used only to give this
// demo rows to resolve; a real embedding application supplies its own row
// store.
type fruitStore map[int64]string

func (s fruitStore) Get(contentID int64) (string, bool, error) {
	row, ok := s[contentID]
	return row, ok, nil
}

func main() {
	store := fruitStore{
		1: "apple",
		2: "banana",
		3: "grape",
		4: "orange",
		5: "cherry",
	}

	idx, err := index.Open[int64]("data/fruit-index", btree.Int64Keys(), 4, store)
	if err != nil {
		log.Fatalf("failed to open index: %v", err)
	}
	defer idx.Close()

	fmt.Println("Inserting keys...")
	keys := map[int64]int64{10: 1, 20: 2, 5: 3, 6: 4, 12: 5}
	for key, content := range keys {
		if err := idx.Insert(key, content); err != nil {
			log.Printf("failed to insert %d: %v", key, err)
		}
	}

	fmt.Println("\nSmallest three:")
	smallest, err := idx.FindNSmallestRows(3)
	if err != nil {
		log.Fatalf("find n smallest: %v", err)
	}
	for _, row := range smallest {
		fmt.Println(row)
	}

	fmt.Println("\nBiggest three:")
	biggest, err := idx.FindNBiggestRows(3)
	if err != nil {
		log.Fatalf("find n biggest: %v", err)
	}
	for _, row := range biggest {
		fmt.Println(row)
	}

	fmt.Println("\nLooking up key 10:")
	rows, err := idx.Find(10)
	if err != nil {
		log.Fatalf("find: %v", err)
	}
	for _, row := range rows {
		fmt.Println(row)
	}

	fmt.Println("\nDeleting key 10...")
	deleted, err := idx.Delete(10, 1)
	if err != nil {
		log.Fatalf("delete: %v", err)
	}
	fmt.Printf("deleted: %v\n", deleted)

	if _, found, err := idx.FindWithKeyAndContent(10, 1); err != nil {
		log.Fatalf("find with key and content: %v", err)
	} else {
		fmt.Printf("key 10 still present: %v\n", found)
	}
}
