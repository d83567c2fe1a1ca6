package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/drills/catalog"
)

func ExampleCatalog_List() {
	c := catalog.New([]catalog.Product{
		{ID: 1, Name: "Apple", Price: 3},
		{ID: 2, Name: "Banana", Price: 1},
		{ID: 3, Name: "Carrot", Price: 2},
	})
	p, _ := c.List(catalog.Query{Page: 1, Limit: 2, SortBy: "price"})
	for _, it := range p.Items {
		fmt.Println(it.Name, it.Price)
	}
	fmt.Println(p.Total, p.TotalPages, p.HasNext)
	// Output:
	// Banana 1
	// Carrot 2
	// 3 2 true
}
