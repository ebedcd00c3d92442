package permtree_test

import (
	"fmt"

	"github.com/matzehuels/permtree/pkg/permtree"
)

func ExampleTree_Enumerate() {
	tree := permtree.New([]permtree.Symbol("cab"))
	for _, p := range tree.Enumerate() {
		fmt.Println(p)
	}
	// Output:
	// abc
	// acb
	// bac
	// bca
	// cab
	// cba
}

func ExampleTree_LookupByDirectRank() {
	tree := permtree.New([]permtree.Symbol("abc"))

	fmt.Println(tree.LookupByDirectRank(4))
	fmt.Println(tree.LookupByEnumeration(4))
	fmt.Println(tree.LookupByDirectRank(7) == nil)
	// Output:
	// bca
	// bca
	// true
}

func ExampleSafeFactorial() {
	fmt.Println("5! =", permtree.SafeFactorial(5))
	fmt.Println("20! =", permtree.SafeFactorial(20))
	fmt.Println("21! =", permtree.SafeFactorial(21))
	// Output:
	// 5! = 120
	// 20! = 2432902008176640000
	// 21! = -1
}

func ExampleUnrank() {
	// No tree is needed to unrank; 20 symbols would be far too many to build.
	sorted := []permtree.Symbol("abcdefghijklmnopqrst")
	fmt.Println(permtree.Unrank(sorted, 2))
	fmt.Println(permtree.Rank(sorted, permtree.Unrank(sorted, 123456789)))
	// Output:
	// abcdefghijklmnopqrts
	// 123456789
}

func ExampleTree_All() {
	tree := permtree.New([]permtree.Symbol("xyz"))
	for rank, p := range tree.All() {
		if rank > 2 {
			break
		}
		fmt.Println(rank, p)
	}
	// Output:
	// 1 xyz
	// 2 xzy
}
