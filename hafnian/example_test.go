// SPDX-License-Identifier: MIT

package hafnian_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/bosonic/hafnian"
	"github.com/katalvlaran/bosonic/matrix"
)

// ExamplePermanent evaluates a small integer permanent.
func ExamplePermanent() {
	m, _ := matrix.NewDenseReal([][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})
	p, _ := hafnian.Permanent(m)
	fmt.Println(math.Round(real(p)))
	// Output:
	// 450
}

// ExampleHafnian shows the bipartite identity haf([[0,A],[Aᵀ,0]]) = perm(A).
func ExampleHafnian() {
	a, _ := matrix.NewDenseReal([][]float64{
		{1, 2},
		{3, 4},
	})
	b, _ := matrix.Bipartite(a)
	h, _ := hafnian.Hafnian(b)
	p, _ := hafnian.Permanent(a)
	fmt.Println(math.Round(real(h)), math.Round(real(p)))
	// Output:
	// 10 10
}

// ExampleCountPerfectMatchings counts the matchings of K_6.
func ExampleCountPerfectMatchings() {
	k6, _ := matrix.NewOnes(6, 6)
	n, _ := hafnian.CountPerfectMatchings(k6)
	fmt.Println(n)
	// Output:
	// 15
}
