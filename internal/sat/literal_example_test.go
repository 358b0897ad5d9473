package sat

import "fmt"

func ExamplePositiveLiteral() {
	l := PositiveLiteral(3)
	fmt.Println(l, l.IsPositive(), l.VarID())

	// Output:
	// 3 true 3
}

func ExampleNegativeLiteral() {
	l := NegativeLiteral(3)
	fmt.Println(l, l.IsPositive(), l.VarID())

	// Output:
	// !3 false 3
}

func ExampleLiteral_Opposite() {
	l := PositiveLiteral(2)
	fmt.Println(l.Opposite())

	// Output:
	// !2
}
