package base26_test

import (
	"fmt"
	"strings"

	"github.com/unkn0wn-root/base26"
)

func ExampleEncode() {
	for _, n := range []uint64{1, 26, 27, 702, 703} {
		fmt.Println(n, base26.Encode(n))
	}
	// Output:
	// 1 a
	// 26 z
	// 27 aa
	// 702 zz
	// 703 aaa
}

func ExampleDecode() {
	n, err := base26.Decode("ab")
	fmt.Println(n, err)

	_, err = base26.Decode("a1b")
	fmt.Println(err)
	// Output:
	// 28 <nil>
	// base26: invalid character '1' at offset 1
}

func ExampleNew() {
	c, err := base26.New(base26.Options{Overflow: base26.OverflowSaturate})
	if err != nil {
		panic(err)
	}
	n, _ := c.Decode(strings.Repeat("z", 20))
	fmt.Println(n)
	// Output:
	// 18446744073709551615
}
