package cmdl_test

import (
	"fmt"

	"github.com/TheGrizzlyDev/cmdl"
)

func Example() {
	p := cmdl.New(cmdl.WithParams("output", "j"))
	p.Parse([]string{"build", "--verbose", "--output", "bin/app", "-j", "4"})

	var jobs int
	p.Param("j").Or(1).Scan(&jobs)

	fmt.Println(p.Flag("v", "verbose"))
	fmt.Println(p.Param("output").Str())
	fmt.Println(jobs)
	fmt.Println(p.PosArgs())
	// Output:
	// true
	// bin/app
	// 4
	// [build]
}
