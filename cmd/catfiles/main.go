// Concatenates text files in the given folders or files to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/code-on-sunday/django-ecommerce-cart/catfiles"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: catfiles <paths...>")
		os.Exit(2)
	}

	if err := catfiles.Run(os.Stdout, paths); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
