// Command hashkey prints the bcrypt hash of an access key, for use as
// the ACCESS_KEY_HASH environment variable.
package main

import (
	"fmt"
	"os"

	"github.com/umairk/tripsplit/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: hashkey <access-key>")
		os.Exit(2)
	}

	hash, err := auth.HashAccessKey(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
