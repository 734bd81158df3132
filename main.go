package main

import (
	"log"

	"github.com/kaamkhoj/kaamkhoj/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
