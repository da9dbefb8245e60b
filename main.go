package main

import (
	"log"

	"github.com/velmora/storefront/app/cmd"
)

func main() {
	if err := cmd.RunCli(); err != nil {
		log.Fatal(err)
	}
}
