package main

import (
	"log"

	"finitefield.org/dashpro-admin/internal/admin/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("dashpro: %v", err)
	}
}
