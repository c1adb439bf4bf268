// Command server runs the Panacureo HTTP API.
package main

import (
	"context"
	"log"

	"github.com/panacureo/panacureo-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
