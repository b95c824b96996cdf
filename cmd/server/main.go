// cmd/server/main.go
package main

import "github.com/javajoker/natura-backend/internal/cli"

func main() {
	cli.Execute()
}
