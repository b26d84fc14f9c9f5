// cmd/complseq/main.go
package main

import (
	"complseq/internal/app"
	"complseq/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
