// cmd/fastagrep/main.go
package main

import (
	"fastagrep/internal/app"
	"fastagrep/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
