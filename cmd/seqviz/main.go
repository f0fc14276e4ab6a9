// cmd/seqviz/main.go
package main

import (
	"seqviz/internal/app"
	"seqviz/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
