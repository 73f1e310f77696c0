// cmd/alnqc/main.go
package main

import (
	"alnqc/internal/app"
	"alnqc/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
