// cmd/alnedit/main.go
package main

import (
	"alnedit/internal/app"
	"alnedit/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
