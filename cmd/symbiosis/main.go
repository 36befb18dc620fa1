package main

import (
	"os"

	"github.com/yungbote/symbiosis-backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
