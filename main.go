package main

import (
	"os"

	"github.com/soapywu/pbxproj/internal/cmd"
)

func main() {
	os.Exit(cmd.Main(os.Args))
}
