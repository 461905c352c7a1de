package main

import (
	"fmt"
	"os"

	"github.com/yinchengxin/claudekit/internal/claudemd/cli"
)

var version = "0.1.0"

func main() {
	if err := cli.NewRoot(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
