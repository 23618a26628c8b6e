package main

import (
	"github.com/gemdeck/gemdeck/cmd"
	"github.com/gemdeck/gemdeck/common"
)

func main() {
	defer common.WaitLogs()
	cmd.Execute()
}
