package main

import (
	cmd "github.com/entitylens/entitylens/cmd/entitylens"
	"github.com/entitylens/entitylens/internal"
)

var log = internal.GetLogger()

func main() {
	log.Info("Starting entitylens")
	cmd.Execute()
}
