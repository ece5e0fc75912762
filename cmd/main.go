package main

import (
	"context"
	"dominicbreuker/hellotrait/cmd/hello"
	"dominicbreuker/hellotrait/pkg/log"
	"os"
)

func main() {
	if err := hello.GetCommand(nil).Run(context.Background(), os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
