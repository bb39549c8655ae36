package main

import (
	"fmt"

	"github.com/temirov/structree/internal/cli"
	"github.com/temirov/structree/internal/utils"
)

// main is the entry point for the structree command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	defer loggerInstance.Sync()
	if applicationExecutionError := cli.Execute(); applicationExecutionError != nil {
		loggerInstance.Fatal(fmt.Sprintf(utils.RunFailureMessageFormat, applicationExecutionError))
	}
}
