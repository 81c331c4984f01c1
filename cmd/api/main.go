package main

import (
	"os"

	"portfoliosim/cmd"
	"portfoliosim/internal/logger"

	_ "github.com/lib/pq"
)

func main() {
	log := logger.New()
	log.Infof("starting portfoliosim api, commit %s", os.Getenv("commit_hash"))

	apiHandler, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(3009)
	if err != nil {
		log.Fatal(err)
	}
}
