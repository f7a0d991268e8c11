package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	// Top-level logger; the level is set from --loglevel before any command runs.
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, ForceColors: true})

	if err := newRootCmd(log).Execute(); err != nil {
		log.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}
}
